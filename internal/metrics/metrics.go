package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	SolverLabel  = "solver"
	OutcomeLabel = "outcome"

	OutcomeSolved     = "solved"
	OutcomeUnsolvable = "unsolvable"
	OutcomeError      = "error"
)

var (
	solvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sudoku_solves_total",
			Help: "Monotonic count of solve requests by solver backend and outcome",
		},
		[]string{SolverLabel, OutcomeLabel},
	)

	solveDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sudoku_solve_duration_seconds",
			Help:       "The duration of a solve attempt",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{SolverLabel},
	)

	solveNodes = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sudoku_solve_nodes",
			Help:       "Search branch points explored per solve attempt",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{SolverLabel},
	)

	generatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sudoku_generates_total",
			Help: "Monotonic count of puzzle generations by difficulty",
		},
		[]string{"difficulty"},
	)
)

// Register installs the collectors on the default registry. Call once from
// main.
func Register() {
	prometheus.MustRegister(solvesTotal)
	prometheus.MustRegister(solveDuration)
	prometheus.MustRegister(solveNodes)
	prometheus.MustRegister(generatesTotal)
}

// RecordSolve observes one solve attempt.
func RecordSolve(solver, outcome string, nodes int, d time.Duration) {
	solvesTotal.WithLabelValues(solver, outcome).Inc()
	solveDuration.WithLabelValues(solver).Observe(d.Seconds())
	solveNodes.WithLabelValues(solver).Observe(float64(nodes))
}

// RecordGenerate observes one puzzle generation.
func RecordGenerate(difficulty string) {
	generatesTotal.WithLabelValues(difficulty).Inc()
}
