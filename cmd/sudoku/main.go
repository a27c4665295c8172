package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/generator"
	"svw.info/sudokusolver/internal/grid"
	"svw.info/sudokusolver/internal/infrastructure/gridfile"
	"svw.info/sudokusolver/internal/ports"
	"svw.info/sudokusolver/internal/solver"
)

var logger = logrus.New()

func newSolver(kind, sel, order string, seed int64) (ports.Solver, error) {
	if kind == "sat" {
		return solver.NewSATSolver(), nil
	}

	opts := []solver.CPOption{}
	switch sel {
	case "", "most-constrained":
	case "least-constrained":
		opts = append(opts, solver.WithSelect(grid.LeastConstrained))
	default:
		return nil, fmt.Errorf("unknown selection strategy %q", sel)
	}
	switch order {
	case "", "asc":
	case "desc":
		opts = append(opts, solver.WithOrder(grid.DescendingOrder))
	case "random":
		opts = append(opts, solver.WithOrder(grid.RandomOrder(rand.New(rand.NewSource(seed)))))
	default:
		return nil, fmt.Errorf("unknown value ordering %q", order)
	}
	return solver.NewCPSolver(opts...), nil
}

func newSolveCmd() *cobra.Command {
	var (
		kind    string
		sel     string
		order   string
		seed    int64
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a Sudoku grid read from a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := gridfile.Read(args[0])
			if err != nil {
				return err
			}

			s, err := newSolver(kind, sel, order, seed)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			out, st, err := s.Solve(ctx, b)
			if errors.Is(err, grid.ErrContradiction) {
				logger.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration}).Warn("no solution")
				return errors.New("no solution")
			}
			if err != nil {
				return err
			}

			fmt.Print(gridfile.Format(out))
			logger.WithFields(logrus.Fields{
				"nodes": st.Nodes,
				"dur":   st.Duration.Round(time.Microsecond),
			}).Info("solved")
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "solver", "cp", "solver backend: cp|sat")
	cmd.Flags().StringVar(&sel, "select", "most-constrained", "cell selection: most-constrained|least-constrained")
	cmd.Flags().StringVar(&order, "order", "asc", "value ordering: asc|desc|random")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for random ordering")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "abort after this long")

	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		blockSize  int
		difficulty string
		seed       int64
		out        string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := generator.NewUniqueGenerator(solver.NewCPSolver(), blockSize)
			p, st, err := g.Generate(cmd.Context(), seed, domain.ParseDifficulty(difficulty))
			if err != nil {
				return err
			}

			text := gridfile.Format(&p.Board)
			if out != "" {
				if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
					return err
				}
			} else {
				fmt.Print(text)
			}
			logger.WithFields(logrus.Fields{
				"difficulty": p.Difficulty.String(),
				"seed":       seed,
				"nodes":      st.Nodes,
				"dur":        st.Duration.Round(time.Millisecond),
			}).Info("generated")
			return nil
		},
	}

	cmd.Flags().IntVar(&blockSize, "block-size", 3, "block size n; the board is n*n x n*n")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "generation seed")
	cmd.Flags().StringVar(&out, "out", "", "write the puzzle to this file instead of stdout")

	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve and generate generalized Sudoku puzzles",
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())

	if err := root.Execute(); err != nil {
		logger.WithError(err).Fatal("command failed")
	}
}
