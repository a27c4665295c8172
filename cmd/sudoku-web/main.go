package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	httpadapter "svw.info/sudokusolver/internal/adapters/http"
	"svw.info/sudokusolver/internal/generator"
	"svw.info/sudokusolver/internal/hint"
	"svw.info/sudokusolver/internal/infrastructure/storage"
	"svw.info/sudokusolver/internal/metrics"
	"svw.info/sudokusolver/internal/ports"
	"svw.info/sudokusolver/internal/solver"
	"svw.info/sudokusolver/internal/usecase"
	"svw.info/sudokusolver/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	debug := flag.Bool("debug", false, "use debug log level")
	solverKind := flag.String("solver", "cp", "solver to use: cp|sat")
	blockSize := flag.Int("block-size", 3, "block size for generated puzzles")
	flag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	_ = os.MkdirAll(*persist, 0o755)

	// Choose solver: propagation+backtracking by default, SAT via flag.
	var s ports.Solver
	name := strings.ToLower(strings.TrimSpace(*solverKind))
	switch name {
	case "sat":
		s = solver.NewSATSolver()
	default:
		name = "cp"
		s = solver.NewCPSolver()
	}

	metrics.Register()

	// Wire providers -> use cases -> HTTP adapter
	g := generator.NewUniqueGenerator(s, *blockSize)
	v := validator.New()
	st := storage.NewFS(*persist)
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc, name)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.WithFields(logrus.Fields{
		"addr":    *addr,
		"persist": *persist,
		"solver":  name,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server error")
	}
}
