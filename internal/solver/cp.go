package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/grid"
	"svw.info/sudokusolver/internal/ports"
)

// CPSolver solves boards with constraint propagation plus backtracking
// search. Selection and ordering strategies are pluggable; the defaults are
// most-constrained selection and ascending value order.
type CPSolver struct {
	selectCell  grid.SelectCell
	orderValues grid.OrderValues
}

// CPOption configures a CPSolver.
type CPOption func(*CPSolver)

// WithSelect overrides the variable-selection strategy.
func WithSelect(s grid.SelectCell) CPOption {
	return func(c *CPSolver) { c.selectCell = s }
}

// WithOrder overrides the value-ordering strategy.
func WithOrder(o grid.OrderValues) CPOption {
	return func(c *CPSolver) { c.orderValues = o }
}

// WithRandomOrder orders trial values by shuffling with a seeded source.
func WithRandomOrder(seed int64) CPOption {
	return WithOrder(grid.RandomOrder(rand.New(rand.NewSource(seed))))
}

func NewCPSolver(opts ...CPOption) *CPSolver {
	s := &CPSolver{
		selectCell:  grid.MostConstrained,
		orderValues: grid.AscendingOrder,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// instrument wraps a selection strategy with node counting and context
// cancellation, keeping the search core itself uninstrumented.
func instrument(ctx context.Context, inner grid.SelectCell, nodes *int) grid.SelectCell {
	return func(g *grid.Grid) (grid.Cell, error) {
		*nodes++
		if err := ctx.Err(); err != nil {
			return grid.Cell{}, err
		}
		return inner(g)
	}
}

func (s *CPSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0

	g, err := grid.Build(b.Values)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	solved, err := grid.Solve(g, instrument(ctx, s.selectCell, &nodes), s.orderValues)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}

	return boardFromGrid(solved, b), st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *CPSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0

	g, err := grid.Build(b.Values)
	if errors.Is(err, grid.ErrContradiction) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	if err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}

	var dfs func(*grid.Grid) error
	dfs = func(g *grid.Grid) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Solved() {
			count++
			return nil
		}

		cell, err := s.selectCell(g)
		if err != nil {
			return err
		}
		for _, d := range s.orderValues(g, cell) {
			nodes++
			next, err := grid.Assign(g, cell, d)
			if errors.Is(err, grid.ErrContradiction) {
				continue
			}
			if err != nil {
				return err
			}
			if err := dfs(next); err != nil {
				return err
			}
			if count >= 2 {
				return nil // stop early
			}
		}
		return nil
	}

	err = dfs(g)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}

// boardFromGrid renders a solved grid back onto a board, carrying over the
// fixed-given mask of the input.
func boardFromGrid(g *grid.Grid, in *domain.Board) *domain.Board {
	return &domain.Board{
		BlockSize: g.BlockSize(),
		Values:    g.Rows(),
		Fixed:     in.Fixed,
	}
}
