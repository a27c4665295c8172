package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/grid"
	"svw.info/sudokusolver/internal/ports"
)

// SATSolver encodes a board as CNF and solves it with gini. One variable per
// (row, col, digit) triple states whether that digit appears at that
// position. It is the alternative backend to the CP engine; it reports no
// node counts.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// encoding wraps a gini instance together with the board geometry.
type encoding struct {
	g    *gini.Gini
	side int
}

// lit maps a 0-indexed (row, col, digit) triple to its positive literal.
func (e *encoding) lit(row, col, num int) z.Lit {
	return z.Var(row*e.side*e.side + col*e.side + num + 1).Pos()
}

// exclusive adds pairwise clauses stating at most one of cells may hold num.
func (e *encoding) exclusive(cells []domain.CellCoord, num int) {
	for i, a := range cells {
		la := e.lit(a.Row, a.Col, num)
		for _, b := range cells[i+1:] {
			e.g.Add(la.Not())
			e.g.Add(e.lit(b.Row, b.Col, num).Not())
			e.g.Add(0)
		}
	}
}

func encode(b *domain.Board) (*encoding, error) {
	side := b.Side()
	n := int(math.Sqrt(float64(side)))
	if n < 1 || n*n != side {
		return nil, fmt.Errorf("%w: side %d is not a perfect square", grid.ErrInvalidSize, side)
	}

	e := &encoding{g: gini.New(), side: side}

	// Every cell holds at least one digit, and no two.
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			for num := 0; num < side; num++ {
				e.g.Add(e.lit(r, c, num))
			}
			e.g.Add(0)
			for a := 0; a < side; a++ {
				la := e.lit(r, c, a)
				for b := a + 1; b < side; b++ {
					e.g.Add(la.Not())
					e.g.Add(e.lit(r, c, b).Not())
					e.g.Add(0)
				}
			}
		}
	}

	// Each digit appears at most once per row, column, and block.
	for num := 0; num < side; num++ {
		for i := 0; i < side; i++ {
			row := make([]domain.CellCoord, side)
			col := make([]domain.CellCoord, side)
			for j := 0; j < side; j++ {
				row[j] = domain.CellCoord{Row: i, Col: j}
				col[j] = domain.CellCoord{Row: j, Col: i}
			}
			e.exclusive(row, num)
			e.exclusive(col, num)
		}
		for br := 0; br < side; br += n {
			for bc := 0; bc < side; bc += n {
				block := make([]domain.CellCoord, 0, side)
				for dr := 0; dr < n; dr++ {
					for dc := 0; dc < n; dc++ {
						block = append(block, domain.CellCoord{Row: br + dr, Col: bc + dc})
					}
				}
				e.exclusive(block, num)
			}
		}
	}

	// Givens become unit clauses.
	for r, rowVals := range b.Values {
		for c, v := range rowVals {
			if v == 0 {
				continue
			}
			if int(v) > side {
				return nil, grid.ErrContradiction
			}
			e.g.Add(e.lit(r, c, int(v)-1))
			e.g.Add(0)
		}
	}

	return e, nil
}

// decode reads digits off a satisfying model.
func (e *encoding) decode() [][]uint8 {
	out := make([][]uint8, e.side)
	for r := range out {
		out[r] = make([]uint8, e.side)
		for c := 0; c < e.side; c++ {
			for num := 0; num < e.side; num++ {
				if e.g.Value(e.lit(r, c, num)) {
					out[r][c] = uint8(num + 1)
					break
				}
			}
		}
	}
	return out
}

// forbidModel adds a clause ruling out the current satisfying assignment.
func (e *encoding) forbidModel() {
	for r := 0; r < e.side; r++ {
		for c := 0; c < e.side; c++ {
			for num := 0; num < e.side; num++ {
				if e.g.Value(e.lit(r, c, num)) {
					e.g.Add(e.lit(r, c, num).Not())
					break
				}
			}
		}
	}
	e.g.Add(0)
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()

	e, err := encode(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	if e.g.Solve() != satisfiable {
		return nil, ports.Stats{Duration: time.Since(start)}, grid.ErrContradiction
	}

	out := &domain.Board{
		BlockSize: int(math.Sqrt(float64(e.side))),
		Values:    e.decode(),
		Fixed:     b.Fixed,
	}
	return out, ports.Stats{Duration: time.Since(start)}, nil
}

// Unique solves, forbids the found model, and solves again; the board is
// unique iff the second attempt is unsatisfiable.
func (s *SATSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()

	e, err := encode(b)
	if err != nil {
		if errors.Is(err, grid.ErrContradiction) {
			return false, ports.Stats{Duration: time.Since(start)}, nil
		}
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}

	if e.g.Solve() != satisfiable {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}

	e.forbidModel()
	unique := e.g.Solve() == unsatisfiable

	return unique, ports.Stats{Duration: time.Since(start)}, nil
}
