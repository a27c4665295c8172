// Package grid implements the candidate-set representation of a generalized
// Sudoku puzzle and the constraint propagation and backtracking search that
// solve it. A grid of block size n has side n*n; every cell starts with all
// digits 1..n*n as candidates, and Assign/Eliminate shrink those sets while
// propagating the rule that no two peers share a final value.
package grid

import (
	"fmt"
	"math"
)

// Grid is a snapshot of candidate sets per cell plus the shared peer
// topology for its block size. Grids are copy-on-write values: Assign and
// Eliminate return new grids and never mutate one an ancestor still holds.
type Grid struct {
	blockSize int
	cells     map[Cell]DigitSet
	topo      *Topology
}

// Empty returns a grid where every cell holds the full candidate set 1..n*n.
func Empty(n int) (*Grid, error) {
	topo, err := topologyFor(n)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		blockSize: n,
		cells:     make(map[Cell]DigitSet, len(topo.cells)),
		topo:      topo,
	}
	full := FullDigitSet(topo.side)
	for _, c := range topo.cells {
		g.cells[c] = full.Clone()
	}

	return g, nil
}

// Build constructs a grid from pre-parsed rows (0 means unknown), inferring
// the block size from the row count, and assigns every given in row-major
// order. A conflicting given yields ErrContradiction; a row count that is
// not a perfect square yields ErrInvalidSize.
func Build(rows [][]uint8) (*Grid, error) {
	n := int(math.Sqrt(float64(len(rows))))
	if n*n != len(rows) {
		return nil, fmt.Errorf("%w: side %d is not a perfect square", ErrInvalidSize, len(rows))
	}

	g, err := Empty(n)
	if err != nil {
		return nil, err
	}

	side := n * n
	for i, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, i+1, len(row), side)
		}
		for j, v := range row {
			if v == 0 {
				continue
			}
			g, err = Assign(g, Cell{Row: i + 1, Col: j + 1}, v)
			if err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// BlockSize returns n for an n*n x n*n grid.
func (g *Grid) BlockSize() int { return g.blockSize }

// Side returns the side length n*n.
func (g *Grid) Side() int { return g.topo.side }

// Cells returns every cell coordinate in row-major order.
func (g *Grid) Cells() []Cell { return g.topo.cells }

// Peers returns the cells sharing a row, column, or block with c, in
// row-major order. Panics if c is outside the grid.
func (g *Grid) Peers(c Cell) []Cell {
	peers, ok := g.topo.peers[c]
	if !ok {
		panic(fmt.Sprintf("grid: no such cell %v", c))
	}
	return peers
}

// Candidates returns the candidate set of c. Panics if c is outside the
// grid; referencing a nonexistent cell is a caller bug.
func (g *Grid) Candidates(c Cell) DigitSet {
	s, ok := g.cells[c]
	if !ok {
		panic(fmt.Sprintf("grid: no such cell %v", c))
	}
	return s
}

// Value returns the assigned digit of c if its candidate set is a singleton.
func (g *Grid) Value(c Cell) (uint8, bool) {
	return g.Candidates(c).Sole()
}

// Solved reports whether every cell's candidate set has exactly one member.
func (g *Grid) Solved() bool {
	for _, s := range g.cells {
		if s.Len() != 1 {
			return false
		}
	}
	return true
}

// Equal reports structural equality: the same candidate set for every cell.
func (g *Grid) Equal(o *Grid) bool {
	if g.blockSize != o.blockSize {
		return false
	}
	for c, s := range g.cells {
		if !s.Equal(o.cells[c]) {
			return false
		}
	}
	return true
}

// Rows renders the grid as rows of digits, 0 for cells still holding more
// than one candidate.
func (g *Grid) Rows() [][]uint8 {
	out := make([][]uint8, g.topo.side)
	for i := range out {
		out[i] = make([]uint8, g.topo.side)
	}
	for c, s := range g.cells {
		if d, ok := s.Sole(); ok {
			out[c.Row-1][c.Col-1] = d
		}
	}
	return out
}

// clone shallow-copies the cell map; candidate sets are cloned lazily by the
// propagation engine before mutation, so the parent's sets stay intact.
func (g *Grid) clone() *Grid {
	cells := make(map[Cell]DigitSet, len(g.cells))
	for c, s := range g.cells {
		cells[c] = s
	}
	return &Grid{blockSize: g.blockSize, cells: cells, topo: g.topo}
}
