package grid

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/spjmurray/go-util/pkg/set"
)

// ErrInvalidSize reports a block size below 1 or a row count that is not a
// perfect square. It signals a caller bug, not an unsolvable puzzle.
var ErrInvalidSize = errors.New("invalid grid size")

// Cell identifies a grid position. Rows and columns are 1-indexed.
type Cell struct {
	Row int
	Col int
}

// Topology is the peer map for one block size: for every cell, the cells
// sharing its row, column, or block. It depends only on the block size, so
// it is computed once per size and shared read-only by every grid of that
// size.
type Topology struct {
	blockSize int
	side      int
	cells     []Cell          // row-major enumeration order
	peers     map[Cell][]Cell // row-major order, excludes the cell itself
}

var (
	topoMu    sync.Mutex
	topoCache = map[int]*Topology{}
)

func topologyFor(n int) (*Topology, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidSize, n)
	}

	topoMu.Lock()
	defer topoMu.Unlock()

	if t, ok := topoCache[n]; ok {
		return t, nil
	}

	t := buildTopology(n)
	topoCache[n] = t

	return t, nil
}

func buildTopology(n int) *Topology {
	side := n * n

	t := &Topology{
		blockSize: n,
		side:      side,
		cells:     make([]Cell, 0, side*side),
		peers:     make(map[Cell][]Cell, side*side),
	}

	for r := 1; r <= side; r++ {
		for c := 1; c <= side; c++ {
			t.cells = append(t.cells, Cell{Row: r, Col: c})
		}
	}

	for _, cell := range t.cells {
		mates := set.New[Cell]()
		for i := 1; i <= side; i++ {
			mates.Add(Cell{Row: cell.Row, Col: i})
			mates.Add(Cell{Row: i, Col: cell.Col})
		}
		br := ((cell.Row - 1) / n) * n
		bc := ((cell.Col - 1) / n) * n
		for dr := 1; dr <= n; dr++ {
			for dc := 1; dc <= n; dc++ {
				mates.Add(Cell{Row: br + dr, Col: bc + dc})
			}
		}
		mates.Delete(cell)

		peers := make([]Cell, 0, 3*side)
		for m := range mates.All() {
			peers = append(peers, m)
		}
		// Fixed row-major order keeps propagation deterministic.
		sort.Slice(peers, func(i, j int) bool {
			if peers[i].Row != peers[j].Row {
				return peers[i].Row < peers[j].Row
			}
			return peers[i].Col < peers[j].Col
		})
		t.peers[cell] = peers
	}

	return t
}
