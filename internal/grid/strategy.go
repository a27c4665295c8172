package grid

import "math/rand"

// MostConstrained picks an unassigned cell with the fewest candidates,
// breaking ties by row-major enumeration order. This is the default
// production selection strategy.
func MostConstrained(g *Grid) (Cell, error) {
	return selectBy(g, func(n, best int) bool { return n < best })
}

// LeastConstrained picks an unassigned cell with the most candidates,
// breaking ties by row-major enumeration order.
func LeastConstrained(g *Grid) (Cell, error) {
	return selectBy(g, func(n, best int) bool { return n > best })
}

func selectBy(g *Grid, better func(n, best int) bool) (Cell, error) {
	var best Cell
	bestLen := 0

	for _, c := range g.topo.cells {
		n := g.cells[c].Len()
		if n < 2 {
			continue
		}
		if bestLen == 0 || better(n, bestLen) {
			best, bestLen = c, n
		}
	}

	if bestLen == 0 {
		return Cell{}, ErrNoUnassignedCell
	}
	return best, nil
}

// AscendingOrder tries candidates smallest first. This is the default
// production ordering.
func AscendingOrder(g *Grid, c Cell) []uint8 {
	return g.Candidates(c).Digits()
}

// DescendingOrder tries candidates largest first.
func DescendingOrder(g *Grid, c Cell) []uint8 {
	ds := g.Candidates(c).Digits()
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
	return ds
}

// RandomOrder returns an ordering strategy that shuffles candidates
// uniformly with rng. Each call may yield a different order.
func RandomOrder(rng *rand.Rand) OrderValues {
	return func(g *Grid, c Cell) []uint8 {
		ds := g.Candidates(c).Digits()
		rng.Shuffle(len(ds), func(i, j int) { ds[i], ds[j] = ds[j], ds[i] })
		return ds
	}
}
