package grid

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSample(t *testing.T) {
	g, err := Build(sample)
	require.NoError(t, err)

	solved, err := Solve(g, MostConstrained, AscendingOrder)
	require.NoError(t, err)
	require.True(t, solved.Solved())
	assert.Empty(t, cmp.Diff(sampleSolution, solved.Rows()))
}

func TestSolveHard(t *testing.T) {
	g, err := Build(hard)
	require.NoError(t, err)

	solved, err := Solve(g, MostConstrained, AscendingOrder)
	require.NoError(t, err)
	assert.True(t, solved.Solved())
}

func TestSolveSoundness(t *testing.T) {
	g, err := Build(hard)
	require.NoError(t, err)
	solved, err := Solve(g, MostConstrained, AscendingOrder)
	require.NoError(t, err)

	for _, c := range solved.Cells() {
		d, ok := solved.Value(c)
		require.True(t, ok)
		for _, p := range solved.Peers(c) {
			pd, ok := solved.Value(p)
			require.True(t, ok)
			assert.NotEqual(t, d, pd, "peers %v and %v share %d", c, p, d)
		}
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	g, err := Build(sampleSolution)
	require.NoError(t, err)

	out, err := Solve(g, MostConstrained, AscendingOrder)
	require.NoError(t, err)
	assert.Same(t, g, out, "a solved grid is returned unchanged")
}

func TestSolveOrderings(t *testing.T) {
	orderings := map[string]OrderValues{
		"asc":    AscendingOrder,
		"desc":   DescendingOrder,
		"random": RandomOrder(rand.New(rand.NewSource(7))),
	}

	// the puzzle is unique, so every ordering finds the same answer
	var want [][]uint8
	for oname, ord := range orderings {
		t.Run(oname, func(t *testing.T) {
			g, err := Build(hard)
			require.NoError(t, err)
			solved, err := Solve(g, MostConstrained, ord)
			require.NoError(t, err)
			require.True(t, solved.Solved())
			if want == nil {
				want = solved.Rows()
				return
			}
			assert.Empty(t, cmp.Diff(want, solved.Rows()))
		})
	}
}

func TestSolveLeastConstrained(t *testing.T) {
	// kept to the easy puzzle: branching on the widest cell is exponential
	// on harder grids
	g, err := Build(sample)
	require.NoError(t, err)
	solved, err := Solve(g, LeastConstrained, AscendingOrder)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(sampleSolution, solved.Rows()))
}

func TestSelectSkipsSingletons(t *testing.T) {
	g, err := Build(hard)
	require.NoError(t, err)

	most, err := MostConstrained(g)
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 7, Col: 2}, most)
	assert.Greater(t, g.Candidates(most).Len(), 1)

	least, err := LeastConstrained(g)
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 2, Col: 3}, least)
	assert.LessOrEqual(t, g.Candidates(most).Len(), g.Candidates(least).Len())
}

func TestSelectOnSolvedGrid(t *testing.T) {
	g, err := Build(sampleSolution)
	require.NoError(t, err)

	_, err = MostConstrained(g)
	require.ErrorIs(t, err, ErrNoUnassignedCell)
	_, err = LeastConstrained(g)
	require.ErrorIs(t, err, ErrNoUnassignedCell)
}

func TestOrderingStrategies(t *testing.T) {
	g, err := Empty(2)
	require.NoError(t, err)
	g, err = Assign(g, Cell{Row: 1, Col: 1}, 1)
	require.NoError(t, err)

	// (4,4) shares nothing with (1,1): all four candidates remain.
	cell := Cell{Row: 4, Col: 4}
	require.Equal(t, 4, g.Candidates(cell).Len())

	assert.Equal(t, []uint8{1, 2, 3, 4}, AscendingOrder(g, cell))
	assert.Equal(t, []uint8{4, 3, 2, 1}, DescendingOrder(g, cell))

	random := RandomOrder(rand.New(rand.NewSource(1)))
	distinct := map[string]bool{}
	for i := 0; i < 20; i++ {
		distinct[fmt.Sprint(random(g, cell))] = true
	}
	assert.GreaterOrEqual(t, len(distinct), 2, "random ordering produced a single permutation")

	// singleton cells keep their one value under every ordering
	single := Cell{Row: 1, Col: 1}
	assert.Equal(t, []uint8{1}, AscendingOrder(g, single))
	assert.Equal(t, []uint8{1}, DescendingOrder(g, single))
	assert.Equal(t, []uint8{1}, random(g, single))
}

func TestOrderingPanicsOutsideGrid(t *testing.T) {
	g, err := Empty(3)
	require.NoError(t, err)
	assert.Panics(t, func() { AscendingOrder(g, Cell{Row: 1, Col: 10}) })
}

func TestSolve4x4FromScratch(t *testing.T) {
	g, err := Empty(2)
	require.NoError(t, err)

	solved, err := Solve(g, MostConstrained, AscendingOrder)
	require.NoError(t, err)
	assert.True(t, solved.Solved())
}
