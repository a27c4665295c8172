package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/ports"
)

// targetGivens scales the 9x9 givens counts (40/34/28/24) to the actual
// cell count.
func targetGivens(d domain.Difficulty, cells int) int {
	var per81 int
	switch d {
	case domain.Easy:
		per81 = 40
	case domain.Medium:
		per81 = 34
	case domain.Hard:
		per81 = 28
	default:
		per81 = 24 // Expert
	}
	return (cells*per81 + 80) / 81
}

// Generate creates a puzzle with a unique solution using seed and target
// difficulty: fill a complete random solution, then carve givens out while
// uniqueness holds.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	side := g.BlockSize * g.BlockSize

	full := domain.NewBoard(g.BlockSize)
	if !fillRandom(ctx, rng, g.BlockSize, full.Values) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}

	puz := domain.NewBoard(g.BlockSize)
	for r := 0; r < side; r++ {
		copy(puz.Values[r], full.Values[r])
		for c := 0; c < side; c++ {
			puz.Fixed[r][c] = true
		}
	}

	positions := rng.Perm(side * side)
	target := targetGivens(diff, side*side)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0
	givens := side * side

	for _, pos := range positions {
		if time.Now().After(deadline) || givens <= target {
			break
		}
		r, c := pos/side, pos%side
		if puz.Values[r][c] == 0 {
			continue
		}
		old := puz.Values[r][c]
		puz.Values[r][c] = 0
		puz.Fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, puz)
		nodes += st.Nodes
		if unique {
			givens--
		} else {
			// revert
			puz.Values[r][c] = old
			puz.Fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      *puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution by trying
// digits in random order cell by cell.
func fillRandom(ctx context.Context, rng *rand.Rand, blockSize int, values [][]uint8) bool {
	side := blockSize * blockSize
	nums := make([]uint8, side)
	for i := range nums {
		nums[i] = uint8(i + 1)
	}

	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == side {
			return true
		}
		nr, nc := r, c+1
		if nc == side {
			nr, nc = r+1, 0
		}
		order := append([]uint8(nil), nums...)
		rng.Shuffle(side, func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, v := range order {
			if allowed(values, blockSize, r, c, v) {
				values[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				values[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors row/col/block checks locally for the generator.
func allowed(values [][]uint8, blockSize, r, c int, v uint8) bool {
	side := blockSize * blockSize
	for i := 0; i < side; i++ {
		if values[r][i] == v || values[i][c] == v {
			return false
		}
	}
	br, bc := (r/blockSize)*blockSize, (c/blockSize)*blockSize
	for dr := 0; dr < blockSize; dr++ {
		for dc := 0; dc < blockSize; dc++ {
			if values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
