package generator

import "svw.info/sudokusolver/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for uniqueness checks. BlockSize defaults to 3 (classic 9x9).
type UniqueGenerator struct {
	Solver    ports.Solver
	BlockSize int
}

// NewUniqueGenerator wires a generator that uses the given solver.
func NewUniqueGenerator(s ports.Solver, blockSize int) *UniqueGenerator {
	if blockSize < 1 {
		blockSize = 3
	}
	return &UniqueGenerator{Solver: s, BlockSize: blockSize}
}
