package validator

import (
	"context"
	"fmt"
	"math"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/grid"
)

// FastValidator checks rows, columns, and blocks for duplicate givens. It
// works on any block size and never consults candidate sets.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	side := b.Side()
	n := int(math.Sqrt(float64(side)))
	if n < 1 || n*n != side {
		return false, nil, fmt.Errorf("%w: side %d is not a perfect square", grid.ErrInvalidSize, side)
	}

	conf := make([]domain.CellCoord, 0, 8)

	scan := func(cells []domain.CellCoord) {
		seen := grid.NewDigitSet(side)
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 || int(val) > side {
				continue
			}
			if seen.Has(val) {
				conf = append(conf, cc)
				continue
			}
			seen.Add(val)
		}
	}

	line := make([]domain.CellCoord, side)

	// rows
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			line[c] = domain.CellCoord{Row: r, Col: c}
		}
		scan(line)
	}
	// cols
	for c := 0; c < side; c++ {
		for r := 0; r < side; r++ {
			line[r] = domain.CellCoord{Row: r, Col: c}
		}
		scan(line)
	}
	// blocks
	for br := 0; br < side; br += n {
		for bc := 0; bc < side; bc += n {
			i := 0
			for dr := 0; dr < n; dr++ {
				for dc := 0; dc < n; dc++ {
					line[i] = domain.CellCoord{Row: br + dr, Col: bc + dc}
					i++
				}
			}
			scan(line)
		}
	}

	return len(conf) == 0, conf, nil
}
