package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/grid"
)

// Singles implements a minimal Hinter that suggests naked singles: blank
// cells whose candidate set collapses to one digit after propagating the
// givens.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first single found in row-major order if max tier allows
// it. A board whose givens already contradict yields no hint.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}

	g, err := grid.Build(b.Values)
	if errors.Is(err, grid.ErrContradiction) {
		return domain.Hint{}, false, nil
	}
	if err != nil {
		return domain.Hint{}, false, err
	}

	for _, c := range g.Cells() {
		if b.Values[c.Row-1][c.Col-1] != 0 {
			continue
		}
		if v, ok := g.Value(c); ok {
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits here", v),
				Cells:    []domain.CellCoord{{Row: c.Row - 1, Col: c.Col - 1}},
				Value:    v,
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
