package solver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/grid"
)

func TestSATSolveHard(t *testing.T) {
	ctx := context.Background()

	want, _, err := NewCPSolver().Solve(ctx, &domain.Board{Values: hardBoard})
	require.NoError(t, err)

	got, st, err := NewSATSolver().Solve(ctx, &domain.Board{Values: hardBoard})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want.Values, got.Values))
	assert.Positive(t, st.Duration)
}

func TestSATSolveUnsolvable(t *testing.T) {
	b := domain.NewBoard(3)
	b.Values[0][0] = 7
	b.Values[8][0] = 7

	_, _, err := NewSATSolver().Solve(context.Background(), b)
	require.ErrorIs(t, err, grid.ErrContradiction)
}

func TestSATUnique(t *testing.T) {
	ctx := context.Background()
	s := NewSATSolver()

	t.Run("hard puzzle", func(t *testing.T) {
		unique, _, err := s.Unique(ctx, &domain.Board{Values: hardBoard})
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("empty board", func(t *testing.T) {
		unique, _, err := s.Unique(ctx, domain.NewBoard(2))
		require.NoError(t, err)
		assert.False(t, unique)
	})

	t.Run("out of range given", func(t *testing.T) {
		b := domain.NewBoard(2)
		b.Values[0][0] = 9
		unique, _, err := s.Unique(ctx, b)
		require.NoError(t, err)
		assert.False(t, unique)
	})
}
