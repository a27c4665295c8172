package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/generator"
	"svw.info/sudokusolver/internal/grid"
	"svw.info/sudokusolver/internal/hint"
	"svw.info/sudokusolver/internal/solver"
	"svw.info/sudokusolver/internal/validator"
)

func newTestService() *Service {
	s := solver.NewCPSolver()
	return NewService(s, generator.NewUniqueGenerator(s, 2), validator.New(), hint.NewSingles(), nil)
}

func TestSolveRejectsConflictingGivens(t *testing.T) {
	b := domain.NewBoard(2)
	b.Values[0][0] = 1
	b.Values[0][3] = 1

	_, _, err := newTestService().Solve(context.Background(), b)
	require.ErrorIs(t, err, grid.ErrContradiction)
}

func TestSolveEmptyBoard(t *testing.T) {
	out, _, err := newTestService().Solve(context.Background(), domain.NewBoard(2))
	require.NoError(t, err)
	for _, row := range out.Values {
		for _, v := range row {
			assert.NotZero(t, v)
		}
	}
}

func TestGenerateStampsID(t *testing.T) {
	p, _, err := newTestService().Generate(context.Background(), 7, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, "easy-7", p.ID)
}

func TestUniquePassThrough(t *testing.T) {
	unique, _, err := newTestService().Unique(context.Background(), domain.NewBoard(2))
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestNotConfigured(t *testing.T) {
	u := &Service{}
	ctx := context.Background()

	_, _, err := u.Solve(ctx, domain.NewBoard(2))
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Validate(ctx, domain.NewBoard(2))
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Hint(ctx, domain.NewBoard(2), domain.StrategySingles)
	assert.ErrorIs(t, err, errNotConfigured)
	assert.ErrorIs(t, u.Save(ctx, nil), errNotConfigured)
	_, err = u.Load(ctx, "x")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = u.List(ctx)
	assert.ErrorIs(t, err, errNotConfigured)
}
