package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/grid"
)

func TestValidateEmptyBoard(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), domain.NewBoard(3))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidatePartialBoard(t *testing.T) {
	b := domain.NewBoard(3)
	b.Values[0][0] = 5
	b.Values[4][4] = 5
	b.Values[8][8] = 5

	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateRowConflict(t *testing.T) {
	b := domain.NewBoard(3)
	b.Values[2][1] = 9
	b.Values[2][7] = 9

	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 2, Col: 7})
}

func TestValidateColumnConflict(t *testing.T) {
	b := domain.NewBoard(3)
	b.Values[0][3] = 4
	b.Values[6][3] = 4

	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 6, Col: 3})
}

func TestValidateBlockConflict(t *testing.T) {
	b := domain.NewBoard(3)
	b.Values[0][0] = 2
	b.Values[2][2] = 2

	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 2, Col: 2})
}

func TestValidate4x4(t *testing.T) {
	b := domain.NewBoard(2)
	b.Values[1][0] = 3
	b.Values[1][3] = 3

	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, conf, 1)
}

func TestValidateBadSide(t *testing.T) {
	b := &domain.Board{Values: make([][]uint8, 5)}
	for i := range b.Values {
		b.Values[i] = make([]uint8, 5)
	}

	_, _, err := New().Validate(context.Background(), b)
	require.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestValidateIgnoresOutOfRange(t *testing.T) {
	b := domain.NewBoard(2)
	b.Values[0][0] = 9
	b.Values[0][1] = 9

	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}
