package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullDigitSet(t *testing.T) {
	s := FullDigitSet(9)
	require.Equal(t, 9, s.Len())
	for d := uint8(1); d <= 9; d++ {
		assert.True(t, s.Has(d))
	}
	assert.False(t, s.Has(0))
	assert.False(t, s.Has(10))
}

func TestDigitSetRemoveAndSole(t *testing.T) {
	s := FullDigitSet(4)
	s.Remove(2)
	s.Remove(3)
	s.Remove(200) // out of range, no-op

	require.Equal(t, 2, s.Len())
	_, ok := s.Sole()
	assert.False(t, ok)

	s.Remove(4)
	d, ok := s.Sole()
	require.True(t, ok)
	assert.Equal(t, uint8(1), d)
}

func TestDigitSetDigitsAscending(t *testing.T) {
	s := NewDigitSet(9)
	s.Add(7)
	s.Add(1)
	s.Add(4)
	assert.Equal(t, []uint8{1, 4, 7}, s.Digits())
}

func TestDigitSetCloneIsIndependent(t *testing.T) {
	s := FullDigitSet(4)
	c := s.Clone()
	c.Remove(1)

	assert.True(t, s.Has(1))
	assert.False(t, c.Has(1))
	assert.False(t, s.Equal(c))
}

func TestDigitSetLargeDigits(t *testing.T) {
	// 64 crosses the first word boundary.
	s := FullDigitSet(64)
	require.Equal(t, 64, s.Len())
	assert.True(t, s.Has(64))
	s.Remove(64)
	assert.False(t, s.Has(64))
	assert.Equal(t, 63, s.Len())
}
