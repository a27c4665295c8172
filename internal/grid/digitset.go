package grid

import "math/bits"

// DigitSet holds candidate digits for a cell as a bitset. Digit d lives in
// word d>>6, bit d&0x3f, so any block size stays cheap to copy and compare.
type DigitSet struct {
	words []uint64
}

// NewDigitSet returns an empty set able to hold digits 1..max.
func NewDigitSet(max int) DigitSet {
	return DigitSet{words: make([]uint64, (max>>6)+1)}
}

// FullDigitSet returns the set {1..max}.
func FullDigitSet(max int) DigitSet {
	s := NewDigitSet(max)
	for d := 1; d <= max; d++ {
		s.words[d>>6] |= 1 << (d & 0x3f)
	}
	return s
}

// Has reports whether d is a member. Digits outside the set's range are
// simply not members, never an error.
func (s DigitSet) Has(d uint8) bool {
	w := int(d) >> 6
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(int(d)&0x3f)) != 0
}

// Add inserts d. Panics if d is beyond the set's capacity.
func (s DigitSet) Add(d uint8) {
	s.words[int(d)>>6] |= 1 << (int(d) & 0x3f)
}

// Remove deletes d if present.
func (s DigitSet) Remove(d uint8) {
	w := int(d) >> 6
	if w < len(s.words) {
		s.words[w] &^= 1 << (int(d) & 0x3f)
	}
}

// Len returns the number of members.
func (s DigitSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Sole returns the single member of a singleton set.
func (s DigitSet) Sole() (uint8, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	for i, w := range s.words {
		if w != 0 {
			return uint8(i<<6 + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

// Digits returns the members in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, uint8(i<<6+b))
			w &^= 1 << b
		}
	}
	return out
}

// Clone returns a copy sharing no storage with s.
func (s DigitSet) Clone() DigitSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return DigitSet{words: words}
}

// Equal reports whether both sets have the same members.
func (s DigitSet) Equal(o DigitSet) bool {
	if len(s.words) != len(o.words) {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}
	return true
}
