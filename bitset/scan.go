package bitset

import (
	"iter"
	"math/bits"
)

// FirstSet returns the lowest set index.
func (b *BitSet) FirstSet() (int, bool) {
	if b.cardinality == 0 {
		return 0, false
	}

	return b.NextSet(0)
}

// NextSet returns the lowest set index ≥ i, or false when there is none.
//
//	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) { ... }
func (b *BitSet) NextSet(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= b.length {
		return 0, false
	}
	x := i >> log2WordSize
	// ignore the bits below i in the first word
	w := b.words[x] & (allOnes << (uint(i) & (wordSize - 1)))
	for w == 0 {
		x++
		if x >= len(b.words) {
			return 0, false
		}
		w = b.words[x]
	}
	v := x<<log2WordSize + bits.TrailingZeros64(w)
	if v >= b.length {
		return 0, false
	}

	return v, true
}

// FirstUnset returns the lowest unset index.
func (b *BitSet) FirstUnset() (int, bool) {
	if b.cardinality == b.length {
		return 0, false
	}

	return b.NextUnset(0)
}

// NextUnset returns the lowest unset index ≥ i, or false when there is none.
func (b *BitSet) NextUnset(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= b.length {
		return 0, false
	}
	x := i >> log2WordSize
	// pretend the bits below i are set
	w := b.words[x] | (uint64(1)<<(uint(i)&(wordSize-1)) - 1)
	for w == allOnes {
		x++
		if x >= len(b.words) {
			return 0, false
		}
		w = b.words[x]
	}
	v := x<<log2WordSize + bits.TrailingZeros64(^w)
	if v >= b.length {
		// the zero tail of the last word is not part of the domain
		return 0, false
	}

	return v, true
}

// Iter returns the set indices in ascending order. The sequence is lazy and
// each range over it restarts from index 0. Mutating words that have not been
// reached yet is visible to the running iteration.
func (b *BitSet) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for x := 0; x < len(b.words); x++ {
			w := b.words[x]
			for w != 0 {
				if !yield(x<<log2WordSize + bits.TrailingZeros64(w)) {
					return
				}
				w &= w - 1 // drop lowest set bit
			}
		}
	}
}
