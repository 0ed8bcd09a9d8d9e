package bitset

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	wordSize     = 64 // bits per storage word
	log2WordSize = 6  // lg(wordSize)
	allOnes      = ^uint64(0)
)

// ErrIndexOutOfRange is the panic payload (wrapped) for accesses outside [0, Len()).
var ErrIndexOutOfRange = errors.New("bitset: index out of range")

// BitSet is a fixed-length set of bits with a maintained cardinality.
// The zero value is an empty set of length 0.
type BitSet struct {
	length      int      // declared domain size
	cardinality int      // number of set bits below length
	words       []uint64 // little-endian bit order inside each word
}

// wordsNeeded returns the number of words holding n bits.
func wordsNeeded(n int) int {
	return (n + wordSize - 1) >> log2WordSize
}

// New returns a BitSet of length n with every bit unset.
// It panics if n is negative.
func New(n int) *BitSet {
	if n < 0 {
		panic(fmt.Errorf("bitset: New(%d): %w", n, ErrIndexOutOfRange))
	}

	return &BitSet{length: n, words: make([]uint64, wordsNeeded(n))}
}

// NewAllSet returns a BitSet of length n with every bit set.
func NewAllSet(n int) *BitSet {
	b := New(n)
	b.SetAll()

	return b
}

// NewAllSetBut returns a BitSet of length n with every bit set except the
// listed ones.
func NewAllSetBut(n int, unset ...int) *BitSet {
	b := NewAllSet(n)
	for _, i := range unset {
		b.UnsetBit(i)
	}

	return b
}

// NewAllUnsetBut returns a BitSet of length n with only the listed bits set.
func NewAllUnsetBut(n int, set ...int) *BitSet {
	b := New(n)
	for _, i := range set {
		b.SetBit(i)
	}

	return b
}

// FromWords builds a BitSet of length n from a copy of words. Missing words
// are zero, surplus words and bits beyond n are discarded.
func FromWords(n int, words []uint64) *BitSet {
	b := New(n)
	copy(b.words, words)
	b.clearTail()
	b.recount()

	return b
}

// Len reports the declared length of the set.
func (b *BitSet) Len() int { return b.length }

// Cardinality reports the number of set bits.
func (b *BitSet) Cardinality() int { return b.cardinality }

// Empty reports whether no bit is set.
func (b *BitSet) Empty() bool { return b.cardinality == 0 }

// Full reports whether every bit below Len() is set.
func (b *BitSet) Full() bool { return b.cardinality == b.length }

// Words exposes the backing storage. It is not a copy; callers must keep the
// tail bits zero and must not change the slice length.
func (b *BitSet) Words() []uint64 { return b.words }

// checkIndex panics with ErrIndexOutOfRange when i is outside [0, Len()).
func (b *BitSet) checkIndex(method string, i int) {
	if i < 0 || i >= b.length {
		panic(fmt.Errorf("bitset: %s(%d) with length %d: %w", method, i, b.length, ErrIndexOutOfRange))
	}
}

// At reports whether bit i is set.
func (b *BitSet) At(i int) bool {
	b.checkIndex("At", i)

	return b.words[i>>log2WordSize]&(1<<(uint(i)&(wordSize-1))) != 0
}

// SetBit sets bit i and returns its previous state.
func (b *BitSet) SetBit(i int) bool {
	b.checkIndex("SetBit", i)
	w := &b.words[i>>log2WordSize]
	mask := uint64(1) << (uint(i) & (wordSize - 1))
	if *w&mask != 0 {
		return true
	}
	*w |= mask
	b.cardinality++

	return false
}

// UnsetBit clears bit i and returns its previous state.
func (b *BitSet) UnsetBit(i int) bool {
	b.checkIndex("UnsetBit", i)
	w := &b.words[i>>log2WordSize]
	mask := uint64(1) << (uint(i) & (wordSize - 1))
	if *w&mask == 0 {
		return false
	}
	*w &^= mask
	b.cardinality--

	return true
}

// SetAll sets every bit below Len().
func (b *BitSet) SetAll() {
	for i := range b.words {
		b.words[i] = allOnes
	}
	b.clearTail()
	b.cardinality = b.length
}

// UnsetAll clears every bit.
func (b *BitSet) UnsetAll() {
	clear(b.words)
	b.cardinality = 0
}

// Resize changes the declared length. Growing zero-extends; shrinking drops
// the bits at positions ≥ n and recomputes the cardinality.
func (b *BitSet) Resize(n int) {
	if n < 0 {
		panic(fmt.Errorf("bitset: Resize(%d): %w", n, ErrIndexOutOfRange))
	}
	need := wordsNeeded(n)
	switch {
	case need > len(b.words):
		grown := make([]uint64, need)
		copy(grown, b.words)
		b.words = grown
	case need < len(b.words):
		b.words = b.words[:need:need]
	}
	shrink := n < b.length
	b.length = n
	if shrink {
		b.clearTail()
		b.recount()
	}
}

// Clone returns an independent copy. An empty set is cloned by allocating a
// fresh zero-filled set instead of copying its words.
func (b *BitSet) Clone() *BitSet {
	if b.cardinality == 0 {
		return New(b.length)
	}
	words := make([]uint64, len(b.words))
	copy(words, b.words)

	return &BitSet{length: b.length, cardinality: b.cardinality, words: words}
}

// Equal reports whether both sets have the same length and the same bits.
func (b *BitSet) Equal(other *BitSet) bool {
	if b.length != other.length || b.cardinality != other.cardinality {
		return false
	}
	for i, w := range b.words {
		if w != other.words[i] {
			return false
		}
	}

	return true
}

// ToSlice returns the set indices in ascending order.
func (b *BitSet) ToSlice() []int {
	out := make([]int, 0, b.cardinality)
	for i := range b.Iter() {
		out = append(out, i)
	}

	return out
}

// String renders the set as "BitSet{cardinality: 2, bits: [1, 4]}".
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteString("BitSet{cardinality: ")
	sb.WriteString(strconv.Itoa(b.cardinality))
	sb.WriteString(", bits: [")
	first := true
	for i := range b.Iter() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteString("]}")

	return sb.String()
}

// clearTail zeroes the bits of the last word that lie beyond the length.
func (b *BitSet) clearTail() {
	if r := uint(b.length) & (wordSize - 1); r != 0 {
		b.words[len(b.words)-1] &= (uint64(1) << r) - 1
	}
}

// recount recomputes the cardinality with a full popcount pass.
func (b *BitSet) recount() {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	b.cardinality = n
}
