package bitset

// And keeps only the bits also set in other. Positions beyond other's length
// count as unset.
func (b *BitSet) And(other *BitSet) {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &= other.words[i]
		} else {
			b.words[i] = 0
		}
	}
	b.recount()
}

// Or adds the bits of other. The receiver grows to other's length first when
// other is longer.
func (b *BitSet) Or(other *BitSet) {
	if other.length > b.length {
		b.Resize(other.length)
	}
	for i, w := range other.words {
		b.words[i] |= w
	}
	b.recount()
}

// AndNot clears every bit that is set in other.
func (b *BitSet) AndNot(other *BitSet) {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		b.words[i] &^= other.words[i]
	}
	b.recount()
}

// Not flips every bit below Len().
func (b *BitSet) Not() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.clearTail()
	b.recount()
}

// IsDisjointWith reports whether no index is set in both sets. A word pair is
// disjoint exactly when its XOR equals its OR; zero padding is always disjoint.
func (b *BitSet) IsDisjointWith(other *BitSet) bool {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		x, y := b.words[i], other.words[i]
		if x^y != x|y {
			return false
		}
	}

	return true
}

// IntersectsWith reports whether at least one index is set in both sets.
func (b *BitSet) IntersectsWith(other *BitSet) bool {
	return !b.IsDisjointWith(other)
}

// IsSubsetOf reports whether every bit set in b is also set in other.
func (b *BitSet) IsSubsetOf(other *BitSet) bool {
	// fast reject on cardinality
	if b.cardinality > other.cardinality {
		return false
	}
	for i, x := range b.words {
		var y uint64
		if i < len(other.words) {
			y = other.words[i]
		}
		if x|y != y {
			return false
		}
	}

	return true
}

// IsSupersetOf reports whether every bit set in other is also set in b.
func (b *BitSet) IsSupersetOf(other *BitSet) bool {
	return other.IsSubsetOf(b)
}
