package exact

import "math/bits"

// Word is the set of unsigned integer types that can hold one vertex's
// neighbor mask. A graph encoded with Word W has at most bits(W) vertices.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits reports the width of W in bits.
func wordBits[W Word]() int {
	return bits.OnesCount64(uint64(^W(0)))
}

// bit returns the mask with only bit i set.
func bit[W Word](i int) W {
	return W(1) << uint(i)
}

// lowMask returns the mask with bits 0..n-1 set.
func lowMask[W Word](n int) W {
	if n >= wordBits[W]() {
		return ^W(0)
	}

	return bit[W](n) - 1
}

func popcount[W Word](w W) int {
	return bits.OnesCount64(uint64(w))
}

// lowest returns the index of the lowest set bit of a non-zero w.
func lowest[W Word](w W) int {
	return bits.TrailingZeros64(uint64(w))
}

// has reports whether bit i of w is set.
func has[W Word](w W, i int) bool {
	return w&bit[W](i) != 0
}
