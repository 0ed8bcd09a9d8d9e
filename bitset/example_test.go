package bitset_test

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/bitset"
)

// ExampleBitSet_Iter shows the ascending iteration over set bits and the
// cardinality kept in sync with single-bit updates.
func ExampleBitSet_Iter() {
	b := bitset.New(130)
	b.SetBit(3)
	b.SetBit(64)
	b.SetBit(129)
	b.UnsetBit(3)

	var got []int
	for i := range b.Iter() {
		got = append(got, i)
	}
	fmt.Println(got)
	fmt.Println(b.Cardinality())

	// Output:
	// [64 129]
	// 2
}

// ExampleBitSet_AndNot removes one set from another.
func ExampleBitSet_AndNot() {
	all := bitset.NewAllSet(6)
	all.AndNot(bitset.NewAllUnsetBut(6, 0, 5))
	fmt.Println(all)

	// Output:
	// BitSet{cardinality: 4, bits: [1, 2, 3, 4]}
}
