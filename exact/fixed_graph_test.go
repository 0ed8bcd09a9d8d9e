package exact

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xosmig/breaking-the-cycle/core"
)

func TestWordHelpers(t *testing.T) {
	assert.Equal(t, 8, wordBits[uint8]())
	assert.Equal(t, 64, wordBits[uint64]())
	assert.Equal(t, uint8(0xff), lowMask[uint8](8))
	assert.Equal(t, uint16(0x7), lowMask[uint16](3))
	assert.Equal(t, ^uint64(0), lowMask[uint64](64))
	assert.Equal(t, uint32(0), lowMask[uint32](0))
	assert.True(t, has(uint8(0b100), 2))
	assert.Equal(t, 3, lowest(uint16(0b11000)))
}

func TestPextPortable(t *testing.T) {
	assert.Equal(t, uint64(0b1011), pextPortable(0b1011_0110, 0b1111_0000))
	assert.Equal(t, uint64(0b1101), pextPortable(0b1_0000_0100_0001, 0b1_0000_0100_0011))
	// a cleared source bit under the mask leaves a zero in the packed result
	assert.Equal(t, uint64(0b1001), pextPortable(0b1_0000_0000_0001, 0b1_0000_0100_0011))
	assert.Equal(t, uint64(0), pextPortable(^uint64(0), 0))
	assert.Equal(t, ^uint64(0), pextPortable(^uint64(0), ^uint64(0)))
	assert.Equal(t, uint64(1), pextPortable(1<<63, 1<<63))
}

func TestPextHardwareAgrees(t *testing.T) {
	if !hasBMI2 {
		t.Skip("BMI2 not available")
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		src, mask := rng.Uint64(), rng.Uint64()
		require.Equal(t, pextPortable(src, mask), pextHardware(src, mask), "src=%#x mask=%#x", src, mask)
	}
}

func TestSelectExtract(t *testing.T) {
	f := selectExtract(true)
	assert.Equal(t, uint64(0b11), f(0b1010, 0b1010))
	assert.Equal(t, uint64(0b11), selectExtract(false)(0b1010, 0b1010))
}

// 0→1→2→0, 2→3, 3→3, 4 isolated.
func fixture() *fixedGraph[uint8] {
	g := core.MustFromEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 4})
	g.TryRemoveEdge(4, 4)
	return encode[uint8](g)
}

func TestEncode(t *testing.T) {
	fg := fixture()
	assert.Equal(t, uint8(0b11111), fg.active)
	assert.Equal(t, 5, fg.order())
	assert.Equal(t, uint8(0b1001), fg.out[2])
	assert.Equal(t, uint8(0b1100), fg.in[3])
	assert.True(t, fg.hasSelfLoop(3))
	assert.False(t, fg.hasSelfLoop(2))
	assert.Equal(t, uint8(0b1000), fg.selfLoops())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fg.ids)
}

func TestRemoveVertex(t *testing.T) {
	fg := fixture()
	before := fg.clone()
	fg.removeVertex(2)

	assert.Equal(t, uint8(0b11011), fg.active)
	assert.Equal(t, uint8(0), fg.out[1])
	assert.Equal(t, uint8(0), fg.in[0])
	assert.Equal(t, uint8(0b1000), fg.in[3])
	assert.Equal(t, uint8(0), fg.out[2]|fg.in[2])

	// clone is independent
	assert.Equal(t, uint8(0b100), before.out[1])
	assert.Equal(t, uint8(0b11111), before.active)
}

func TestComponents(t *testing.T) {
	fg := fixture()
	comps := components(fg)
	// post-order of roots: {3} finalizes before {0,1,2}; 4 is visited last.
	assert.Equal(t, []uint8{0b1000, 0b0111, 0b10000}, comps)
	assert.True(t, nontrivial(fg, comps[0]))
	assert.True(t, nontrivial(fg, comps[1]))
	assert.False(t, nontrivial(fg, comps[2]))

	fg.removeVertex(1)
	assert.Equal(t, []uint8{0b0001, 0b1000, 0b0100, 0b10000}, components(fg))
}

func TestCompact(t *testing.T) {
	fg := fixture()
	for _, extract := range []extractFunc{pextPortable, selectExtract(false)} {
		sub := fg.compact(0b1101, extract) // vertices 0, 2, 3
		assert.Equal(t, []int{0, 2, 3}, sub.ids)
		assert.Equal(t, uint8(0b111), sub.active)
		assert.Equal(t, uint8(0), sub.out[0])     // 0→1 dropped
		assert.Equal(t, uint8(0b101), sub.out[1]) // 2→0, 2→3
		assert.Equal(t, uint8(0b100), sub.out[2]) // 3→3
		assert.Equal(t, []int{2, 3}, sub.originals(0b110))
	}
}
