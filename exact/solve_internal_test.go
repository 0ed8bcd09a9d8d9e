package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xosmig/breaking-the-cycle/builder"
)

func TestMustBeBoundLimited(t *testing.T) {
	assert.PanicsWithValue(t, "exact: no solution with bound 4 on 4 vertices", func() { mustBeBoundLimited(4, 4) })
	assert.Panics(t, func() { mustBeBoundLimited(5, 4) })
	assert.NotPanics(t, func() { mustBeBoundLimited(3, 4) })
	assert.NotPanics(t, func() { mustBeBoundLimited(0, 4) })
}

// Any bound of at least n vertices admits removing everything, so every
// entry point reports a solution.
func TestSolve_BoundAtLeastOrderAlwaysSolves(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5), builder.SelfLoops(2))
	require.NoError(t, err)
	n := g.NumVertices()
	for _, k := range []int{n, n + 1, 3 * n} {
		sol, ok := Solve(g, WithUpperBound(k))
		require.True(t, ok, "bound %d", k)
		assert.Equal(t, []int{0, 1, 2, 3, 5, 6}, sol, "bound %d", k)

		bb := NewBranchAndBound(g, WithUpperBound(k))
		assert.NotPanics(t, bb.Step)
		assert.True(t, bb.Solved())
	}
}
