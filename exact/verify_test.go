package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xosmig/breaking-the-cycle/builder"
	"github.com/xosmig/breaking-the-cycle/dfs"
	"github.com/xosmig/breaking-the-cycle/exact"
)

func TestVerify(t *testing.T) {
	g := edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 3})

	assert.NoError(t, exact.Verify(g, []int{0, 3}))
	assert.NoError(t, exact.Verify(g, []int{3, 2, 1}))

	assert.ErrorIs(t, exact.Verify(g, []int{3}), exact.ErrNotAcyclic)
	assert.ErrorIs(t, exact.Verify(g, []int{0}), exact.ErrNotAcyclic)
	assert.ErrorIs(t, exact.Verify(g, []int{0, 4}), exact.ErrInvalidSolution)
	assert.ErrorIs(t, exact.Verify(g, []int{-1}), exact.ErrInvalidSolution)
	assert.ErrorIs(t, exact.Verify(g, []int{3, 0, 3}), exact.ErrInvalidSolution)
}

func TestVerify_LargeGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(100), builder.Cycle(50))
	require.NoError(t, err)
	assert.NoError(t, exact.Verify(g, []int{7, 120}))
	assert.ErrorIs(t, exact.Verify(g, []int{7}), exact.ErrNotAcyclic)
}

func TestRemoveSolution(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4), builder.SelfLoops(2), builder.Path(3))
	require.NoError(t, err)
	sol, ok := exact.Solve(g)
	require.True(t, ok)

	require.NoError(t, exact.RemoveSolution(g, sol))
	assert.True(t, dfs.IsAcyclic(g))
	assert.Equal(t, 2, g.NumEdges()) // only the path survives
	for _, v := range sol {
		d, err := g.OutDegree(v)
		require.NoError(t, err)
		assert.Zero(t, d)
	}

	assert.ErrorIs(t, exact.RemoveSolution(g, []int{42}), exact.ErrInvalidSolution)
}
