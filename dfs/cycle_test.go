package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xosmig/breaking-the-cycle/core"
	"github.com/xosmig/breaking-the-cycle/dfs"
)

// assertIsCycle checks that consecutive vertices of cycle are joined by edges,
// including the closing edge.
func assertIsCycle(t *testing.T, g *core.Graph, cycle []int) {
	t.Helper()
	require.NotEmpty(t, cycle)
	for i, u := range cycle {
		v := cycle[(i+1)%len(cycle)]
		assert.True(t, g.HasEdge(u, v), "missing edge %d→%d", u, v)
	}
}

func TestFindCycle_NilAndEmpty(t *testing.T) {
	cycle, found := dfs.FindCycle(nil)
	assert.False(t, found)
	assert.Nil(t, cycle)
	assert.True(t, dfs.IsAcyclic(core.NewGraph(4)))
}

func TestFindCycle_DAG(t *testing.T) {
	g := core.MustFromEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 6}, [2]int{3, 4}, [2]int{4, 5})
	_, found := dfs.FindCycle(g)
	assert.False(t, found)
	assert.True(t, dfs.IsAcyclic(g))
}

func TestFindCycle_SelfLoop(t *testing.T) {
	g := core.MustFromEdges([2]int{0, 1}, [2]int{1, 1})
	cycle, found := dfs.FindCycle(g)
	require.True(t, found)
	assert.Equal(t, []int{1}, cycle)
}

func TestFindCycle_ReturnsValidCycle(t *testing.T) {
	g := core.MustFromEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 4})
	cycle, found := dfs.FindCycle(g)
	require.True(t, found)
	assertIsCycle(t, g, cycle)
	assert.ElementsMatch(t, []int{1, 2, 3}, cycle)
	assert.False(t, dfs.IsAcyclic(g))
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_Chain(t *testing.T) {
	g := core.MustFromEdges([2]int{2, 0}, [2]int{0, 1})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, order)
}

func TestTopo_RespectsEveryEdge(t *testing.T) {
	g := core.MustFromEdges([2]int{0, 3}, [2]int{1, 3}, [2]int{3, 4}, [2]int{2, 4}, [2]int{5, 0})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	position := make([]int, g.NumVertices())
	for i, v := range order {
		position[v] = i
	}
	for u, v := range g.Edges() {
		assert.Less(t, position[u], position[v], "edge %d→%d", u, v)
	}
}

func TestTopo_CycleAndSelfLoop(t *testing.T) {
	_, err := dfs.TopologicalSort(core.MustFromEdges([2]int{0, 1}, [2]int{1, 0}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	_, err = dfs.TopologicalSort(core.MustFromEdges([2]int{0, 0}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopo_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(core.MustFromEdges([2]int{0, 1}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
