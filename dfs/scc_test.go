package dfs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xosmig/breaking-the-cycle/core"
	"github.com/xosmig/breaking-the-cycle/dfs"
)

// normalize sorts every component and then the components by first vertex.
func normalize(sccs [][]int) [][]int {
	for _, c := range sccs {
		slices.Sort(c)
	}
	slices.SortFunc(sccs, func(a, b []int) int { return a[0] - b[0] })

	return sccs
}

func TestSCC_ThreeComponents(t *testing.T) {
	g := core.MustFromEdges(
		[2]int{0, 1}, [2]int{1, 2}, [2]int{1, 4}, [2]int{1, 5},
		[2]int{2, 6}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 7},
		[2]int{4, 0}, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 5},
		[2]int{7, 3}, [2]int{7, 6},
	)
	sccs := dfs.StronglyConnectedComponents(g)
	require.Len(t, sccs, 3)
	for _, c := range sccs {
		assert.NotEmpty(t, c)
	}
	assert.Equal(t, [][]int{{0, 1, 4}, {2, 3, 7}, {5, 6}}, normalize(sccs))
}

func TestSCC_TreeHasSingletonsOnly(t *testing.T) {
	// in a directed tree each vertex is a strongly connected component
	g := core.MustFromEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{3, 5}, [2]int{3, 6})
	sccs := normalize(dfs.StronglyConnectedComponents(g))
	require.Len(t, sccs, 7)
	for i, c := range sccs {
		assert.Equal(t, []int{i}, c)
	}
}

func TestSCC_SimpleCycle(t *testing.T) {
	for k := 2; k <= 9; k++ {
		g := core.NewGraph(k)
		for i := 0; i < k; i++ {
			require.NoError(t, g.AddEdge(i, (i+1)%k))
		}
		sccs := dfs.StronglyConnectedComponents(g)
		require.Len(t, sccs, 1)
		assert.Len(t, sccs[0], k)
	}
}

func TestSCC_FinalizationOrderIsPostOrder(t *testing.T) {
	// 0 → {1,2} cycle → 3: the sink component closes first, the source last
	g := core.MustFromEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 3})
	sccs := dfs.StronglyConnectedComponents(g)
	require.Len(t, sccs, 3)
	assert.Equal(t, []int{3}, sccs[0])
	assert.ElementsMatch(t, []int{1, 2}, sccs[1])
	assert.Equal(t, []int{0}, sccs[2])
}

func TestSCC_EmptyAndNil(t *testing.T) {
	assert.Nil(t, dfs.StronglyConnectedComponents(nil))
	assert.Empty(t, dfs.StronglyConnectedComponents(core.NewGraph(0)))
}

func TestSCC_PartitionCoversAllVertices(t *testing.T) {
	g := core.MustFromEdges([2]int{0, 0}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1}, [2]int{5, 5})
	seen := make(map[int]int)
	for _, c := range dfs.StronglyConnectedComponents(g) {
		for _, v := range c {
			seen[v]++
		}
	}
	assert.Len(t, seen, 6)
	for v, k := range seen {
		assert.Equal(t, 1, k, "vertex %d must appear exactly once", v)
	}
}
