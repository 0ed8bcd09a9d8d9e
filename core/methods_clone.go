// File: methods_clone.go
// Role: Whole-graph construction and copies: FromEdges, Clone, VertexInduced.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/bitset"
)

// FromEdges builds a graph whose vertex count is one more than the largest id
// mentioned in edges. Loops are allowed.
//
// Errors:
//   - ErrVertexNotFound for a negative id.
//   - ErrDuplicateEdge when a pair repeats.
func FromEdges(edges [][2]int, opts ...GraphOption) (*Graph, error) {
	n := 0
	for _, e := range edges {
		if e[0] < 0 || e[1] < 0 {
			return nil, fmt.Errorf("core: FromEdges(%d→%d): %w", e[0], e[1], ErrVertexNotFound)
		}
		n = max(n, e[0]+1, e[1]+1)
	}
	g := NewGraph(n, opts...)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// MustFromEdges is FromEdges for fixtures; it panics on error.
func MustFromEdges(edges ...[2]int) *Graph {
	g, err := FromEdges(edges)
	if err != nil {
		panic(err)
	}

	return g
}

// Clone returns a deep copy carrying the same configuration.
// Complexity: O(n²/64).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		out:        make([]*bitset.BitSet, len(g.out)),
		in:         make([]*bitset.BitSet, len(g.in)),
		edges:      g.edges,
	}
	for i := range g.out {
		clone.out[i] = g.out[i].Clone()
		clone.in[i] = g.in[i].Clone()
	}

	return clone
}

// VertexInduced returns the subgraph induced by the vertices set in keep,
// renumbered densely in ascending order, and the mapping from new ids to the
// original ones. Bits of keep beyond NumVertices() are ignored.
func (g *Graph) VertexInduced(keep *bitset.BitSet) (*Graph, []int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.out)
	mask := keep.Clone()
	mask.Resize(n)

	oldIDs := mask.ToSlice()
	newID := make([]int, n)
	for i, old := range oldIDs {
		newID[old] = i
	}

	sub := NewGraph(len(oldIDs))
	sub.allowLoops = g.allowLoops
	for i, old := range oldIDs {
		row := g.out[old].Clone()
		row.And(mask)
		for w := range row.Iter() {
			sub.out[i].SetBit(newID[w])
			sub.in[newID[w]].SetBit(i)
			sub.edges++
		}
	}

	return sub, oldIDs
}
