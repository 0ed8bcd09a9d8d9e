// Package dfs: Tarjan's strongly connected components.
//
// StronglyConnectedComponents partitions the vertices of a directed graph into
// maximal sets that are mutually reachable. Each vertex moves through three
// states: unvisited (index < 0), on the stack, and finalized (assigned to a
// component, popped off the stack).
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion, stack, per-vertex index/low-link, on-stack bits)
package dfs

import (
	"github.com/xosmig/breaking-the-cycle/bitset"
	"github.com/xosmig/breaking-the-cycle/core"
)

// sccFinder is the transient state of one decomposition.
type sccFinder struct {
	graph      core.AdjacencyList
	next       int            // next discovery index
	stack      []int          // Tarjan stack
	index      []int          // discovery index, -1 = unvisited
	lowLink    []int          // smallest index reachable through the DFS subtree
	onStack    *bitset.BitSet // membership of stack
	components [][]int
}

// StronglyConnectedComponents returns the components of g in the order their
// roots finalize (reverse topological order of the condensation). Inside a
// component, vertices appear in the order they were popped.
//
// An acyclic graph yields one singleton per vertex; a simple cycle of length
// k yields one component of size k. A nil graph yields nil.
func StronglyConnectedComponents(g core.AdjacencyList) [][]int {
	if g == nil {
		return nil
	}
	n := g.NumVertices()
	s := &sccFinder{
		graph:   g,
		stack:   make([]int, 0, n),
		index:   make([]int, n),
		lowLink: make([]int, n),
		onStack: bitset.New(n),
	}
	for i := range s.index {
		s.index[i] = -1
	}
	for v := range g.Vertices() {
		if s.index[v] < 0 {
			s.connect(v)
		}
	}

	return s.components
}

// connect visits v and closes a component when v turns out to be its root.
func (s *sccFinder) connect(v int) {
	s.index[v] = s.next
	s.lowLink[v] = s.next
	s.next++
	s.stack = append(s.stack, v)
	s.onStack.SetBit(v)

	for w := range s.graph.OutNeighbors(v) {
		switch {
		case s.index[w] < 0:
			s.connect(w)
			s.lowLink[v] = min(s.lowLink[v], s.lowLink[w])
		case s.onStack.At(w):
			s.lowLink[v] = min(s.lowLink[v], s.index[w])
		}
		// finalized w belongs to an already closed component: ignore
	}

	if s.lowLink[v] != s.index[v] {
		return
	}
	var component []int
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack.UnsetBit(w)
		component = append(component, w)
		if w == v {
			break
		}
	}
	s.components = append(s.components, component)
}
