// Package dfs: cycle witnesses.
//
// FindCycle returns one directed cycle using three-color marking: reaching a
// Gray vertex closes a cycle made of the path suffix starting at it.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"github.com/xosmig/breaking-the-cycle/core"
)

// cycleFinder holds the coloring and the current DFS path.
type cycleFinder struct {
	graph core.AdjacencyList
	state []int // White / Gray / Black
	pos   []int // position of a Gray vertex on path
	path  []int
	cycle []int
}

// FindCycle returns the vertices of one directed cycle, in edge order, or
// false when g is acyclic. A self-loop at v is reported as [v].
// The search starts from the smallest vertex id, so the result is deterministic.
func FindCycle(g core.AdjacencyList) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	n := g.NumVertices()
	f := &cycleFinder{
		graph: g,
		state: make([]int, n),
		pos:   make([]int, n),
		path:  make([]int, 0, n),
	}
	for v := range g.Vertices() {
		if f.state[v] == White && f.visit(v) {
			return f.cycle, true
		}
	}

	return nil, false
}

// IsAcyclic reports whether g contains no directed cycle (self-loops included).
func IsAcyclic(g core.AdjacencyList) bool {
	_, found := FindCycle(g)

	return !found
}

// visit explores v and reports whether a cycle was recorded.
func (f *cycleFinder) visit(v int) bool {
	f.state[v] = Gray
	f.pos[v] = len(f.path)
	f.path = append(f.path, v)

	for w := range f.graph.OutNeighbors(v) {
		switch f.state[w] {
		case Gray:
			// back edge v→w: the path from w to v is a cycle
			f.cycle = append([]int(nil), f.path[f.pos[w]:]...)
			return true
		case White:
			if f.visit(w) {
				return true
			}
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return false
}
