// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() yields ids in ascending order.
//
// Concurrency:
//   - Mutations under the write lock; queries snapshot under the read lock.

package core

import (
	"fmt"
	"iter"

	"github.com/xosmig/breaking-the-cycle/bitset"
)

// AddVertex appends an isolated vertex and returns its id.
// Complexity: O(n) row resizes.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.out)
	n := id + 1
	for i := range g.out {
		g.out[i].Resize(n)
		g.in[i].Resize(n)
	}
	g.out = append(g.out, bitset.New(n))
	g.in = append(g.in, bitset.New(n))

	return id
}

// Vertices yields every vertex id in ascending order.
func (g *Graph) Vertices() iter.Seq[int] {
	n := g.NumVertices()

	return func(yield func(int) bool) {
		for v := 0; v < n; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// OutNeighbors yields the heads of the edges leaving v in ascending order.
// An unknown id yields nothing.
func (g *Graph) OutNeighbors(v int) iter.Seq[int] {
	return g.rowSnapshot(g.out, v).Iter()
}

// InNeighbors yields the tails of the edges entering v in ascending order.
// An unknown id yields nothing.
func (g *Graph) InNeighbors(v int) iter.Seq[int] {
	return g.rowSnapshot(g.in, v).Iter()
}

// rowSnapshot copies rows[v] under the read lock.
func (g *Graph) rowSnapshot(rows []*bitset.BitSet, v int) *bitset.BitSet {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validVertex(v) {
		return bitset.New(0)
	}

	return rows[v].Clone()
}

// OutDegree reports the number of edges leaving v (a loop counts once).
func (g *Graph) OutDegree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validVertex(v) {
		return 0, fmt.Errorf("core: OutDegree(%d): %w", v, ErrVertexNotFound)
	}

	return g.out[v].Cardinality(), nil
}

// InDegree reports the number of edges entering v (a loop counts once).
func (g *Graph) InDegree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validVertex(v) {
		return 0, fmt.Errorf("core: InDegree(%d): %w", v, ErrVertexNotFound)
	}

	return g.in[v].Cardinality(), nil
}

// RemoveVertex deletes every edge incident to v. The id stays valid and the
// vertex becomes isolated, so other ids never shift.
// Complexity: O(deg(v) + n/64).
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validVertex(v) {
		return fmt.Errorf("core: RemoveVertex(%d): %w", v, ErrVertexNotFound)
	}
	for w := range g.out[v].Iter() {
		g.in[w].UnsetBit(v)
		g.edges--
	}
	for u := range g.in[v].Iter() {
		// the loop v→v was already counted through the out-row
		if u != v {
			g.out[u].UnsetBit(v)
			g.edges--
		}
	}
	g.out[v].UnsetAll()
	g.in[v].UnsetAll()

	return nil
}
