// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/TryRemoveEdge/HasEdge/
//       HasSelfLoop/Edges.
// Determinism:
//   - Edges() yields pairs sorted by (from, to).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"iter"
)

// AddEdge inserts the directed edge u→v.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrLoopNotAllowed if u == v and loops are disabled.
//   - ErrDuplicateEdge if u→v already exists.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validVertex(u) || !g.validVertex(v) {
		return fmt.Errorf("core: AddEdge(%d→%d): %w", u, v, ErrVertexNotFound)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("core: AddEdge(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}
	if g.out[u].SetBit(v) {
		return fmt.Errorf("core: AddEdge(%d→%d): %w", u, v, ErrDuplicateEdge)
	}
	g.in[v].SetBit(u)
	g.edges++

	return nil
}

// RemoveEdge deletes the edge u→v.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrEdgeNotFound if the edge is absent.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validVertex(u) || !g.validVertex(v) {
		return fmt.Errorf("core: RemoveEdge(%d→%d): %w", u, v, ErrVertexNotFound)
	}
	if !g.out[u].UnsetBit(v) {
		return fmt.Errorf("core: RemoveEdge(%d→%d): %w", u, v, ErrEdgeNotFound)
	}
	g.in[v].UnsetBit(u)
	g.edges--

	return nil
}

// TryRemoveEdge deletes u→v if present and reports whether it did.
func (g *Graph) TryRemoveEdge(u, v int) bool {
	return g.RemoveEdge(u, v) == nil
}

// HasEdge reports whether u→v exists. Unknown ids report false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validVertex(u) || !g.validVertex(v) {
		return false
	}

	return g.out[u].At(v)
}

// HasSelfLoop reports whether v→v exists.
func (g *Graph) HasSelfLoop(v int) bool {
	return g.HasEdge(v, v)
}

// Edges yields every edge (from, to) ordered by from, then to. The sequence
// reflects the graph at the moment Edges was called.
// Complexity: O(n²/64 + E).
func (g *Graph) Edges() iter.Seq2[int, int] {
	g.mu.RLock()
	rows := make([][]int, len(g.out))
	for u, row := range g.out {
		rows[u] = row.ToSlice()
	}
	g.mu.RUnlock()

	return func(yield func(int, int) bool) {
		for u, heads := range rows {
			for _, v := range heads {
				if !yield(u, v) {
					return
				}
			}
		}
	}
}
