// File: types.go
// Role: sentinel errors, the capability interfaces, Graph, GraphOption and
// the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound  - vertex id outside [0, NumVertices()).
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrDuplicateEdge   - edge u→v is already present.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.

package core

import (
	"errors"
	"iter"
	"sync"

	"github.com/xosmig/breaking-the-cycle/bitset"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside [0, NumVertices()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates the edge u→v already exists (graphs are simple).
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// AdjacencyList is the read-only capability every algorithm consumes.
//
// Vertex ids are the integers 0..NumVertices()-1. OutNeighbors yields the
// heads of the edges leaving v in ascending order; self-loops appear as v itself.
type AdjacencyList interface {
	NumVertices() int
	NumEdges() int
	Vertices() iter.Seq[int]
	OutNeighbors(v int) iter.Seq[int]
}

// EdgeRemover extends AdjacencyList with the single mutation the algorithms need.
type EdgeRemover interface {
	AdjacencyList
	RemoveEdge(u, v int) error
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-loops (u→u) with ErrLoopNotAllowed.
// Loops are allowed by default: a looped vertex is the simplest cycle.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is a simple directed graph over the vertex ids 0..n-1.
//
// Every vertex owns one out-row and one in-row bit set of length n, so edge
// queries are O(1) and neighbor enumeration is a word scan in ascending id
// order. Memory is O(n²/8) bytes. All methods are safe for concurrent use;
// iterators work on a snapshot taken under the read lock.
type Graph struct {
	mu sync.RWMutex // guards everything below

	allowLoops bool

	out   []*bitset.BitSet // out[u] has bit v iff u→v
	in    []*bitset.BitSet // in[v] has bit u iff u→v
	edges int              // number of edges, loops included
}

// NewGraph creates a Graph with n isolated vertices.
// Complexity: O(n²/64) words allocated.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		allowLoops: true,
		out:        make([]*bitset.BitSet, n),
		in:         make([]*bitset.BitSet, n),
	}
	for i := 0; i < n; i++ {
		g.out[i] = bitset.New(n)
		g.in[i] = bitset.New(n)
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// NumVertices reports the number of vertex ids.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// NumEdges reports the number of edges, self-loops included.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// validVertex reports whether v is an id of g. Caller holds a lock.
func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < len(g.out)
}
