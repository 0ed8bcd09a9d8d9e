// Package core provides the directed graph storage shared by the bit set,
// SCC and branch-and-bound packages of this module.
//
// The Graph G = (V,E) is simple and directed:
//
//   - Vertex ids are the dense integers 0..n-1; ids never shift, RemoveVertex
//     only isolates a vertex.
//   - At most one edge per ordered pair; self-loops are allowed unless the
//     graph was built WithoutLoops().
//   - Each vertex keeps an out-row and an in-row bitset.BitSet, so HasEdge is
//     O(1) and neighbor enumeration is a word scan in ascending id order.
//   - A single sync.RWMutex guards the rows; iterators run on snapshots.
//
// Capability contract:
//
//	AdjacencyList  NumVertices, NumEdges, Vertices, OutNeighbors
//	EdgeRemover    AdjacencyList + RemoveEdge
//
// Algorithms accept these interfaces rather than *Graph, so callers may keep
// their own storage as long as it satisfies the contract.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) *Graph   // O(n²/64)
//	FromEdges(edges [][2]int, ...) (*Graph, error) // O(n²/64 + E)
//	AddVertex() int                               // O(n)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error                       // O(1)
//	RemoveEdge(u, v int) error                    // O(1)
//	HasEdge(u, v int) bool, HasSelfLoop(v) bool   // O(1)
//
//	// Query
//	Vertices() iter.Seq[int]
//	OutNeighbors(v), InNeighbors(v) iter.Seq[int] // ascending
//	Edges() iter.Seq2[int, int]                   // sorted by (from, to)
//	OutDegree(v), InDegree(v) (int, error)
//
//	// Copies
//	Clone() *Graph
//	VertexInduced(keep *bitset.BitSet) (*Graph, []int)
package core
