package core_test

import (
	"fmt"
	"slices"

	"github.com/xosmig/breaking-the-cycle/core"
)

// ExampleGraph builds a small digraph and inspects it through the capability
// contract used by the algorithms.
func ExampleGraph() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 0)
	_ = g.AddEdge(1, 1)

	var adj core.AdjacencyList = g
	for v := range adj.Vertices() {
		fmt.Println(v, slices.Collect(adj.OutNeighbors(v)))
	}
	fmt.Println("edges:", adj.NumEdges())

	// Output:
	// 0 [1]
	// 1 [1 2]
	// 2 [0]
	// edges: 4
}
