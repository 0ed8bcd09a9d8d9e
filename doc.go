// Package breakingthecycle finds minimum directed feedback vertex sets: the
// fewest vertices whose removal leaves a directed graph without cycles.
//
// The repository is organized as small packages, leaves first:
//
//	bitset/    word-packed bit sets with a maintained cardinality
//	core/      thread-safe digraph storage and the AdjacencyList contract
//	dfs/       Tarjan SCC, cycle witnesses, topological order
//	exact/     fixed-width branch-and-bound solver for up to 64 vertices
//	algorithm/ step-wise solver contract and a context-aware driver
//	builder/   deterministic graph constructors for tests and experiments
//	pace/      PACE 2022 instance and solution formats (plain, gzip, zstd)
//	cmd/dfvs   command-line solver
//
// Quick start:
//
//	g := core.MustFromEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 3})
//	sol, ok := exact.Solve(g) // [0 3] true
//
// Installation:
//
//	go get github.com/xosmig/breaking-the-cycle
package breakingthecycle
