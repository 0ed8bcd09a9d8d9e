// Package exact computes minimum directed feedback vertex sets of graphs
// with at most 64 vertices.
//
// The solver encodes the graph into one machine word per vertex, choosing
// the narrowest of uint8, uint16, uint32 and uint64 that fits. Every search
// node then costs a handful of word operations:
//
//   - vertices with a self-loop are included without branching;
//   - the remaining vertices are split into strongly connected components,
//     components that cannot hold a cycle are dropped and the rest are
//     solved independently after renumbering them densely (parallel bit
//     extract, PEXT on amd64 with BMI2);
//   - a strongly connected component is solved by including or forbidding
//     one vertex. Forbidding prunes at once when forbidden vertices close a
//     cycle, and includes every vertex that would close one.
//
// The include branch tightens the bound of the exclude branch, so the set
// returned is minimum among all sets within the bound:
//
//	sol, ok := exact.Solve(g)                         // any size
//	sol, ok = exact.Solve(g, exact.WithUpperBound(3)) // at most 3 vertices
//
// The search is single-threaded and deterministic: the same graph and
// options always produce the same solution.
package exact
