// Package dfs implements depth-first algorithms on any core.AdjacencyList:
// strongly connected components, cycle witnesses and topological sort.
//
// What:
//
//   - StronglyConnectedComponents: Tarjan's algorithm with an explicit vertex
//     stack and a bitset.BitSet for stack membership. Components come out in
//     the order their roots finalize.
//   - FindCycle / IsAcyclic: three-color DFS (White, Gray, Black); a Gray head
//     closes a cycle. Self-loops count as cycles of length one.
//   - TopologicalSort: reverse post-order, ErrCycleDetected on a back-edge.
//
// Why:
//   - SCC decomposition confines the exact feedback vertex set search to one
//     component at a time.
//   - IsAcyclic certifies a solution: removing a feedback vertex set must leave
//     a graph with a topological order.
//
// Complexity:
//
//   - StronglyConnectedComponents: Time O(V+E), Memory O(V)
//   - FindCycle / IsAcyclic:       Time O(V+E), Memory O(V)
//   - TopologicalSort:             Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph is nil
//   - ErrCycleDetected  cycle discovered in TopologicalSort
//   - context.Canceled  TopologicalSort canceled via context
package dfs
