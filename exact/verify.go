package exact

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/bitset"
	"github.com/xosmig/breaking-the-cycle/core"
	"github.com/xosmig/breaking-the-cycle/dfs"
)

// Verify checks that solution is a feedback vertex set of g: every id is a
// distinct vertex of g and the graph induced by the other vertices is
// acyclic. It works for graphs of any size.
//
// Errors:
//   - ErrInvalidSolution for an unknown or repeated id.
//   - ErrNotAcyclic with a remaining cycle in the message.
func Verify(g core.AdjacencyList, solution []int) error {
	removed, err := solutionMask(g.NumVertices(), solution)
	if err != nil {
		return fmt.Errorf("exact: Verify: %w", err)
	}

	residual := core.NewGraph(g.NumVertices())
	for u := range g.Vertices() {
		if removed.At(u) {
			continue
		}
		for v := range g.OutNeighbors(u) {
			if removed.At(v) {
				continue
			}
			if err = residual.AddEdge(u, v); err != nil {
				return fmt.Errorf("exact: Verify: %w", err)
			}
		}
	}
	if cycle, found := dfs.FindCycle(residual); found {
		return fmt.Errorf("exact: Verify: cycle %v remains: %w", cycle, ErrNotAcyclic)
	}

	return nil
}

// RemoveSolution deletes every edge of g touching a vertex of solution, so
// that g itself becomes acyclic when solution is a feedback vertex set.
func RemoveSolution(g core.EdgeRemover, solution []int) error {
	removed, err := solutionMask(g.NumVertices(), solution)
	if err != nil {
		return fmt.Errorf("exact: RemoveSolution: %w", err)
	}

	// Collect first: OutNeighbors need not tolerate concurrent removal.
	var edges [][2]int
	for u := range g.Vertices() {
		for v := range g.OutNeighbors(u) {
			if removed.At(u) || removed.At(v) {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	for _, e := range edges {
		if err = g.RemoveEdge(e[0], e[1]); err != nil {
			return fmt.Errorf("exact: RemoveSolution: %w", err)
		}
	}

	return nil
}

func solutionMask(n int, solution []int) (*bitset.BitSet, error) {
	mask := bitset.New(n)
	for _, v := range solution {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("vertex %d outside [0,%d): %w", v, n, ErrInvalidSolution)
		}
		if mask.SetBit(v) {
			return nil, fmt.Errorf("vertex %d repeated: %w", v, ErrInvalidSolution)
		}
	}

	return mask, nil
}
