// SPDX-License-Identifier: MIT
// Package: breaking-the-cycle/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i,j), i≠j, so the minimum feedback vertex set
//     of the result has n-1 vertices.
//   • No self-loops.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//
// Determinism:
//   • Pair order: lexicographic by (i,j).

package builder

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
