// SPDX-License-Identifier: MIT
// Package: breaking-the-cycle/builder
//
// impl_cycle.go - Cycle(n), Path(n) and SelfLoops(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 1 (else ErrTooFewVertices); edges i → (i+1)%n, so n=1 is a self-loop.
//   • Path: n ≥ 1; edges i → i+1 for i < n-1 (acyclic).
//   • SelfLoops: n ≥ 1; n isolated vertices each carrying v → v.
//   • Vertices are appended in ascending order after the existing ones.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//
// Determinism:
//   • Deterministic edge emission order by increasing i.

package builder

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle     = "Cycle"
	methodPath      = "Path"
	methodSelfLoops = "SelfLoops"
	minChainNodes   = 1
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minChainNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minChainNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodPath, base+i, base+i+1, err)
			}
		}

		return nil
	}
}

// SelfLoops returns a Constructor adding n vertices, each with a self-loop.
func SelfLoops(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSelfLoops, n, minChainNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for v := base; v < base+n; v++ {
			if err := g.AddEdge(v, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodSelfLoops, v, v, err)
			}
		}

		return nil
	}
}
