// SPDX-License-Identifier: MIT
// Package: breaking-the-cycle/builder
//
// impl_random_gnp.go - implementation of RandomGNP(n, p) constructor.
//
// Canonical model:
//   - Directed Erdős–Rényi G(n,p): include each ordered pair (i,j) independently
//     with probability p; the pair (i,i) only when WithLoops() is set.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/core"
)

const (
	methodRandomGNP      = "RandomGNP"
	minRandomGNPVertices = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomGNP returns a Constructor that samples a directed G(n,p) graph.
func RandomGNP(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < minRandomGNPVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomGNP, n, minRandomGNPVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomGNP, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomGNP, ErrNeedRandSource)
		}

		// 2) Add all vertices, then sample ordered pairs in a stable order.
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if !bernoulli(cfg, p) {
					continue
				}
				if err := g.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandomGNP, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}

// bernoulli draws one trial; p ∈ {0,1} never touches the RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
