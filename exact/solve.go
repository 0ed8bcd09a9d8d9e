package exact

import (
	"context"
	"fmt"
	"slices"

	"github.com/xosmig/breaking-the-cycle/core"
)

// Solve returns a minimum directed feedback vertex set of g in ascending
// order. The second result is false when no solution satisfies the upper
// bound set with WithUpperBound; without one a solution always exists.
//
// g must have at most 64 vertices; larger graphs panic with an error
// wrapping ErrTooManyVertices.
func Solve(g core.AdjacencyList, opts ...Option) ([]int, bool) {
	return SolveWithStats(g, nil, opts...)
}

// SolveWithStats is Solve that additionally reports search effort to stats.
// A nil stats discards the events.
func SolveWithStats(g core.AdjacencyList, stats Stats, opts ...Option) ([]int, bool) {
	sol, ok, _ := SolveContext(context.Background(), g, stats, opts...)
	return sol, ok
}

// SolveContext is SolveWithStats that stops early when ctx is done and then
// returns ctx.Err().
func SolveContext(ctx context.Context, g core.AdjacencyList, stats Stats, opts ...Option) ([]int, bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if stats == nil {
		stats = discardStats{}
	}
	o := resolveOptions(opts)

	// The narrowest word that holds one bit per vertex.
	switch n := g.NumVertices(); {
	case n > 64:
		panic(fmt.Errorf("exact: Solve: %d vertices: %w", n, ErrTooManyVertices))
	case n > 32:
		return run[uint64](ctx, g, stats, o)
	case n > 16:
		return run[uint32](ctx, g, stats, o)
	case n > 8:
		return run[uint16](ctx, g, stats, o)
	default:
		return run[uint8](ctx, g, stats, o)
	}
}

func run[W Word](ctx context.Context, g core.AdjacencyList, stats Stats, o options) ([]int, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	n := g.NumVertices()
	bound := o.bound
	if bound < 0 || bound > n {
		bound = n
	}
	log := o.logger.With("vertices", n, "width", wordBits[W](), "bound", bound)
	log.Debug("exact: search started", "edges", g.NumEdges(), "pext", hasBMI2 && !o.portable)

	s := &searcher[W]{ctx: ctx, stats: stats, extract: selectExtract(o.portable)}
	sol, ok := s.search(encode[W](g), 0, bound+1)
	if s.err != nil {
		log.Debug("exact: search cancelled", "nodes", s.nodes, "err", s.err)
		return nil, false, s.err
	}
	if !ok {
		mustBeBoundLimited(bound, n)
		log.Debug("exact: no solution within bound", "nodes", s.nodes)
		return nil, false, nil
	}

	if sol == nil {
		sol = []int{}
	}
	slices.Sort(sol)
	log.Debug("exact: search finished", "size", len(sol), "nodes", s.nodes)

	return sol, true, nil
}

// mustBeBoundLimited panics unless a failed search ran under a bound below
// n: removing every vertex is always a solution.
func mustBeBoundLimited(bound, n int) {
	if bound >= n {
		panic(fmt.Sprintf("exact: no solution with bound %d on %d vertices", bound, n))
	}
}
