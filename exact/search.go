package exact

import "context"

// cancelCheckMask polls the context every 1024 search nodes.
const cancelCheckMask = 1<<10 - 1

// searcher holds the run-wide policy of one branch-and-bound search.
// Per-node state travels through the arguments of search.
type searcher[W Word] struct {
	ctx     context.Context
	stats   Stats
	extract extractFunc

	nodes int   // search calls so far
	err   error // sticky cancellation cause
}

// interrupted counts a node and reports whether the run was cancelled.
func (s *searcher[W]) interrupted() bool {
	if s.err != nil {
		return true
	}
	s.nodes++
	if s.nodes&cancelCheckMask == 0 {
		s.err = s.ctx.Err()
	}

	return s.err != nil
}

// search returns a minimum set of original ids, disjoint from forbidden,
// whose removal makes g acyclic, provided such a set with fewer than limit
// vertices exists. search owns g and may mutate it.
func (s *searcher[W]) search(g *fixedGraph[W], forbidden W, limit int) ([]int, bool) {
	s.stats.SearchNode()
	if s.interrupted() {
		return nil, false
	}
	if limit <= 0 {
		s.stats.Pruned()
		return nil, false
	}

	// 1) Looped vertices belong to every solution.
	var taken []int
	if loops := g.selfLoops(); loops != 0 {
		k := popcount(loops)
		if loops&forbidden != 0 || k >= limit {
			s.stats.Pruned()
			return nil, false
		}
		for range k {
			s.stats.ForcedInclusion()
		}
		taken = g.originals(loops)
		g.removeAll(loops)
		limit -= k
	}

	// 2) Only components that can hold a cycle matter.
	var comps []W
	for _, c := range components(g) {
		if nontrivial(g, c) {
			comps = append(comps, c)
		}
	}
	switch {
	case len(comps) == 0:
		return taken, true
	case len(comps) >= limit:
		// each component needs a vertex of its own
		s.stats.Pruned()
		return nil, false
	case len(comps) == 1 && comps[0] == g.active:
		rest, ok := s.branch(g, forbidden, limit)
		if !ok {
			return nil, false
		}
		return append(taken, rest...), true
	case len(comps) > 1:
		s.stats.ComponentSplit(len(comps))
	}

	// 3) Solve components one by one on compacted copies. Each component
	// still to come needs at least one vertex of the remaining budget.
	for i, c := range comps {
		sub := g.compact(c, s.extract)
		subForbidden := W(s.extract(uint64(forbidden), uint64(c)))
		rest, ok := s.search(sub, subForbidden, limit-(len(comps)-1-i))
		if !ok {
			return nil, false
		}
		limit -= len(rest)
		taken = append(taken, rest...)
	}

	return taken, true
}

// branch explores a loop-free strongly connected g: first with the branching
// vertex included, then with it forbidden and a bound tightened by the
// include result.
func (s *searcher[W]) branch(g *fixedGraph[W], forbidden W, limit int) ([]int, bool) {
	v, ok := pickBranchVertex(g, forbidden)
	if !ok {
		s.stats.Pruned()
		return nil, false
	}
	s.stats.Branch()

	with := g.clone()
	with.removeVertex(v)
	best, found := s.search(with, forbidden, limit-1)
	if s.err != nil {
		return nil, false
	}
	if found {
		best = append(best, g.ids[v])
		limit = len(best)
	}

	if rest, ok := s.exclude(g, forbidden|bit[W](v), v, limit); ok {
		return rest, true
	}

	return best, found
}

// exclude continues the search with v forbidden. A cycle made of forbidden
// vertices only is infeasible; a free vertex that closes a cycle through v
// using forbidden vertices only must be included.
func (s *searcher[W]) exclude(g *fixedGraph[W], forbidden W, v int, limit int) ([]int, bool) {
	ahead := closure(g.out, v, forbidden)
	if has(ahead, v) {
		s.stats.Pruned()
		return nil, false
	}
	behind := closure(g.in, v, forbidden)
	self := bit[W](v)
	forced := neighbors(g.out, ahead|self) & neighbors(g.in, behind|self) & g.active &^ forbidden
	if forced == 0 {
		return s.search(g, forbidden, limit)
	}

	k := popcount(forced)
	for range k {
		s.stats.ForcedInclusion()
	}
	taken := g.originals(forced)
	g.removeAll(forced)
	rest, ok := s.search(g, forbidden, limit-k)
	if !ok {
		return nil, false
	}

	return append(taken, rest...), true
}

// closure returns the vertices of within reachable from v along rows using
// intermediate vertices of within only. v itself is included only when it
// lies on such a cycle.
func closure[W Word](rows []W, v int, within W) W {
	var seen W
	frontier := rows[v] & within
	for frontier != 0 {
		u := lowest(frontier)
		seen |= bit[W](u)
		frontier = (frontier | rows[u]&within) &^ seen
	}

	return seen
}

// neighbors returns the union of rows over set.
func neighbors[W Word](rows []W, set W) W {
	var out W
	for m := set; m != 0; m &= m - 1 {
		out |= rows[lowest(m)]
	}

	return out
}

// pickBranchVertex chooses among the free active vertices the one with most
// 2-cycles, then the largest in-degree × out-degree product. Ties go to the
// lowest local index, which is also the lowest original id.
func pickBranchVertex[W Word](g *fixedGraph[W], forbidden W) (int, bool) {
	best, bestPairs, bestDeg := -1, -1, -1
	for m := g.active &^ forbidden; m != 0; m &= m - 1 {
		v := lowest(m)
		pairs := popcount(g.in[v] & g.out[v])
		deg := popcount(g.in[v]) * popcount(g.out[v])
		if pairs > bestPairs || (pairs == bestPairs && deg > bestDeg) {
			best, bestPairs, bestDeg = v, pairs, deg
		}
	}

	return best, best >= 0
}
