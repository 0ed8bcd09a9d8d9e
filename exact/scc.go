package exact

// unvisited marks a vertex without a discovery index.
const unvisited = -1

// sccState is the per-call Tarjan state over the active vertices of a
// fixedGraph. Components are emitted as masks in root-finalization order.
type sccState[W Word] struct {
	g       *fixedGraph[W]
	index   []int
	low     []int
	stack   []int
	onStack W
	next    int
	comps   []W
}

// components partitions the active vertices of g into strongly connected
// components.
func components[W Word](g *fixedGraph[W]) []W {
	n := len(g.out)
	s := &sccState[W]{
		g:     g,
		index: make([]int, n),
		low:   make([]int, n),
		stack: make([]int, 0, n),
	}
	for i := range s.index {
		s.index[i] = unvisited
	}
	for m := g.active; m != 0; m &= m - 1 {
		if v := lowest(m); s.index[v] == unvisited {
			s.connect(v)
		}
	}

	return s.comps
}

func (s *sccState[W]) connect(v int) {
	s.index[v] = s.next
	s.low[v] = s.next
	s.next++
	s.stack = append(s.stack, v)
	s.onStack |= bit[W](v)

	for m := s.g.out[v] & s.g.active; m != 0; m &= m - 1 {
		w := lowest(m)
		switch {
		case s.index[w] == unvisited:
			s.connect(w)
			s.low[v] = min(s.low[v], s.low[w])
		case has(s.onStack, w):
			s.low[v] = min(s.low[v], s.index[w])
		}
	}

	if s.low[v] != s.index[v] {
		return
	}
	var comp W
	for {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack &^= bit[W](top)
		comp |= bit[W](top)
		if top == v {
			break
		}
	}
	s.comps = append(s.comps, comp)
}

// nontrivial reports whether comp can hold a cycle: at least two vertices,
// or one vertex with a loop.
func nontrivial[W Word](g *fixedGraph[W], comp W) bool {
	if comp&(comp-1) != 0 {
		return true
	}

	return g.hasSelfLoop(lowest(comp))
}
