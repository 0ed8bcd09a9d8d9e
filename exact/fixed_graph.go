package exact

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/core"
)

// fixedGraph stores a graph of at most bits(W) vertices with one out-mask and
// one in-mask word per local vertex. Bit j of out[i] is set iff i→j.
//
// Removed vertices keep their slots; they are cleared from every active
// mask and from active, so loops over active never see them again.
type fixedGraph[W Word] struct {
	out    []W
	in     []W
	active W
	ids    []int // original vertex id per local index, ascending
}

// encode copies g into a fixed-width graph. The caller has checked that
// g.NumVertices() fits into W.
func encode[W Word](g core.AdjacencyList) *fixedGraph[W] {
	n := g.NumVertices()
	fg := &fixedGraph[W]{
		out:    make([]W, n),
		in:     make([]W, n),
		active: lowMask[W](n),
		ids:    make([]int, n),
	}
	for i := range fg.ids {
		fg.ids[i] = i
	}
	for u := range g.Vertices() {
		for v := range g.OutNeighbors(u) {
			if u < 0 || u >= n || v < 0 || v >= n {
				panic(fmt.Sprintf("exact: edge %d→%d outside [0,%d)", u, v, n))
			}
			fg.out[u] |= bit[W](v)
			fg.in[v] |= bit[W](u)
		}
	}

	return fg
}

func (g *fixedGraph[W]) clone() *fixedGraph[W] {
	return &fixedGraph[W]{
		out:    append([]W(nil), g.out...),
		in:     append([]W(nil), g.in...),
		active: g.active,
		ids:    g.ids, // never mutated
	}
}

// order reports the number of active vertices.
func (g *fixedGraph[W]) order() int {
	return popcount(g.active)
}

func (g *fixedGraph[W]) hasSelfLoop(v int) bool {
	return has(g.out[v], v)
}

// selfLoops returns the mask of active vertices carrying a loop.
func (g *fixedGraph[W]) selfLoops() W {
	var loops W
	for m := g.active; m != 0; m &= m - 1 {
		if v := lowest(m); g.hasSelfLoop(v) {
			loops |= bit[W](v)
		}
	}

	return loops
}

// removeVertex detaches v from its neighbors and deactivates it.
// Only the rows of v's neighbors can hold bit v.
func (g *fixedGraph[W]) removeVertex(v int) {
	keep := ^bit[W](v)
	for m := g.out[v] & g.active; m != 0; m &= m - 1 {
		g.in[lowest(m)] &= keep
	}
	for m := g.in[v] & g.active; m != 0; m &= m - 1 {
		g.out[lowest(m)] &= keep
	}
	g.out[v], g.in[v] = 0, 0
	g.active &= keep
}

// removeAll removes every vertex of mask.
func (g *fixedGraph[W]) removeAll(mask W) {
	for m := mask; m != 0; m &= m - 1 {
		g.removeVertex(lowest(m))
	}
}

// compact returns the subgraph induced by mask with its vertices renumbered
// densely in ascending order of their current local index.
func (g *fixedGraph[W]) compact(mask W, extract extractFunc) *fixedGraph[W] {
	k := popcount(mask)
	sub := &fixedGraph[W]{
		out:    make([]W, k),
		in:     make([]W, k),
		active: lowMask[W](k),
		ids:    make([]int, k),
	}
	i := 0
	for m := mask; m != 0; m &= m - 1 {
		v := lowest(m)
		sub.out[i] = W(extract(uint64(g.out[v]), uint64(mask)))
		sub.in[i] = W(extract(uint64(g.in[v]), uint64(mask)))
		sub.ids[i] = g.ids[v]
		i++
	}

	return sub
}

// originals maps a mask of local vertices to their original ids, ascending.
func (g *fixedGraph[W]) originals(mask W) []int {
	out := make([]int, 0, popcount(mask))
	for m := mask; m != 0; m &= m - 1 {
		out = append(out, g.ids[lowest(m)])
	}

	return out
}
