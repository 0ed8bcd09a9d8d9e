// Package dfs: topological order.
//
// TopologicalSort lists the vertices so that every edge u→v has u before v.
// The order is the reversed DFS finishing order, roots taken by ascending id.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"
	"slices"

	"github.com/xosmig/breaking-the-cycle/core"
)

// orderer tracks colors and the finishing sequence of one sort.
type orderer struct {
	graph    core.AdjacencyList
	opts     topoOptions
	color    []int
	finished []int
}

// TopologicalSort returns a topological order of g, or ErrCycleDetected
// (wrapped with the closing back edge) when g has a cycle or a self-loop.
// A nil graph yields ErrGraphNil. WithCancelContext makes the walk abort
// with the context's error.
func TopologicalSort(g core.AdjacencyList, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.NumVertices()
	o := &orderer{
		graph:    g,
		opts:     opts,
		color:    make([]int, n),
		finished: make([]int, 0, n),
	}
	for v := range g.Vertices() {
		if o.color[v] != White {
			continue
		}
		if err := o.finish(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(o.finished)

	return o.finished, nil
}

// finish colors v Gray, finishes every White successor and appends v.
func (o *orderer) finish(v int) error {
	if err := o.opts.ctx.Err(); err != nil {
		return err
	}
	o.color[v] = Gray
	for w := range o.graph.OutNeighbors(v) {
		switch o.color[w] {
		case Gray:
			return fmt.Errorf("TopologicalSort: back edge %d→%d: %w", v, w, ErrCycleDetected)
		case White:
			if err := o.finish(w); err != nil {
				return err
			}
		}
	}
	o.color[v] = Black
	o.finished = append(o.finished, v)

	return nil
}
