package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  options
	state map[string]int
	order []string
}

// TopologicalSort computes an ordering of all vertices in g such that for
// every directed edge u→v, u appears before v.
// Vertices are seeded in sorted order, so the result is deterministic.
//
// Returns ErrGraphNil, ErrUndirectedGraph, ErrCycleDetected or
// ErrNeighborFetch; cancellation errors come from WithCancelContext.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: TopologicalSort", ErrUndirectedGraph)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	if err := cancelled(t.opts.ctx); err != nil {
		return err
	}
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	next, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, to := range next {
		if err = t.visit(to); err != nil {
			return err
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
