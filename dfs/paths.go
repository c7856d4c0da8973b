package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/core"
)

// pathCounter memoizes the number of target-terminated paths per vertex.
type pathCounter struct {
	graph    *core.Graph
	opts     options
	isTarget func(id string) bool
	state    map[string]int
	memo     map[string]int
}

// CountPaths returns the number of distinct directed paths that start at
// start and end at a vertex for which isTarget reports true. A path stops
// at the first target it reaches.
//
// Each vertex is solved once and its count memoized, so the cost is linear
// even when the number of paths is exponential.
//
// Returns ErrGraphNil, ErrUndirectedGraph, ErrStartVertexNotFound,
// ErrCycleDetected (a reachable cycle makes the count infinite) or
// ErrNeighborFetch.
//
// Complexity: O(V + E) time, O(V) memory.
func CountPaths(g *core.Graph, start string, isTarget func(id string) bool, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.Directed() {
		return 0, fmt.Errorf("%w: CountPaths", ErrUndirectedGraph)
	}
	if !g.HasVertex(start) {
		return 0, ErrStartVertexNotFound
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pc := &pathCounter{
		graph:    g,
		opts:     o,
		isTarget: isTarget,
		state:    make(map[string]int),
		memo:     make(map[string]int),
	}

	return pc.count(start)
}

func (pc *pathCounter) count(id string) (int, error) {
	if err := cancelled(pc.opts.ctx); err != nil {
		return 0, err
	}
	if pc.isTarget(id) {
		return 1, nil
	}
	switch pc.state[id] {
	case Gray:
		return 0, ErrCycleDetected
	case Black:
		return pc.memo[id], nil
	}
	pc.state[id] = Gray

	next, err := pc.graph.NeighborIDs(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	total := 0
	for _, to := range next {
		n, err := pc.count(to)
		if err != nil {
			return 0, err
		}
		total += n
	}
	pc.state[id] = Black
	pc.memo[id] = total

	return total, nil
}
