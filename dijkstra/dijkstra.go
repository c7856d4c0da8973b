package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aoc2024/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if never reached).
//   - prev: if ReturnPath, vertex ID → every predecessor u such that
//     dist[u] + w(u,v) == dist[v]. Keeping all tied predecessors (rather
//     than the first one found) lets callers enumerate every shortest path.
//   - err:  validation, negative weight, or cancellation error.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph) and weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string][]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string][]string, V)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string][]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes Source at distance zero.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles vertices in order of increasing distance until the heap
// is empty or the frontier passes MaxDistance.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of each neighbor reachable from the settled
// vertex u. An equal-cost alternative is recorded as an extra predecessor.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		v := core.Other(e, u)
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		switch {
		case newDist < r.dist[v]:
			r.dist[v] = newDist
			if r.prev != nil {
				r.prev[v] = append(r.prev[v][:0], u)
			}
			heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		case newDist == r.dist[v] && r.prev != nil && v != r.options.Source:
			r.prev[v] = append(r.prev[v], u)
		}
	}

	return nil
}

// OnShortestPaths returns every vertex lying on some shortest path that
// ends at one of targets, walking the predecessor sets returned by
// Dijkstra with WithReturnPath. Targets themselves are included.
func OnShortestPaths(prev map[string][]string, targets ...string) map[string]struct{} {
	seen := make(map[string]struct{}, len(targets))
	stack := make([]string, 0, len(targets))
	for _, t := range targets {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range prev[v] {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			stack = append(stack, u)
		}
	}

	return seen
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Stale entries are
// skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
