package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix keeps edge identifiers human-readable: "e1", "e2", ...
const edgeIDPrefix = "e"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex stored under id, for metadata access.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// AddEdge links from and to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Under muEdgeAdj, reject a second edge between the same endpoints.
//  4. Record the edge and its adjacency (mirrored when undirected).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if g.linked(from, to) || (!g.directed && g.linked(to, from)) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges = append(g.edges, e)
	g.link(from, to, e)
	if !e.Directed && from != to {
		g.link(to, from, e)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs
// the check is symmetric.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.linked(from, to)
}

// Neighbors returns the edges leaving id (all incident edges for
// undirected graphs), in insertion order.
// Returns ErrEmptyVertexID or ErrVertexNotFound for invalid input.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// NeighborIDs returns the vertex IDs adjacent to id, following edge
// direction, in insertion order of the connecting edges.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, Other(e, id))
	}

	return ids, nil
}

// Other returns the endpoint of e opposite to id.
func Other(e *Edge, id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are accepted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are accepted.
func (g *Graph) Looped() bool { return g.allowLoops }

// linked must be called with muEdgeAdj held.
func (g *Graph) linked(from, to string) bool {
	_, ok := g.pairs[from][to]

	return ok
}

// link must be called with muEdgeAdj held for writing.
func (g *Graph) link(from, to string, e *Edge) {
	inner, ok := g.pairs[from]
	if !ok {
		inner = make(map[string]struct{})
		g.pairs[from] = inner
	}
	inner[to] = struct{}{}
	g.adjacency[from] = append(g.adjacency[from], e)
}
