// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface. It is the common substrate for the bfs, dfs
// and dijkstra packages and for grid conversions in gridgraph.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Per-vertex Metadata for carrying domain data (coordinates, heights)
//
// Determinism:
//
//	Vertices() is sorted; Neighbors() and Edges() follow insertion order.
//	Traversals built on top therefore produce reproducible output.
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	HasVertex(id string) bool                               // O(1)
//	AddEdge(from, to string, weight int64) (string, error)  // O(1)
//	HasEdge(from, to string) bool                           // O(1)
//	Neighbors(id string) ([]*Edge, error)                   // O(d)
//	NeighborIDs(id string) ([]string, error)                // O(d)
//	Vertices() []string                                     // O(V log V)
//	Edges() []*Edge                                         // O(E)
//
// Concurrency:
//
//	muVert guards vertices, muEdgeAdj guards edges and adjacency;
//	readers never block each other.
package core
