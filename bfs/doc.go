// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result with the visit Order, the Depth of every reached
//     vertex and its Parent in the BFS tree.
//   - OnVisit hook (may abort with an error), neighbor filtering via
//     WithFilterNeighbor, depth limit via WithMaxDepth.
//
// Why
//
//   - Reachability questions on small implicit graphs, e.g. "which summits
//     can a hiking trail starting here reach".
//   - Unweighted shortest paths in O(V + E).
//
// Determinism
//
//	core.Graph reports neighbors in edge insertion order, so the visit
//	sequence is reproducible for a given construction order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
package bfs
