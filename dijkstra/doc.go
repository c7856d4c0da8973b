// Package dijkstra implements single-source shortest paths on weighted
// core.Graph values with non-negative edge weights.
//
// What:
//
//   - Dijkstra: distance from a source to every vertex, using a lazy
//     binary-heap priority queue.
//   - Optional predecessor sets (WithReturnPath). Every predecessor that
//     reaches a vertex at its final distance is kept, so all shortest
//     paths can be recovered, not just one.
//   - OnShortestPaths: the set of vertices lying on any shortest path to a
//     group of targets.
//
// Options:
//
//   - Source(id)           starting vertex (required).
//   - WithReturnPath()     populate predecessor sets.
//   - WithMaxDistance(d)   stop exploring beyond distance d.
//   - WithContext(ctx)     cancellation.
//
// Complexity:
//
//   - Time:   O((V + E) log V).
//   - Memory: O(V + E) for distances, predecessors and heap entries.
package dijkstra
