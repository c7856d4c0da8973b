// Package dfs provides depth-first algorithms on directed core.Graph values.
//
// What:
//
//   - TopologicalSort: linear ordering where every edge u→v places u before v.
//     Used to repair an ordering from pairwise precedence rules.
//   - CountPaths: number of distinct paths from a start vertex to any target
//     vertex, memoized per vertex (white/gray/black colouring detects cycles).
//
// Errors:
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrUndirectedGraph  if the graph is undirected.
//   - ErrCycleDetected    if a reachable directed cycle exists.
//   - ErrNeighborFetch    if neighbor lookup fails.
//
// Complexity:
//
//   - Time:   O(V + E) for both algorithms.
//   - Memory: O(V) for state, memo and the recursion stack.
package dfs
