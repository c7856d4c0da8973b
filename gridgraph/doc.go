// Package gridgraph treats a rectangular grid of byte cells as a graph,
// enabling region analysis, shortest routes and conversion to core.Graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]byte grid, parsed from puzzle text.
//   - Point and Direction give coordinate arithmetic and 90° turns.
//   - Identifies connected components (regions) of equal cell values and
//     measures their Perimeter and number of straight Sides.
//   - Computes step-minimal routes (BFS) through passable cells.
//   - Converts to a *core.Graph for the bfs, dfs and dijkstra packages.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Perimeter, Sides:    O(|component|), Memory: O(W×H).
//   - ShortestPath:        O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d + E), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a path endpoint lies outside the grid.
//   - ErrNoPath: the destination is unreachable.
package gridgraph
