package gridgraph

// ShortestPath finds a minimum-step route from src to dst using BFS over
// gg.Conn neighbors. passable reports whether a cell may be entered; nil
// treats every cell as open. src itself is never checked.
//
// Returns the path (src and dst included) and its step count,
// ErrOutOfBounds if either endpoint lies outside the grid,
// ErrNoPath if dst cannot be reached.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ShortestPath(src, dst Point, passable func(Point) bool) ([]Point, int, error) {
	if !gg.InBounds(src) || !gg.InBounds(dst) {
		return nil, 0, ErrOutOfBounds
	}

	N := gg.Width * gg.Height
	prev := make([]int, N)
	for i := range prev {
		prev[i] = -1
	}
	s, t := gg.Index(src), gg.Index(dst)
	prev[s] = s
	queue := []int{s}

	for qi := 0; qi < len(queue) && prev[t] < 0; qi++ {
		u := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			v := u.Add(d)
			if !gg.InBounds(v) {
				continue
			}
			vi := gg.Index(v)
			if prev[vi] >= 0 || (passable != nil && !passable(v)) {
				continue
			}
			prev[vi] = queue[qi]
			queue = append(queue, vi)
		}
	}

	if prev[t] < 0 {
		return nil, 0, ErrNoPath
	}
	var path []Point
	for at := t; ; at = prev[at] {
		path = append(path, gg.Coordinate(at))
		if at == s {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, len(path) - 1, nil
}
