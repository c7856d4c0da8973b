package gridgraph

import (
	"bytes"
	"strconv"

	"github.com/katalvlaran/aoc2024/core"
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Parse reads a grid of one row per line. Trailing '\r' and blank lines
// are ignored.
func Parse(input []byte, opts GridOptions) (*GridGraph, error) {
	var rows [][]byte
	for _, line := range bytes.Split(input, []byte{'\n'}) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		rows = append(rows, line)
	}

	return NewGridGraph(rows, opts)
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later Set calls never touch the caller's rows.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(rows [][]byte, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]byte, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = append([]byte(nil), row...)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Fill returns a w×h grid with every cell set to b.
func Fill(w, h int, b byte, opts GridOptions) (*GridGraph, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = bytes.Repeat([]byte{b}, w)
	}

	return NewGridGraph(rows, opts)
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *GridGraph) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// At returns the cell at p, or 0 when p is outside the grid.
func (gg *GridGraph) At(p Point) byte {
	if !gg.InBounds(p) {
		return 0
	}

	return gg.Cells[p.Y][p.X]
}

// Set stores b at p. It reports false when p is outside the grid.
func (gg *GridGraph) Set(p Point, b byte) bool {
	if !gg.InBounds(p) {
		return false
	}
	gg.Cells[p.Y][p.X] = b

	return true
}

// Clone returns a deep copy.
func (gg *GridGraph) Clone() *GridGraph {
	cp, _ := NewGridGraph(gg.Cells, GridOptions{Conn: gg.Conn})

	return cp
}

// Find returns the first cell equal to b in row-major order.
func (gg *GridGraph) Find(b byte) (Point, bool) {
	for y, row := range gg.Cells {
		if x := bytes.IndexByte(row, b); x >= 0 {
			return Point{x, y}, true
		}
	}

	return Point{}, false
}

// FindAll returns every cell equal to b in row-major order.
func (gg *GridGraph) FindAll(b byte) []Point {
	var out []Point
	for y, row := range gg.Cells {
		for x, c := range row {
			if c == b {
				out = append(out, Point{x, y})
			}
		}
	}

	return out
}

// NeighborOffsets returns the precomputed neighbor offsets for gg.Conn.
func (gg *GridGraph) NeighborOffsets() []Point {
	return gg.neighborOffsets
}

// Index maps p to a row-major index: y*Width + x.
func (gg *GridGraph) Index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{idx % gg.Width, idx / gg.Width}
}

// String renders the grid one row per line, without a trailing newline.
func (gg *GridGraph) String() string {
	return string(bytes.Join(gg.Cells, []byte{'\n'}))
}

// VertexID formats the vertex identifier used for p by ToCoreGraph.
func VertexID(p Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ToCoreGraph converts the grid into a directed, unweighted *core.Graph.
// Each cell becomes a vertex with ID VertexID(p) and metadata {x, y, value}.
// An edge from→to is added for every neighbor pair (per gg.Conn) accepted
// by edge; a nil edge accepts all pairs.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph(edge func(from, to Point) bool) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			id := VertexID(Point{x, y})
			_ = g.AddVertex(id)
			v, _ := g.Vertex(id)
			v.Metadata["x"] = x
			v.Metadata["y"] = y
			v.Metadata["value"] = gg.Cells[y][x]
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Point{x, y}
			for _, d := range gg.neighborOffsets {
				v := u.Add(d)
				if !gg.InBounds(v) || (edge != nil && !edge(u, v)) {
					continue
				}
				_, _ = g.AddEdge(VertexID(u), VertexID(v), 0)
			}
		}
	}

	return g
}
