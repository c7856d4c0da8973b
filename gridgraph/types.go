package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrNoPath indicates the destination cannot be reached.
	ErrNoPath = errors.New("gridgraph: no path between specified points")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Step returns the neighbor of p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Delta()) }

// Direction is one of the four orthogonal headings, clockwise from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four headings in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit offset for d.
func (d Direction) Delta() Point { return deltas[d&3] }

// TurnRight rotates d by 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft rotates d by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

func (d Direction) String() string {
	return [4]string{"^", ">", "v", "<"}[d&3]
}

// ParseDirection maps '^', '>', 'v', '<' to a Direction.
func ParseDirection(b byte) (Direction, bool) {
	switch b {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}

	return 0, false
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a rectangular byte grid as a graph.
// Width and Height define dimensions; Cells[y][x] holds the cell byte.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Cells           [][]byte
	Conn            Connectivity
	neighborOffsets []Point
}
