package gridgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Errors verifies empty and ragged inputs are rejected.
func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("\n\n"), DefaultGridOptions())
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Parse([]byte("abc\nab\n"), DefaultGridOptions())
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = Fill(0, 3, '.', DefaultGridOptions())
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

// TestParse_CRLF checks carriage returns and trailing blank lines are dropped.
func TestParse_CRLF(t *testing.T) {
	gg, err := Parse([]byte("#.#\r\n.S.\r\n\r\n"), DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.Equal(t, "#.#\n.S.", gg.String())

	p, ok := gg.Find('S')
	require.True(t, ok)
	assert.Equal(t, Point{1, 1}, p)
	_, ok = gg.Find('E')
	assert.False(t, ok)
}

// TestAccessors covers bounds, At/Set, Clone independence and index round trips.
func TestAccessors(t *testing.T) {
	src := [][]byte{[]byte("ab"), []byte("cd")}
	gg, err := NewGridGraph(src, DefaultGridOptions())
	require.NoError(t, err)

	src[0][0] = 'z'
	assert.Equal(t, byte('a'), gg.At(Point{0, 0}), "input is copied")
	assert.Equal(t, byte(0), gg.At(Point{2, 0}))
	assert.False(t, gg.Set(Point{-1, 0}, 'x'))

	cp := gg.Clone()
	require.True(t, cp.Set(Point{1, 1}, 'x'))
	assert.Equal(t, byte('d'), gg.At(Point{1, 1}))
	assert.Equal(t, byte('x'), cp.At(Point{1, 1}))

	for i := 0; i < gg.Width*gg.Height; i++ {
		assert.Equal(t, i, gg.Index(gg.Coordinate(i)))
	}
	assert.Len(t, gg.NeighborOffsets(), 4)

	g8, _ := NewGridGraph(src, GridOptions{Conn: Conn8})
	assert.Len(t, g8.NeighborOffsets(), 8)
}

// TestFindAll returns matches in row-major order.
func TestFindAll(t *testing.T) {
	gg, _ := Parse([]byte("0.0\n.0.\n"), DefaultGridOptions())
	want := []Point{{0, 0}, {2, 0}, {1, 1}}
	if diff := cmp.Diff(want, gg.FindAll('0')); diff != "" {
		t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
	}
}

// TestDirection covers turning, reversing and parsing headings.
func TestDirection(t *testing.T) {
	assert.Equal(t, Right, Up.TurnRight())
	assert.Equal(t, Up, Left.TurnRight())
	assert.Equal(t, Left, Up.TurnLeft())
	assert.Equal(t, Down, Up.Reverse())
	assert.Equal(t, Point{3, 4}, Point{3, 5}.Step(Up))
	assert.Equal(t, Point{1, -1}, Point{3, 4}.Sub(Point{2, 5}))

	for _, b := range []byte("^>v<") {
		d, ok := ParseDirection(b)
		require.True(t, ok)
		assert.Equal(t, string(b), d.String())
	}
	_, ok := ParseDirection('x')
	assert.False(t, ok)
}

// TestToCoreGraph keeps only edges going uphill by exactly one.
func TestToCoreGraph(t *testing.T) {
	gg, _ := Parse([]byte("01\n32\n"), DefaultGridOptions())
	g := gg.ToCoreGraph(func(from, to Point) bool {
		return gg.At(to) == gg.At(from)+1
	})

	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.VertexCount())
	got := make(map[string][]string)
	for _, e := range g.Edges() {
		got[e.From] = append(got[e.From], e.To)
	}
	want := map[string][]string{
		"0,0": {"1,0"},
		"1,0": {"1,1"},
		"1,1": {"0,1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}

	v, err := g.Vertex(VertexID(Point{0, 1}))
	require.NoError(t, err)
	assert.Equal(t, byte('3'), v.Metadata["value"])
	assert.Equal(t, 0, v.Metadata["x"])
	assert.Equal(t, 1, v.Metadata["y"])

	all := gg.ToCoreGraph(nil)
	assert.Equal(t, 8, all.EdgeCount())
}
