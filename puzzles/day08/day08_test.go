package day08

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "14", got)

	got, err = Solver{}.Part2(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "34", got)
}

func TestHarmonics(t *testing.T) {
	grid := `T.........
...T......
.T........
..........
..........
..........
..........
..........
..........
..........
`
	got, err := Solver{}.Part2(context.Background(), []byte(grid))
	require.NoError(t, err)
	assert.Equal(t, "9", got)
}

func TestPair(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte("..........\n...a......\n..........\n....a.....\n..........\n..........\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", got, "second antinode falls off the top")
}
