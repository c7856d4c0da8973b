package day06

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "41", got)

	got, err = Solver{}.Part2(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestPatrol_Loop(t *testing.T) {
	l, err := parse([]byte(sample))
	require.NoError(t, err)

	_, loops := l.patrol(gridgraph.Point{X: -1, Y: -1})
	assert.False(t, loops)

	// Placing the obstruction next to the starting position loops the guard.
	_, loops = l.patrol(gridgraph.Point{X: 3, Y: 6})
	assert.True(t, loops)
}

func TestOtherHeading(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte("...\n<..\n...\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = Solver{}.Part1(context.Background(), []byte(".#.\n>..\n...\n"))
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestMalformed(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), []byte("...\n...\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Solver{}.Part1(context.Background(), []byte("^.\n.v\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Solver{}.Part2(ctx, []byte(sample))
	assert.ErrorIs(t, err, context.Canceled)
}
