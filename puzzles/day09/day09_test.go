package day09

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = "2333133121414131402\n"

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "1928", got)

	got, err = Solver{}.Part2(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "2858", got)
}

func TestSmall(t *testing.T) {
	// 0..111....22222 compacts to 022111222......
	got, err := Solver{}.Part1(context.Background(), []byte("12345"))
	require.NoError(t, err)
	assert.Equal(t, "60", got)

	// No file fits any gap to its left, so nothing moves.
	got, err = Solver{}.Part2(context.Background(), []byte("12345"))
	require.NoError(t, err)
	assert.Equal(t, "132", got)
}

func TestLayout(t *testing.T) {
	files, gaps, err := parse([]byte("12345"))
	require.NoError(t, err)
	assert.Equal(t, []span{{0, 1}, {3, 3}, {10, 5}}, files)
	assert.Equal(t, []span{{1, 2}, {6, 4}}, gaps)
	assert.Equal(t, []int{0, -1, -1, 1, 1, 1, -1, -1, -1, -1, 2, 2, 2, 2, 2}, layout(files))
}

func TestMalformed(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), []byte("12a4"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestEmpty(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}
