package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `3   4
4   3
2   5
1   3
3   9
3   3
`

func TestSample(t *testing.T) {
	ctx := context.Background()

	got, err := Solver{}.Part1(ctx, []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "11", got)

	got, err = Solver{}.Part2(ctx, []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "31", got)
}

func TestMalformed(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), []byte("1 2\n3\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Solver{}.Part2(context.Background(), []byte("1 x\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestRegistered(t *testing.T) {
	p, err := puzzle.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "Historian Hysteria", p.Title)
}
