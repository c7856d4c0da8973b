package day18

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`

func sampleSolver(t *testing.T) puzzle.Solution {
	t.Helper()
	sol, err := New(puzzle.Params{"size": 7, "bytes": 12})
	require.NoError(t, err)

	return sol
}

func TestSample(t *testing.T) {
	sol := sampleSolver(t)

	got, err := sol.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "22", got)

	got, err = sol.Part2(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "6,1", got)
}

func TestNoFalls(t *testing.T) {
	sol := sampleSolver(t)

	got, err := sol.Part1(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "12", got)

	_, err = sol.Part2(context.Background(), []byte("1,1\n"))
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestBlockedExit(t *testing.T) {
	sol, err := New(puzzle.Params{"size": 3, "bytes": 2})
	require.NoError(t, err)

	_, err = sol.Part1(context.Background(), []byte("2,1\n1,2\n"))
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)

	got, err := sol.Part2(context.Background(), []byte("0,1\n2,1\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, "1,2", got)
}

func TestErrors(t *testing.T) {
	sol := sampleSolver(t)
	for _, input := range []string{"1;2\n", "7,0\n", "a,b\n"} {
		_, err := sol.Part1(context.Background(), []byte(input))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, input)
	}

	_, err := New(puzzle.Params{"size": 0})
	assert.ErrorIs(t, err, puzzle.ErrBadParam)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sol.Part2(ctx, []byte(sample))
	assert.ErrorIs(t, err, context.Canceled)
}
