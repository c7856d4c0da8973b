package day07

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
`

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "3749", got)

	got, err = Solver{}.Part2(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "11387", got)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, 1512, join(15, 12))
	assert.Equal(t, 1510, join(15, 10))
	assert.Equal(t, 159, join(15, 9))
	assert.Equal(t, 7100, join(7, 100))
}

func TestSingleOperand(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte("5: 5\n6: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestMalformed(t *testing.T) {
	for _, input := range []string{"190 10 19\n", "x: 1\n", "5:\n", "5: 1 0\n"} {
		_, err := Solver{}.Part1(context.Background(), []byte(input))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, input)
	}
}
