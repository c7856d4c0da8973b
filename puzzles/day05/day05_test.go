package day05

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/dfs"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "143", got)

	got, err = Solver{}.Part2(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "123", got)
}

func TestReorder(t *testing.T) {
	m, err := parse([]byte(sample))
	require.NoError(t, err)

	tests := [][2][]string{
		{{"75", "97", "47", "61", "53"}, {"97", "75", "47", "61", "53"}},
		{{"61", "13", "29"}, {"61", "29", "13"}},
		{{"97", "13", "75", "29", "47"}, {"97", "75", "47", "29", "13"}},
	}
	for _, tt := range tests {
		assert.False(t, m.ordered(tt[0]))
		got, err := m.reorder(context.Background(), tt[0])
		require.NoError(t, err)
		assert.Equal(t, tt[1], got)
		assert.True(t, m.ordered(got))
	}
}

func TestCyclicRules(t *testing.T) {
	input := "1|2\n2|3\n3|1\n\n3,2,1\n"
	_, err := Solver{}.Part2(context.Background(), []byte(input))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestMalformed(t *testing.T) {
	for _, input := range []string{"1-2\n\n1,2\n", "1|2\n\n1,x\n", "1|2\n\n1,2,1\n"} {
		_, err := Solver{}.Part1(context.Background(), []byte(input))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, input)
	}
}
