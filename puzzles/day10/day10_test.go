package day10

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "36", got)

	got, err = Solver{}.Part2(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "81", got)
}

func TestSmallMaps(t *testing.T) {
	tests := []struct {
		name         string
		grid         string
		score, trail string
	}{
		{
			name:  "single line",
			grid:  "0123\n1234\n8765\n9876\n",
			score: "1", trail: "16",
		},
		{
			name:  "dotted fork",
			grid:  "...0...\n...1...\n...2...\n6543456\n7.....7\n8.....8\n9.....9\n",
			score: "2", trail: "2",
		},
		{
			name:  "rating three",
			grid:  ".....0.\n..4321.\n..5..2.\n..6543.\n..7..4.\n..8765.\n..9....\n",
			score: "1", trail: "3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solver{}.Part1(context.Background(), []byte(tt.grid))
			require.NoError(t, err)
			assert.Equal(t, tt.score, got)

			got, err = Solver{}.Part2(context.Background(), []byte(tt.grid))
			require.NoError(t, err)
			assert.Equal(t, tt.trail, got)
		})
	}
}

func TestMalformed(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), []byte("01\n2x\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
