package day12

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	tests := []struct {
		name         string
		grid         string
		part1, part2 string
	}{
		{
			name:  "small",
			grid:  "AAAA\nBBCD\nBBCC\nEEEC\n",
			part1: "140", part2: "80",
		},
		{
			name:  "enclosed",
			grid:  "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n",
			part1: "772", part2: "436",
		},
		{
			name: "larger",
			grid: `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`,
			part1: "1930", part2: "1206",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solver{}.Part1(context.Background(), []byte(tt.grid))
			require.NoError(t, err)
			assert.Equal(t, tt.part1, got)

			got, err = Solver{}.Part2(context.Background(), []byte(tt.grid))
			require.NoError(t, err)
			assert.Equal(t, tt.part2, got)
		})
	}
}

func TestSidesOnly(t *testing.T) {
	for grid, want := range map[string]string{
		"EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE\n":             "236",
		"AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA\n": "368",
	} {
		got, err := Solver{}.Part2(context.Background(), []byte(grid))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEmpty(t *testing.T) {
	_, err := Solver{}.Part1(context.Background(), nil)
	assert.Error(t, err)
}
