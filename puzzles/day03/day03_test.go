package day03

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(),
		[]byte("xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"))
	require.NoError(t, err)
	assert.Equal(t, "161", got)

	got, err = Solver{}.Part2(context.Background(),
		[]byte("xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"))
	require.NoError(t, err)
	assert.Equal(t, "48", got)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		conditionals bool
		want         int
	}{
		{"empty", "", false, 0},
		{"spaces rejected", "mul( 2,3) mul(2, 3)", false, 0},
		{"ignores toggles", "don't()mul(2,3)", false, 6},
		{"disabled", "don't()mul(2,3)", true, 0},
		{"re-enabled", "don't()mul(2,3)do()mul(4,5)", true, 20},
		{"spans lines", "mul(1,2)\nmul(3,4)", false, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run([]byte(tt.input), tt.conditionals))
		})
	}
}
