package day17

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0
`

const quine = `Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0
`

func TestSample(t *testing.T) {
	got, err := Solver{}.Part1(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "4,6,3,5,6,3,5,2,1,0", got)

	got, err = Solver{}.Part2(context.Background(), []byte(quine))
	require.NoError(t, err)
	assert.Equal(t, "117440", got)
}

func TestInstructions(t *testing.T) {
	tests := []struct {
		name    string
		m       machine
		out     []int
		a, b, c int
	}{
		{"bst", machine{c: 9, program: []int{2, 6}}, nil, 0, 1, 9},
		{"out", machine{a: 10, program: []int{5, 0, 5, 1, 5, 4}}, []int{0, 1, 2}, 10, 0, 0},
		{"loop", machine{a: 2024, program: []int{0, 1, 5, 4, 3, 0}}, []int{4, 2, 5, 6, 7, 7, 7, 7, 3, 1, 0}, 0, 0, 0},
		{"bxl", machine{b: 29, program: []int{1, 7}}, nil, 0, 26, 0},
		{"bxc", machine{b: 2024, c: 43690, program: []int{4, 0}}, nil, 0, 44354, 43690},
		{"cdv", machine{a: 64, b: 2, program: []int{7, 5}}, nil, 64, 2, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m
			out, err := m.exec()
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
			assert.Equal(t, tt.a, m.a, "A")
			assert.Equal(t, tt.b, m.b, "B")
			assert.Equal(t, tt.c, m.c, "C")
		})
	}
}

func TestRunKeepsRegisters(t *testing.T) {
	m := machine{a: 2024, program: []int{0, 1, 5, 4, 3, 0}}
	_, err := m.run()
	require.NoError(t, err)
	assert.Equal(t, 2024, m.a)
}

func TestErrors(t *testing.T) {
	_, err := (&machine{program: []int{5, 7}}).exec()
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = (&machine{a: 1, program: []int{3, 0}}).exec()
	assert.ErrorIs(t, err, errRunaway)

	for _, input := range []string{
		"Register A: x\n\nProgram: 0\n",
		"Register D: 1\n\nProgram: 0\n",
		"Register A: 1\n",
		"Register A: 1\n\nProgram: 0,9\n",
		"Registers\n",
	} {
		_, err := Solver{}.Part1(context.Background(), []byte(input))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, input)
	}
}

func TestNoQuine(t *testing.T) {
	// Output is always a single 1, never the program itself.
	_, err := Solver{}.Part2(context.Background(), []byte("Register A: 0\n\nProgram: 1,1,5,5\n"))
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
