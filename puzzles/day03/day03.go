// Package day03 solves "Mull It Over": scanning corrupted memory for
// multiplication instructions.
package day03

import (
	"context"
	"regexp"
	"strconv"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   3,
		Title: "Mull It Over",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

var instrRE = regexp.MustCompile(`mul\((\d+),(\d+)\)|do\(\)|don't\(\)`)

// Part1 sums every mul(X,Y) product.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	return strconv.Itoa(run(input, false)), nil
}

// Part2 sums products while honoring do() and don't().
func (Solver) Part2(_ context.Context, input []byte) (string, error) {
	return strconv.Itoa(run(input, true)), nil
}

func run(input []byte, conditionals bool) int {
	enabled := true
	sum := 0
	for _, m := range instrRE.FindAllSubmatch(input, -1) {
		switch string(m[0]) {
		case "do()":
			enabled = true
		case "don't()":
			enabled = !conditionals
		default:
			if !enabled {
				continue
			}
			// Digit runs too long for int cannot be valid operands.
			x, errX := strconv.Atoi(string(m[1]))
			y, errY := strconv.Atoi(string(m[2]))
			if errX == nil && errY == nil {
				sum += x * y
			}
		}
	}

	return sum
}
