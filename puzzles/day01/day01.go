// Package day01 solves "Historian Hysteria": comparing two location lists.
package day01

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   1,
		Title: "Historian Hysteria",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

// Solver has no parameters.
type Solver struct{}

// Part1 sums the distances between the lists after sorting both.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	left, right, err := parse(input)
	if err != nil {
		return "", err
	}
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += puzzle.Abs(left[i] - right[i])
	}

	return strconv.Itoa(total), nil
}

// Part2 sums each left value times its number of occurrences on the right.
func (Solver) Part2(_ context.Context, input []byte) (string, error) {
	left, right, err := parse(input)
	if err != nil {
		return "", err
	}
	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}
	score := 0
	for _, l := range left {
		score += l * counts[l]
	}

	return strconv.Itoa(score), nil
}

func parse(input []byte) (left, right []int, err error) {
	for i, line := range puzzle.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, puzzle.Malformedf(i+1, "want 2 columns, got %d", len(fields))
		}
		l, errL := strconv.Atoi(fields[0])
		r, errR := strconv.Atoi(fields[1])
		if errL != nil || errR != nil {
			return nil, nil, puzzle.Malformedf(i+1, "%q is not two integers", line)
		}
		left = append(left, l)
		right = append(right, r)
	}

	return left, right, nil
}
