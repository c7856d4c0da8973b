// Package day02 solves "Red-Nosed Reports".
package day02

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   2,
		Title: "Red-Nosed Reports",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

// Part1 counts safe reports.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	return count(input, safe)
}

// Part2 counts reports that are safe once at most one level is dropped.
func (Solver) Part2(_ context.Context, input []byte) (string, error) {
	return count(input, dampened)
}

func count(input []byte, ok func([]int) bool) (string, error) {
	reports, err := parse(input)
	if err != nil {
		return "", err
	}
	n := 0
	for _, r := range reports {
		if ok(r) {
			n++
		}
	}

	return strconv.Itoa(n), nil
}

// safe reports whether levels move strictly one way in steps of 1 to 3.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	sign := 1
	if levels[1] < levels[0] {
		sign = -1
	}
	for i := 1; i < len(levels); i++ {
		d := (levels[i] - levels[i-1]) * sign
		if d < 1 || d > 3 {
			return false
		}
	}

	return true
}

func dampened(levels []int) bool {
	if safe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels)-1)
	for skip := range levels {
		buf = append(buf[:0], levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if safe(buf) {
			return true
		}
	}

	return false
}

func parse(input []byte) ([][]int, error) {
	var reports [][]int
	for i, line := range puzzle.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, puzzle.Malformedf(i+1, "empty report")
		}
		levels := make([]int, len(fields))
		for j, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, puzzle.Malformedf(i+1, "level %q is not an integer", f)
			}
			levels[j] = n
		}
		reports = append(reports, levels)
	}

	return reports, nil
}
