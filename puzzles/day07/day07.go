// Package day07 solves "Bridge Repair": inserting operators so that an
// equation evaluated left to right hits its target.
package day07

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   7,
		Title: "Bridge Repair",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

type equation struct {
	target   int
	operands []int
}

// Part1 sums the targets reachable with + and *.
func (Solver) Part1(ctx context.Context, input []byte) (string, error) {
	return calibrate(ctx, input, false)
}

// Part2 also allows || (decimal concatenation).
func (Solver) Part2(ctx context.Context, input []byte) (string, error) {
	return calibrate(ctx, input, true)
}

func calibrate(ctx context.Context, input []byte, concat bool) (string, error) {
	eqs, err := parse(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, eq := range eqs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if solvable(eq.target, eq.operands[0], eq.operands[1:], concat) {
			total += eq.target
		}
	}

	return strconv.Itoa(total), nil
}

// solvable requires positive operands: no operator can then shrink acc, so
// a partial value above target is a dead end.
func solvable(target, acc int, rest []int, concat bool) bool {
	if acc > target {
		return false
	}
	if len(rest) == 0 {
		return acc == target
	}
	n, tail := rest[0], rest[1:]
	if solvable(target, acc+n, tail, concat) || solvable(target, acc*n, tail, concat) {
		return true
	}

	return concat && solvable(target, join(acc, n), tail, concat)
}

// join concatenates the decimal digits of a and b.
func join(a, b int) int {
	for p := 10; ; p *= 10 {
		if b < p {
			return a*p + b
		}
	}
}

func parse(input []byte) ([]equation, error) {
	var eqs []equation
	for i, line := range puzzle.Lines(input) {
		lhs, rhs, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.Malformedf(i+1, "missing ':'")
		}
		target, err := strconv.Atoi(strings.TrimSpace(lhs))
		if err != nil {
			return nil, puzzle.Malformedf(i+1, "target %q is not an integer", lhs)
		}
		fields := strings.Fields(rhs)
		if len(fields) == 0 {
			return nil, puzzle.Malformedf(i+1, "no operands")
		}
		eq := equation{target: target, operands: make([]int, len(fields))}
		for j, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil || n <= 0 {
				return nil, puzzle.Malformedf(i+1, "operand %q is not a positive integer", f)
			}
			eq.operands[j] = n
		}
		eqs = append(eqs, eq)
	}

	return eqs, nil
}
