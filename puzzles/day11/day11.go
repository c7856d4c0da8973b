// Package day11 solves "Plutonian Pebbles": counting stones that split
// and multiply on every blink.
package day11

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:      11,
		Title:    "Plutonian Pebbles",
		Defaults: puzzle.Params{"blinks_part1": 25, "blinks_part2": 75},
		New:      New,
	})
}

// Solver counts stones after a configured number of blinks per part.
type Solver struct {
	Blinks1, Blinks2 int
}

// New reads blinks_part1 and blinks_part2.
func New(p puzzle.Params) (puzzle.Solution, error) {
	b1, err := p.Int("blinks_part1", 25)
	if err != nil {
		return nil, err
	}
	b2, err := p.Int("blinks_part2", 75)
	if err != nil {
		return nil, err
	}
	if b1 < 0 || b2 < 0 {
		return nil, fmt.Errorf("%w: blink counts must be non-negative", puzzle.ErrBadParam)
	}

	return Solver{Blinks1: b1, Blinks2: b2}, nil
}

func (s Solver) Part1(ctx context.Context, input []byte) (string, error) {
	return run(ctx, input, s.Blinks1)
}

func (s Solver) Part2(ctx context.Context, input []byte) (string, error) {
	return run(ctx, input, s.Blinks2)
}

func run(ctx context.Context, input []byte, blinks int) (string, error) {
	stones, err := parse(input)
	if err != nil {
		return "", err
	}
	for i := 0; i < blinks; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		stones = blink(stones)
	}
	total := 0
	for _, n := range stones {
		total += n
	}

	return strconv.Itoa(total), nil
}

// blink applies one step to a multiset of stone values. Order never
// matters for the count, so stones are kept as value → multiplicity.
func blink(stones map[int]int) map[int]int {
	next := make(map[int]int, len(stones)*2)
	for v, n := range stones {
		if v == 0 {
			next[1] += n
			continue
		}
		if l, r, ok := split(v); ok {
			next[l] += n
			next[r] += n
			continue
		}
		next[v*2024] += n
	}

	return next
}

// split halves the decimal digits of v when their count is even.
func split(v int) (left, right int, ok bool) {
	digits := 0
	for x := v; x > 0; x /= 10 {
		digits++
	}
	if digits%2 != 0 {
		return 0, 0, false
	}
	p := 1
	for i := 0; i < digits/2; i++ {
		p *= 10
	}

	return v / p, v % p, true
}

func parse(input []byte) (map[int]int, error) {
	stones := make(map[int]int)
	for _, f := range strings.Fields(string(input)) {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, puzzle.Malformedf(1, "stone %q is not a non-negative integer", f)
		}
		stones[v]++
	}

	return stones, nil
}
