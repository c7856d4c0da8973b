// Package day13 solves "Claw Contraption": the cheapest button presses
// that land a claw on each prize.
package day13

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:      13,
		Title:    "Claw Contraption",
		Defaults: puzzle.Params{"max_presses": 100, "prize_offset": int64(10000000000000)},
		New:      New,
	})
}

const (
	costA = 3
	costB = 1
)

// Solver caps presses in part 1 and shifts the prizes in part 2.
type Solver struct {
	MaxPresses  int64
	PrizeOffset int64
}

// New reads max_presses and prize_offset.
func New(p puzzle.Params) (puzzle.Solution, error) {
	maxPresses, err := p.Int64("max_presses", 100)
	if err != nil {
		return nil, err
	}
	offset, err := p.Int64("prize_offset", 10000000000000)
	if err != nil {
		return nil, err
	}
	if maxPresses < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: max_presses and prize_offset must be non-negative", puzzle.ErrBadParam)
	}

	return Solver{MaxPresses: maxPresses, PrizeOffset: offset}, nil
}

type machine struct {
	ax, ay, bx, by, px, py int64
}

// Part1 spends the fewest tokens with each button pressed at most MaxPresses times.
func (s Solver) Part1(_ context.Context, input []byte) (string, error) {
	return tokens(input, 0, s.MaxPresses)
}

// Part2 moves every prize by PrizeOffset on both axes; presses are unbounded.
func (s Solver) Part2(_ context.Context, input []byte) (string, error) {
	return tokens(input, s.PrizeOffset, 0)
}

// tokens sums the prize costs; maxPresses 0 means no cap.
func tokens(input []byte, offset, maxPresses int64) (string, error) {
	machines, err := parse(input)
	if err != nil {
		return "", err
	}
	var total int64
	for _, m := range machines {
		m.px += offset
		m.py += offset
		a, b, ok := m.solve()
		if !ok || (maxPresses > 0 && (a > maxPresses || b > maxPresses)) {
			continue
		}
		total += costA*a + costB*b
	}

	return strconv.FormatInt(total, 10), nil
}

// solve finds the unique non-negative integral press counts by Cramer's
// rule. A singular system yields no prize.
func (m machine) solve() (a, b int64, ok bool) {
	det := m.ax*m.by - m.ay*m.bx
	if det == 0 {
		return 0, 0, false
	}
	na := m.px*m.by - m.py*m.bx
	nb := m.ax*m.py - m.ay*m.px
	if na%det != 0 || nb%det != 0 {
		return 0, 0, false
	}
	a, b = na/det, nb/det
	if a < 0 || b < 0 {
		return 0, 0, false
	}

	return a, b, true
}

func parse(input []byte) ([]machine, error) {
	var out []machine
	for i, block := range puzzle.Blocks(input) {
		if len(block) != 3 {
			return nil, fmt.Errorf("%w: machine %d: want 3 lines, got %d", puzzle.ErrMalformedInput, i+1, len(block))
		}
		var nums []int64
		for _, line := range block {
			ns, err := puzzle.Ints(line)
			if err != nil {
				return nil, err
			}
			if len(ns) != 2 {
				return nil, fmt.Errorf("%w: machine %d: %q needs two numbers", puzzle.ErrMalformedInput, i+1, line)
			}
			nums = append(nums, int64(ns[0]), int64(ns[1]))
		}
		out = append(out, machine{nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]})
	}

	return out, nil
}
