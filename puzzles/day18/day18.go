// Package day18 solves "RAM Run": escaping a memory grid while bytes fall.
package day18

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:      18,
		Title:    "RAM Run",
		Defaults: puzzle.Params{"size": 71, "bytes": 1024},
		New:      New,
	})
}

// Solver walks a Size×Size grid from the top-left to the bottom-right corner.
type Solver struct {
	Size int
	// Bytes is how many falling bytes have landed in part 1.
	Bytes int
}

// New reads size and bytes.
func New(p puzzle.Params) (puzzle.Solution, error) {
	size, err := p.Int("size", 71)
	if err != nil {
		return nil, err
	}
	n, err := p.Int("bytes", 1024)
	if err != nil {
		return nil, err
	}
	if size <= 0 || n < 0 {
		return nil, fmt.Errorf("%w: size must be positive and bytes non-negative", puzzle.ErrBadParam)
	}

	return Solver{Size: size, Bytes: n}, nil
}

// Part1 returns the fewest steps to the exit after the first Bytes bytes fall.
func (s Solver) Part1(_ context.Context, input []byte) (string, error) {
	falls, err := s.parse(input)
	if err != nil {
		return "", err
	}
	steps, err := s.escape(falls[:min(s.Bytes, len(falls))])
	if errors.Is(err, gridgraph.ErrNoPath) {
		return "", fmt.Errorf("%w: exit unreachable after %d bytes", puzzle.ErrNoSolution, s.Bytes)
	}
	if err != nil {
		return "", err
	}

	return strconv.Itoa(steps), nil
}

// Part2 returns the first byte that cuts the exit off, as "x,y".
// Reachability only gets worse as bytes fall, so the cut-off is found by
// binary search over how many bytes have landed.
func (s Solver) Part2(ctx context.Context, input []byte) (string, error) {
	falls, err := s.parse(input)
	if err != nil {
		return "", err
	}
	var searchErr error
	k := sort.Search(len(falls)+1, func(n int) bool {
		if searchErr != nil {
			return true
		}
		if searchErr = ctx.Err(); searchErr != nil {
			return true
		}
		_, err := s.escape(falls[:n])
		if errors.Is(err, gridgraph.ErrNoPath) {
			return true
		}
		searchErr = err

		return searchErr != nil
	})
	if searchErr != nil {
		return "", searchErr
	}
	if k == 0 || k > len(falls) {
		return "", fmt.Errorf("%w: the exit stays reachable", puzzle.ErrNoSolution)
	}
	p := falls[k-1]

	return fmt.Sprintf("%d,%d", p.X, p.Y), nil
}

// escape returns the step count from corner to corner with walls at fallen.
func (s Solver) escape(fallen []gridgraph.Point) (int, error) {
	gg, err := gridgraph.Fill(s.Size, s.Size, '.', gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, err
	}
	for _, p := range fallen {
		gg.Set(p, '#')
	}
	exit := gridgraph.Point{X: s.Size - 1, Y: s.Size - 1}
	_, steps, err := gg.ShortestPath(gridgraph.Point{}, exit, func(p gridgraph.Point) bool {
		return gg.At(p) == '.'
	})

	return steps, err
}

func (s Solver) parse(input []byte) ([]gridgraph.Point, error) {
	var falls []gridgraph.Point
	for i, line := range puzzle.Lines(input) {
		xs, ys, ok := strings.Cut(line, ",")
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if !ok || errX != nil || errY != nil {
			return nil, puzzle.Malformedf(i+1, "%q is not x,y", line)
		}
		if x < 0 || y < 0 || x >= s.Size || y >= s.Size {
			return nil, puzzle.Malformedf(i+1, "%d,%d is outside the %dx%d grid", x, y, s.Size, s.Size)
		}
		falls = append(falls, gridgraph.Point{X: x, Y: y})
	}

	return falls, nil
}
