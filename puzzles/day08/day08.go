// Package day08 solves "Resonant Collinearity".
package day08

import (
	"context"
	"strconv"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   8,
		Title: "Resonant Collinearity",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

// Part1 counts antinodes at twice the distance of each same-frequency pair.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	return count(input, func(gg *gridgraph.GridGraph, a, b gridgraph.Point, mark func(gridgraph.Point)) {
		mark(a.Add(a.Sub(b)))
		mark(b.Add(b.Sub(a)))
	})
}

// Part2 counts every grid point in line with a pair at whole-offset steps,
// including the antennas themselves.
func (Solver) Part2(_ context.Context, input []byte) (string, error) {
	return count(input, func(gg *gridgraph.GridGraph, a, b gridgraph.Point, mark func(gridgraph.Point)) {
		for p, d := a, a.Sub(b); gg.InBounds(p); p = p.Add(d) {
			mark(p)
		}
		for p, d := b, b.Sub(a); gg.InBounds(p); p = p.Add(d) {
			mark(p)
		}
	})
}

type emitter func(gg *gridgraph.GridGraph, a, b gridgraph.Point, mark func(gridgraph.Point))

func count(input []byte, emit emitter) (string, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return "", err
	}
	antennas := make(map[byte][]gridgraph.Point)
	for y, row := range gg.Cells {
		for x, c := range row {
			if isFrequency(c) {
				antennas[c] = append(antennas[c], gridgraph.Point{X: x, Y: y})
			}
		}
	}

	antinodes := make(map[gridgraph.Point]struct{})
	mark := func(p gridgraph.Point) {
		if gg.InBounds(p) {
			antinodes[p] = struct{}{}
		}
	}
	for _, group := range antennas {
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				emit(gg, group[i], group[j], mark)
			}
		}
	}

	return strconv.Itoa(len(antinodes)), nil
}

func isFrequency(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
