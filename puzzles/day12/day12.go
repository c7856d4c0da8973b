// Package day12 solves "Garden Groups": pricing fences around regions.
package day12

import (
	"context"
	"strconv"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   12,
		Title: "Garden Groups",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

// Part1 prices each region at area × perimeter.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	return price(input, (*gridgraph.GridGraph).Perimeter)
}

// Part2 prices each region at area × number of sides.
func (Solver) Part2(_ context.Context, input []byte) (string, error) {
	return price(input, (*gridgraph.GridGraph).Sides)
}

func price(input []byte, fence func(*gridgraph.GridGraph, []int) int) (string, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return "", err
	}
	total := 0
	for _, region := range gg.ConnectedComponents() {
		total += len(region) * fence(gg, region)
	}

	return strconv.Itoa(total), nil
}
