// Package day04 solves "Ceres Search": a word search over a letter grid.
package day04

import (
	"context"
	"strconv"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   4,
		Title: "Ceres Search",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

const word = "XMAS"

// Part1 counts XMAS in all eight directions.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	gg, err := gridgraph.Parse(input, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return "", err
	}
	n := 0
	for _, start := range gg.FindAll(word[0]) {
		for _, d := range gg.NeighborOffsets() {
			if spells(gg, start, d, word) {
				n++
			}
		}
	}

	return strconv.Itoa(n), nil
}

// Part2 counts A cells whose two diagonals both read MAS or SAM.
func (Solver) Part2(_ context.Context, input []byte) (string, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return "", err
	}
	n := 0
	for _, a := range gg.FindAll('A') {
		if mas(gg, a, gridgraph.Point{X: -1, Y: -1}) && mas(gg, a, gridgraph.Point{X: 1, Y: -1}) {
			n++
		}
	}

	return strconv.Itoa(n), nil
}

func spells(gg *gridgraph.GridGraph, p, d gridgraph.Point, s string) bool {
	for i := 0; i < len(s); i++ {
		if gg.At(p) != s[i] {
			return false
		}
		p = p.Add(d)
	}

	return true
}

// mas checks the diagonal through centre running from centre-d to centre+d.
func mas(gg *gridgraph.GridGraph, centre, d gridgraph.Point) bool {
	a, b := gg.At(centre.Sub(d)), gg.At(centre.Add(d))

	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
