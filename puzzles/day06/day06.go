// Package day06 solves "Guard Gallivant": tracing a patrol route and
// finding obstructions that trap the guard in a loop.
package day06

import (
	"context"
	"strconv"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   6,
		Title: "Guard Gallivant",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

type lab struct {
	gg    *gridgraph.GridGraph
	start gridgraph.Point
	dir   gridgraph.Direction
}

// Part1 counts the distinct cells the guard visits before leaving.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	l, err := parse(input)
	if err != nil {
		return "", err
	}
	route, _ := l.patrol(gridgraph.Point{X: -1, Y: -1})

	return strconv.Itoa(len(route)), nil
}

// Part2 counts the cells where one new obstruction makes the guard loop.
// Only cells on the unobstructed route can change the guard's path.
func (Solver) Part2(ctx context.Context, input []byte) (string, error) {
	l, err := parse(input)
	if err != nil {
		return "", err
	}
	route, _ := l.patrol(gridgraph.Point{X: -1, Y: -1})
	n := 0
	for _, p := range route {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if p == l.start {
			continue
		}
		if _, loops := l.patrol(p); loops {
			n++
		}
	}

	return strconv.Itoa(n), nil
}

// patrol walks the guard with an extra obstruction at block (pass an
// out-of-bounds point for none). It returns the visited cells in first-visit
// order and whether the guard repeated a (cell, heading) state.
func (l *lab) patrol(block gridgraph.Point) ([]gridgraph.Point, bool) {
	gg := l.gg
	seenCell := make([]bool, gg.Width*gg.Height)
	seenState := make([]bool, gg.Width*gg.Height*4)
	var route []gridgraph.Point

	p, d := l.start, l.dir
	for {
		i := gg.Index(p)
		if seenState[i*4+int(d)] {
			return route, true
		}
		seenState[i*4+int(d)] = true
		if !seenCell[i] {
			seenCell[i] = true
			route = append(route, p)
		}

		next := p.Step(d)
		if !gg.InBounds(next) {
			return route, false
		}
		if gg.At(next) == '#' || next == block {
			d = d.TurnRight()
			continue
		}
		p = next
	}
}

func parse(input []byte) (*lab, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	var guards []gridgraph.Point
	l := &lab{gg: gg}
	for _, b := range []byte("^>v<") {
		for _, p := range gg.FindAll(b) {
			guards = append(guards, p)
			l.start = p
			l.dir, _ = gridgraph.ParseDirection(b)
		}
	}
	switch len(guards) {
	case 0:
		return nil, puzzle.Malformedf(1, "no guard (^ > v <) on the map")
	case 1:
		return l, nil
	default:
		return nil, puzzle.Malformedf(guards[1].Y+1, "second guard at %d,%d", guards[1].X, guards[1].Y)
	}
}
