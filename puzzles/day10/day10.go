// Package day10 solves "Hoof It": scoring and rating hiking trails on a
// topographic map.
package day10

import (
	"context"
	"strconv"

	"github.com/katalvlaran/aoc2024/bfs"
	"github.com/katalvlaran/aoc2024/core"
	"github.com/katalvlaran/aoc2024/dfs"
	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   10,
		Title: "Hoof It",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

// trails is the map as a directed graph whose edges climb by exactly one.
type trails struct {
	g     *core.Graph
	heads []string
}

// Part1 sums, over trailheads, the number of distinct 9s reachable.
func (Solver) Part1(ctx context.Context, input []byte) (string, error) {
	t, err := parse(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, h := range t.heads {
		_, err := bfs.BFS(t.g, h, bfs.WithContext(ctx), bfs.WithOnVisit(func(id string, _ int) error {
			if t.height(id) == '9' {
				total++
			}
			return nil
		}))
		if err != nil {
			return "", err
		}
	}

	return strconv.Itoa(total), nil
}

// Part2 sums, over trailheads, the number of distinct trails to any 9.
func (Solver) Part2(ctx context.Context, input []byte) (string, error) {
	t, err := parse(input)
	if err != nil {
		return "", err
	}
	summit := func(id string) bool { return t.height(id) == '9' }
	total := 0
	for _, h := range t.heads {
		n, err := dfs.CountPaths(t.g, h, summit, dfs.WithCancelContext(ctx))
		if err != nil {
			return "", err
		}
		total += n
	}

	return strconv.Itoa(total), nil
}

func (t *trails) height(id string) byte {
	v, err := t.g.Vertex(id)
	if err != nil {
		return 0
	}
	h, _ := v.Metadata["value"].(byte)

	return h
}

// parse accepts digits and '.' for impassable cells.
func parse(input []byte) (*trails, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	for y, row := range gg.Cells {
		for x, c := range row {
			if c != '.' && (c < '0' || c > '9') {
				return nil, puzzle.Malformedf(y+1, "column %d: %q is not a height", x+1, c)
			}
		}
	}
	g := gg.ToCoreGraph(func(from, to gridgraph.Point) bool {
		f := gg.At(from)
		return f >= '0' && f < '9' && gg.At(to) == f+1
	})
	t := &trails{g: g}
	for _, p := range gg.FindAll('0') {
		t.heads = append(t.heads, gridgraph.VertexID(p))
	}

	return t, nil
}
