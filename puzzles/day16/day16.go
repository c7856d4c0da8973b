// Package day16 solves "Reindeer Maze": the cheapest route through a maze
// where turning costs far more than walking.
package day16

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2024/core"
	"github.com/katalvlaran/aoc2024/dijkstra"
	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   16,
		Title: "Reindeer Maze",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

const (
	stepCost = 1
	turnCost = 1000
)

// maze is the state graph: one vertex per (open cell, heading).
type maze struct {
	g     *core.Graph
	cells map[string]gridgraph.Point
	start string
	ends  []string
}

// Part1 returns the lowest score from S (facing east) to E.
func (Solver) Part1(ctx context.Context, input []byte) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	best, _, err := m.solve(ctx)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(best, 10), nil
}

// Part2 counts the tiles lying on at least one lowest-score route.
func (Solver) Part2(ctx context.Context, input []byte) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	_, states, err := m.solve(ctx)
	if err != nil {
		return "", err
	}
	tiles := make(map[gridgraph.Point]struct{})
	for id := range states {
		tiles[m.cells[id]] = struct{}{}
	}

	return strconv.Itoa(len(tiles)), nil
}

// solve returns the best score and every state on some best route.
func (m *maze) solve(ctx context.Context) (int64, map[string]struct{}, error) {
	dist, prev, err := dijkstra.Dijkstra(m.g,
		dijkstra.Source(m.start),
		dijkstra.WithReturnPath(),
		dijkstra.WithContext(ctx),
	)
	if err != nil {
		return 0, nil, err
	}
	best := int64(dijkstra.Unreachable)
	for _, e := range m.ends {
		if dist[e] < best {
			best = dist[e]
		}
	}
	if best == dijkstra.Unreachable {
		return 0, nil, fmt.Errorf("%w: E is unreachable from S", puzzle.ErrNoSolution)
	}
	var targets []string
	for _, e := range m.ends {
		if dist[e] == best {
			targets = append(targets, e)
		}
	}

	return best, dijkstra.OnShortestPaths(prev, targets...), nil
}

func stateID(p gridgraph.Point, d gridgraph.Direction) string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, d)
}

func parse(input []byte) (*maze, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	s, okS := gg.Find('S')
	e, okE := gg.Find('E')
	if !okS || !okE {
		return nil, puzzle.Malformedf(1, "maze needs both S and E")
	}

	m := &maze{
		g:     core.NewGraph(core.WithDirected(true), core.WithWeighted()),
		cells: make(map[string]gridgraph.Point),
		start: stateID(s, gridgraph.Right),
	}
	open := func(p gridgraph.Point) bool { return gg.InBounds(p) && gg.At(p) != '#' }
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := gridgraph.Point{X: x, Y: y}
			if !open(p) {
				continue
			}
			for _, d := range gridgraph.Directions {
				id := stateID(p, d)
				m.cells[id] = p
				if err := m.g.AddVertex(id); err != nil {
					return nil, err
				}
				if _, err := m.g.AddEdge(id, stateID(p, d.TurnLeft()), turnCost); err != nil {
					return nil, err
				}
				if _, err := m.g.AddEdge(id, stateID(p, d.TurnRight()), turnCost); err != nil {
					return nil, err
				}
				if next := p.Step(d); open(next) {
					if _, err := m.g.AddEdge(id, stateID(next, d), stepCost); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	for _, d := range gridgraph.Directions {
		m.ends = append(m.ends, stateID(e, d))
	}

	return m, nil
}
