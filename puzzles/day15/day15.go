// Package day15 solves "Warehouse Woes": a robot pushing boxes around a
// warehouse.
package day15

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   15,
		Title: "Warehouse Woes",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

// Part1 sums box GPS coordinates after every move.
func (Solver) Part1(ctx context.Context, input []byte) (string, error) {
	return simulate(ctx, input, false)
}

// Part2 does the same on the doubled-width warehouse.
func (Solver) Part2(ctx context.Context, input []byte) (string, error) {
	return simulate(ctx, input, true)
}

func simulate(ctx context.Context, input []byte, wide bool) (string, error) {
	rows, moves, err := parse(input)
	if err != nil {
		return "", err
	}
	if wide {
		rows = widen(rows)
	}
	gg, err := gridgraph.NewGridGraph(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		return "", err
	}
	robot, ok := gg.Find('@')
	if !ok {
		return "", puzzle.Malformedf(1, "no robot '@' on the map")
	}
	for i, d := range moves {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		if push(gg, robot, d) {
			robot = robot.Step(d)
		}
	}

	return strconv.Itoa(gps(gg)), nil
}

// push moves the robot at from one step in direction d together with every
// box it touches, or nothing at all if any of them would hit a wall.
// Wide boxes pushed vertically drag their other half along.
func push(gg *gridgraph.GridGraph, from gridgraph.Point, d gridgraph.Direction) bool {
	vertical := d == gridgraph.Up || d == gridgraph.Down
	moving := []gridgraph.Point{from}
	queued := map[gridgraph.Point]bool{from: true}
	add := func(p gridgraph.Point) {
		if !queued[p] {
			queued[p] = true
			moving = append(moving, p)
		}
	}

	for i := 0; i < len(moving); i++ {
		next := moving[i].Step(d)
		switch gg.At(next) {
		case '#':
			return false
		case 'O':
			add(next)
		case '[':
			add(next)
			if vertical {
				add(next.Step(gridgraph.Right))
			}
		case ']':
			add(next)
			if vertical {
				add(next.Step(gridgraph.Left))
			}
		}
	}

	cells := make([]byte, len(moving))
	for i, p := range moving {
		cells[i] = gg.At(p)
		gg.Set(p, '.')
	}
	for i, p := range moving {
		gg.Set(p.Step(d), cells[i])
	}

	return true
}

// gps sums 100·row + column over boxes, measured at their left edge.
func gps(gg *gridgraph.GridGraph) int {
	sum := 0
	for y, row := range gg.Cells {
		for x, c := range row {
			if c == 'O' || c == '[' {
				sum += 100*y + x
			}
		}
	}

	return sum
}

var wider = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

func widen(rows [][]byte) [][]byte {
	out := make([][]byte, len(rows))
	for i, r := range rows {
		out[i] = []byte(wider.Replace(string(r)))
	}

	return out
}

// parse splits the map from the move list, which may span several lines.
func parse(input []byte) ([][]byte, []gridgraph.Direction, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, puzzle.Malformedf(1, "want a map and a move list separated by a blank line")
	}
	rows := make([][]byte, len(blocks[0]))
	for i, l := range blocks[0] {
		for _, c := range []byte(l) {
			if !strings.ContainsRune("#.O@", rune(c)) {
				return nil, nil, puzzle.Malformedf(i+1, "unexpected map cell %q", c)
			}
		}
		rows[i] = []byte(l)
	}
	var moves []gridgraph.Direction
	for i, l := range blocks[1] {
		for _, c := range []byte(l) {
			d, ok := gridgraph.ParseDirection(c)
			if !ok {
				return nil, nil, puzzle.Malformedf(len(blocks[0])+2+i, "unexpected move %q", c)
			}
			moves = append(moves, d)
		}
	}

	return rows, moves, nil
}
