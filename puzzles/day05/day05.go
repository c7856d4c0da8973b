// Package day05 solves "Print Queue": checking and repairing page orders
// against pairwise precedence rules.
package day05

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/core"
	"github.com/katalvlaran/aoc2024/dfs"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   5,
		Title: "Print Queue",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

type rule struct{ before, after string }

type manual struct {
	rules   map[rule]struct{}
	updates [][]string
}

// Part1 sums the middle page of every correctly ordered update.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, u := range m.updates {
		if m.ordered(u) {
			sum += middle(u)
		}
	}

	return strconv.Itoa(sum), nil
}

// Part2 reorders each incorrectly ordered update and sums their middle pages.
func (Solver) Part2(ctx context.Context, input []byte) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, u := range m.updates {
		if m.ordered(u) {
			continue
		}
		fixed, err := m.reorder(ctx, u)
		if err != nil {
			return "", err
		}
		sum += middle(fixed)
	}

	return strconv.Itoa(sum), nil
}

// ordered reports whether no rule between two pages of u is violated.
func (m *manual) ordered(u []string) bool {
	for i := range u {
		for j := i + 1; j < len(u); j++ {
			if _, bad := m.rules[rule{u[j], u[i]}]; bad {
				return false
			}
		}
	}

	return true
}

// reorder topologically sorts u over the rules that mention two of its pages.
func (m *manual) reorder(ctx context.Context, u []string) ([]string, error) {
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range u {
		if err := g.AddVertex(p); err != nil {
			return nil, err
		}
	}
	for _, a := range u {
		for _, b := range u {
			if _, ok := m.rules[rule{a, b}]; ok {
				if _, err := g.AddEdge(a, b, 0); err != nil {
					return nil, err
				}
			}
		}
	}
	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", strings.Join(u, ","), err)
	}

	return order, nil
}

// middle assumes pages were validated as integers by parse.
func middle(u []string) int {
	n, _ := strconv.Atoi(u[len(u)/2])

	return n
}

func parse(input []byte) (*manual, error) {
	m := &manual{rules: make(map[rule]struct{})}
	inUpdates := false
	for i, line := range puzzle.Lines(input) {
		switch {
		case line == "":
			inUpdates = true
		case !inUpdates:
			a, b, ok := strings.Cut(line, "|")
			if !ok || !numeric(a) || !numeric(b) {
				return nil, puzzle.Malformedf(i+1, "rule %q is not a|b", line)
			}
			m.rules[rule{a, b}] = struct{}{}
		default:
			pages := strings.Split(line, ",")
			seen := make(map[string]bool, len(pages))
			for _, p := range pages {
				if !numeric(p) {
					return nil, puzzle.Malformedf(i+1, "page %q is not a number", p)
				}
				if seen[p] {
					return nil, puzzle.Malformedf(i+1, "page %s repeated", p)
				}
				seen[p] = true
			}
			m.updates = append(m.updates, pages)
		}
	}

	return m, nil
}

func numeric(s string) bool {
	_, err := strconv.Atoi(s)

	return err == nil
}
