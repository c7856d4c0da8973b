// Package aoc2024 solves the Advent of Code 2024 puzzles on top of a small
// in-memory graph toolkit.
//
// What is in here?
//
//	Graph primitives and algorithms reused across the daily solvers:
//		• core      – Graph, Vertex and Edge types with vertex metadata
//		• bfs       – breadth-first traversal with depth limits and hooks
//		• dfs       – topological sort and memoized path counting on DAGs
//		• dijkstra  – shortest paths with full predecessor sets
//		• gridgraph – character grids: parsing, regions, sides, BFS paths
//
//	Puzzle plumbing:
//		• puzzle      – Solution interface, registry, parameters, runner, input helpers
//		• puzzles/... – one package per day, each registering itself in init
//		• config      – YAML configuration (inputs directory, log level, per-day params)
//		• cmd/aoc     – the command-line front end
//
// Quick start:
//
//	aoc run 1 4 16 --inputs ./inputs
//	aoc run --all --part 2
//	aoc list
//
// Input files are named dayNN.txt inside the inputs directory. Per-day
// parameters such as grid sizes or iteration counts come from each
// puzzle's defaults, overridden by the days section of aoc.yaml.
package aoc2024
