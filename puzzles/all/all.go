// Package all registers every day's solver with the puzzle registry.
package all

import (
	_ "github.com/katalvlaran/aoc2024/puzzles/day01"
	_ "github.com/katalvlaran/aoc2024/puzzles/day02"
	_ "github.com/katalvlaran/aoc2024/puzzles/day03"
	_ "github.com/katalvlaran/aoc2024/puzzles/day04"
	_ "github.com/katalvlaran/aoc2024/puzzles/day05"
	_ "github.com/katalvlaran/aoc2024/puzzles/day06"
	_ "github.com/katalvlaran/aoc2024/puzzles/day07"
	_ "github.com/katalvlaran/aoc2024/puzzles/day08"
	_ "github.com/katalvlaran/aoc2024/puzzles/day09"
	_ "github.com/katalvlaran/aoc2024/puzzles/day10"
	_ "github.com/katalvlaran/aoc2024/puzzles/day11"
	_ "github.com/katalvlaran/aoc2024/puzzles/day12"
	_ "github.com/katalvlaran/aoc2024/puzzles/day13"
	_ "github.com/katalvlaran/aoc2024/puzzles/day14"
	_ "github.com/katalvlaran/aoc2024/puzzles/day15"
	_ "github.com/katalvlaran/aoc2024/puzzles/day16"
	_ "github.com/katalvlaran/aoc2024/puzzles/day17"
	_ "github.com/katalvlaran/aoc2024/puzzles/day18"
)
