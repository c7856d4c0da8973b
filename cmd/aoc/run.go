package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/puzzle"
)

// errDaysFailed makes the process exit non-zero after every day has run.
var errDaysFailed = errors.New("one or more days failed")

func (a *app) runCmd() *cobra.Command {
	var (
		all   bool
		input string
		part  int
	)

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days",
		Long: `Solves each listed day (or every registered day with --all) in order
and prints both answers. A failing day is reported and the remaining days
still run.

Examples:
  aoc run 1 2 3
  aoc run --all
  aoc run 18 --input sample.txt --part 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzles, err := selectDays(args, all)
			if err != nil {
				return err
			}
			if input != "" && len(puzzles) != 1 {
				return fmt.Errorf("--input needs exactly one day, got %d", len(puzzles))
			}
			if part < 0 || part > 2 {
				return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
			}

			runner := &puzzle.Runner{Logger: a.logger}
			failed := 0
			for _, p := range puzzles {
				path := input
				if path == "" {
					path = puzzle.InputPath(a.cfg.Inputs, p.Day)
				}
				var res puzzle.Result
				data, err := puzzle.ReadInput(path)
				if err != nil {
					res = puzzle.Result{Day: p.Day, Title: p.Title, Err: err}
				} else {
					res = runner.Run(cmd.Context(), p, data, a.cfg.DayParams(p.Day), puzzle.Part(part))
				}
				if res.Err != nil {
					failed++
				}
				printResult(cmd.OutOrStdout(), res, puzzle.Part(part))
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errDaysFailed, failed, len(puzzles))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Run every registered day")
	cmd.Flags().StringVar(&input, "input", "", "Input file (only with a single day)")
	cmd.Flags().IntVar(&part, "part", 0, "Part to solve: 1, 2, or 0 for both")

	return cmd
}

func selectDays(args []string, all bool) ([]puzzle.Puzzle, error) {
	if all {
		if len(args) > 0 {
			return nil, errors.New("--all takes no day arguments")
		}
		return puzzle.All(), nil
	}
	if len(args) == 0 {
		return nil, errors.New("name at least one day or pass --all")
	}
	out := make([]puzzle.Puzzle, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("day %q is not a number", arg)
		}
		p, err := puzzle.Lookup(day)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func printResult(w io.Writer, res puzzle.Result, part puzzle.Part) {
	fmt.Fprintf(w, "Day %d: %s\n", res.Day, res.Title)
	if (part == puzzle.BothParts || part == puzzle.Part1) && res.Part1 != "" {
		fmt.Fprintf(w, "  part 1: %s\n", res.Part1)
	}
	if (part == puzzle.BothParts || part == puzzle.Part2) && res.Part2 != "" {
		fmt.Fprintf(w, "  part 2: %s\n", res.Part2)
	}
	if res.Err != nil {
		fmt.Fprintf(w, "  error: %v\n", res.Err)
	}
}
