package puzzle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Part selects which parts Runner.Run solves. Zero means both.
type Part int

const (
	BothParts Part = 0
	Part1     Part = 1
	Part2     Part = 2
)

// Result holds the answers and timings of one day.
type Result struct {
	Day      int
	Title    string
	Part1    string
	Part2    string
	Elapsed1 time.Duration
	Elapsed2 time.Duration
	// Err combines the failures of both parts.
	Err error
}

// Runner solves puzzles and logs how long each part took.
type Runner struct {
	Logger *zap.Logger
}

// Run builds p's Solution from p.Defaults merged with params and solves
// the requested parts. A failing part does not stop the other one.
func (r *Runner) Run(ctx context.Context, p Puzzle, input []byte, params Params, parts Part) Result {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Int("day", p.Day))
	res := Result{Day: p.Day, Title: p.Title}

	sol, err := p.New(p.Defaults.Merge(params))
	if err != nil {
		res.Err = fmt.Errorf("day %d: %w", p.Day, err)
		log.Error("invalid parameters", zap.Error(err))
		return res
	}

	if parts == BothParts || parts == Part1 {
		res.Part1, res.Elapsed1, err = solve(ctx, log, 1, sol.Part1, input)
		res.Err = multierr.Append(res.Err, err)
	}
	if parts == BothParts || parts == Part2 {
		res.Part2, res.Elapsed2, err = solve(ctx, log, 2, sol.Part2, input)
		res.Err = multierr.Append(res.Err, err)
	}

	return res
}

func solve(ctx context.Context, log *zap.Logger, part int, f func(context.Context, []byte) (string, error), input []byte) (ans string, elapsed time.Duration, err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrSolverPanic, rec)
		}
		elapsed = time.Since(start)
		if err != nil {
			err = fmt.Errorf("part %d: %w", part, err)
			log.Error("part failed", zap.Int("part", part), zap.Duration("elapsed", elapsed), zap.Error(err))
			return
		}
		log.Info("part solved", zap.Int("part", part), zap.Duration("elapsed", elapsed))
	}()

	ans, err = f(ctx, input)

	return ans, 0, err
}
