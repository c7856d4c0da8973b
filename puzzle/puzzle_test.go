package puzzle_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/aoc2024/puzzle"
)

// echo answers part 1 with the input length times "factor" and fails or
// panics in part 2 depending on the input.
type echo struct{ factor int }

func (e echo) Part1(_ context.Context, input []byte) (string, error) {
	return strconv.Itoa(len(input) * e.factor), nil
}

func (e echo) Part2(_ context.Context, input []byte) (string, error) {
	switch string(input) {
	case "panic":
		panic("boom")
	case "none":
		return "", puzzle.ErrNoSolution
	}

	return "ok", nil
}

var echoPuzzle = puzzle.Puzzle{
	Day:      25,
	Title:    "Echo",
	Defaults: puzzle.Params{"factor": 2},
	New: func(p puzzle.Params) (puzzle.Solution, error) {
		f, err := p.Int("factor", 1)
		if err != nil {
			return nil, err
		}
		return echo{factor: f}, nil
	},
}

func init() {
	puzzle.Register(echoPuzzle)
}

func TestRegistry(t *testing.T) {
	p, err := puzzle.Lookup(25)
	require.NoError(t, err)
	assert.Equal(t, "Echo", p.Title)

	_, err = puzzle.Lookup(24)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	all := puzzle.All()
	require.NotEmpty(t, all)
	assert.Equal(t, 25, all[len(all)-1].Day)

	assert.Panics(t, func() { puzzle.Register(echoPuzzle) }, "duplicate day")
	assert.Panics(t, func() { puzzle.Register(puzzle.Puzzle{Day: 26, New: echoPuzzle.New}) })
	assert.Panics(t, func() { puzzle.Register(puzzle.Puzzle{Day: 3}) })
}

func TestRunner_Run(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := &puzzle.Runner{Logger: zap.New(core)}

	res := r.Run(context.Background(), echoPuzzle, []byte("abc"), nil, puzzle.BothParts)
	require.NoError(t, res.Err)
	assert.Equal(t, "6", res.Part1)
	assert.Equal(t, "ok", res.Part2)
	assert.Equal(t, 2, logs.FilterMessage("part solved").Len())
	for _, entry := range logs.All() {
		assert.EqualValues(t, 25, entry.ContextMap()["day"])
	}

	res = r.Run(context.Background(), echoPuzzle, []byte("abc"), puzzle.Params{"factor": 10}, puzzle.Part1)
	require.NoError(t, res.Err)
	assert.Equal(t, "30", res.Part1)
	assert.Empty(t, res.Part2)
}

func TestRunner_Failures(t *testing.T) {
	r := &puzzle.Runner{}

	res := r.Run(context.Background(), echoPuzzle, []byte("panic"), nil, puzzle.BothParts)
	assert.Equal(t, "10", res.Part1, "part 1 still runs")
	assert.ErrorIs(t, res.Err, puzzle.ErrSolverPanic)
	assert.Contains(t, res.Err.Error(), "boom")

	res = r.Run(context.Background(), echoPuzzle, []byte("none"), nil, puzzle.Part2)
	assert.ErrorIs(t, res.Err, puzzle.ErrNoSolution)

	res = r.Run(context.Background(), echoPuzzle, nil, puzzle.Params{"factor": "many"}, puzzle.BothParts)
	assert.ErrorIs(t, res.Err, puzzle.ErrBadParam)
	assert.Empty(t, res.Part1)
}

func TestParams(t *testing.T) {
	p := puzzle.Params{"a": 1, "b": int64(1) << 40, "c": 3.0, "d": "42", "e": 2.5, "s": "out", "n": nil}

	for key, want := range map[string]int64{"a": 1, "b": 1 << 40, "c": 3, "d": 42, "missing": 7, "n": 7} {
		got, err := p.Int64(key, 7)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}
	_, err := p.Int("e", 0)
	assert.ErrorIs(t, err, puzzle.ErrBadParam)
	_, err = p.Int("s", 0)
	assert.ErrorIs(t, err, puzzle.ErrBadParam)

	s, err := p.String("s", "")
	require.NoError(t, err)
	assert.Equal(t, "out", s)
	s, err = p.String("missing", "def")
	require.NoError(t, err)
	assert.Equal(t, "def", s)
	_, err = p.String("a", "")
	assert.True(t, errors.Is(err, puzzle.ErrBadParam))

	merged := puzzle.Params{"a": 1, "b": 2}.Merge(puzzle.Params{"b": 3})
	assert.Equal(t, puzzle.Params{"a": 1, "b": 3}, merged)
}
