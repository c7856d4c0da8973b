package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors shared by every day package.
var (
	// ErrMalformedInput indicates puzzle input that does not match the expected format.
	ErrMalformedInput = errors.New("puzzle: malformed input")
	// ErrNoSolution indicates well-formed input that admits no answer.
	ErrNoSolution = errors.New("puzzle: no solution")
	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("puzzle: input not found")
	// ErrSolverPanic indicates a solver panicked; the panic value is wrapped.
	ErrSolverPanic = errors.New("puzzle: solver panicked")
	// ErrBadParam indicates a parameter of the wrong type.
	ErrBadParam = errors.New("puzzle: bad parameter")
	// ErrUnknownDay indicates no puzzle is registered for a day.
	ErrUnknownDay = errors.New("puzzle: unknown day")
)

// Solution answers both parts of one day from its raw input.
type Solution interface {
	Part1(ctx context.Context, input []byte) (string, error)
	Part2(ctx context.Context, input []byte) (string, error)
}

// Puzzle describes one registered day.
type Puzzle struct {
	Day   int
	Title string
	// Defaults are the built-in parameters, overridden per key by config.
	Defaults Params
	// New builds a Solution from the merged parameters.
	New func(Params) (Solution, error)
}

var (
	mu       sync.RWMutex
	registry = make(map[int]Puzzle)
)

// Register adds p to the registry. It is meant to be called from a day
// package's init and panics on a duplicate or invalid day.
func Register(p Puzzle) {
	if p.Day < 1 || p.Day > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", p.Day))
	}
	if p.New == nil {
		panic(fmt.Sprintf("puzzle: day %d has no constructor", p.Day))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day))
	}
	registry[p.Day] = p
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return p, nil
}

// All returns every registered puzzle sorted by day.
func All() []Puzzle {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })

	return out
}
