// Package day17 solves "Chronospatial Computer": a 3-bit virtual machine
// and the search for a program that prints itself.
package day17

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   17,
		Title: "Chronospatial Computer",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

// maxSteps bounds a single run; real programs halt after a few hundred.
const maxSteps = 1 << 20

var (
	errInvalidCombo = fmt.Errorf("%w: combo operand 7 is reserved", puzzle.ErrMalformedInput)
	errRunaway      = errors.New("program did not halt")
)

const (
	opADV = iota
	opBXL
	opBST
	opJNZ
	opBXC
	opOUT
	opBDV
	opCDV
)

// machine holds the three registers and the program.
type machine struct {
	a, b, c int
	program []int
}

// Part1 runs the program and joins its output with commas.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	out, err := m.run()
	if err != nil {
		return "", err
	}

	return join(out), nil
}

// Part2 finds the lowest initial A for which the program outputs itself.
// Such programs consume A three bits per loop, so the answer is built
// from its most significant octal digit down, keeping only prefixes whose
// output already matches the tail of the program.
func (Solver) Part2(ctx context.Context, input []byte) (string, error) {
	m, err := parse(input)
	if err != nil {
		return "", err
	}
	a, ok, err := m.search(ctx, len(m.program)-1, 0)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: no register A reproduces the program", puzzle.ErrNoSolution)
	}

	return strconv.Itoa(a), nil
}

func (m machine) search(ctx context.Context, i, prefix int) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	want := m.program[i:]
	for digit := 0; digit < 8; digit++ {
		cand := prefix<<3 | digit
		trial := m
		trial.a = cand
		out, err := trial.run()
		if err != nil {
			return 0, false, err
		}
		if !equal(out, want) {
			continue
		}
		if i == 0 {
			return cand, true, nil
		}
		if a, ok, err := m.search(ctx, i-1, cand); err != nil || ok {
			return a, ok, err
		}
	}

	return 0, false, nil
}

// run executes until the instruction pointer leaves the program. The
// receiver is a copy, so registers change only locally; use exec to
// observe them.
func (m machine) run() ([]int, error) {
	return m.exec()
}

func (m *machine) exec() ([]int, error) {
	var out []int
	for ip, steps := 0, 0; ip+1 < len(m.program); steps++ {
		if steps == maxSteps {
			return nil, errRunaway
		}
		op, lit := m.program[ip], m.program[ip+1]
		ip += 2
		switch op {
		case opBXL:
			m.b ^= lit
			continue
		case opJNZ:
			if m.a != 0 {
				ip = lit
			}
			continue
		case opBXC:
			m.b ^= m.c
			continue
		}
		v, err := m.combo(lit)
		if err != nil {
			return nil, err
		}
		switch op {
		case opADV:
			m.a = shift(m.a, v)
		case opBST:
			m.b = v & 7
		case opOUT:
			out = append(out, v&7)
		case opBDV:
			m.b = shift(m.a, v)
		case opCDV:
			m.c = shift(m.a, v)
		}
	}

	return out, nil
}

func (m *machine) combo(operand int) (int, error) {
	switch operand {
	case 4:
		return m.a, nil
	case 5:
		return m.b, nil
	case 6:
		return m.c, nil
	case 7:
		return 0, errInvalidCombo
	}

	return operand, nil
}

// shift computes a / 2^n for non-negative a.
func shift(a, n int) int {
	if n >= 63 {
		return 0
	}

	return a >> n
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func join(out []int) string {
	parts := make([]string, len(out))
	for i, v := range out {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

func parse(input []byte) (machine, error) {
	var m machine
	regs := map[string]*int{"A": &m.a, "B": &m.b, "C": &m.c}
	seenProgram := false
	for i, line := range puzzle.Lines(input) {
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "Register "):
			name, value, ok := strings.Cut(strings.TrimPrefix(line, "Register "), ":")
			r, known := regs[name]
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if !ok || !known || err != nil || n < 0 {
				return m, puzzle.Malformedf(i+1, "bad register line %q", line)
			}
			*r = n
		case strings.HasPrefix(line, "Program:"):
			ns, err := puzzle.Ints(strings.TrimPrefix(line, "Program:"))
			if err != nil {
				return m, err
			}
			for _, n := range ns {
				if n < 0 || n > 7 {
					return m, puzzle.Malformedf(i+1, "%d is not a 3-bit number", n)
				}
			}
			m.program = ns
			seenProgram = true
		default:
			return m, puzzle.Malformedf(i+1, "unexpected line %q", line)
		}
	}
	if !seenProgram || len(m.program) == 0 {
		return m, puzzle.Malformedf(1, "missing program")
	}

	return m, nil
}
