package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// InputPath returns dir/dayNN.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// ReadInput loads a puzzle input file.
func ReadInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("puzzle: read %s: %w", path, err)
	}

	return b, nil
}

// Malformedf reports a bad input line; lineNo is 1-based.
func Malformedf(lineNo int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, lineNo, fmt.Sprintf(format, args...))
}

// Lines splits input into lines with surrounding whitespace removed.
// Trailing blank lines are dropped; interior blank lines are kept as "".
func Lines(input []byte) []string {
	lines := strings.Split(string(input), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Blocks groups Lines into blank-line separated paragraphs.
func Blocks(input []byte) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(input) {
		if l == "" {
			if cur != nil {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if cur != nil {
		out = append(out, cur)
	}

	return out
}

var intRE = regexp.MustCompile(`-?\d+`)

// Ints returns every signed decimal integer embedded in s, in order.
func Ints(s string) ([]int, error) {
	matches := intRE.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrMalformedInput, m, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sum adds up xs.
func Sum[T constraints.Integer | constraints.Float](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}

	return s
}
