package puzzle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func TestInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "day07.txt"), puzzle.InputPath("inputs", 7))
	assert.Equal(t, filepath.Join("x", "day18.txt"), puzzle.InputPath("x", 18))
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := puzzle.InputPath(dir, 1)

	_, err := puzzle.ReadInput(path)
	assert.ErrorIs(t, err, puzzle.ErrInputNotFound)

	require.NoError(t, os.WriteFile(path, []byte("3   4\n"), 0o600))
	b, err := puzzle.ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "3   4\n", string(b))
}

func TestLinesAndBlocks(t *testing.T) {
	input := []byte("a|b\r\nc|d\n\n\n1,2\n  3,4  \n\n")

	if diff := cmp.Diff([]string{"a|b", "c|d", "", "", "1,2", "3,4"}, puzzle.Lines(input)); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{{"a|b", "c|d"}, {"1,2", "3,4"}}
	if diff := cmp.Diff(want, puzzle.Blocks(input)); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, puzzle.Lines(nil))
}

func TestInts(t *testing.T) {
	got, err := puzzle.Ints("p=0,4 v=3,-3")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 3, -3}, got)

	got, err = puzzle.Ints("no numbers")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = puzzle.Ints("99999999999999999999999")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestMalformedf(t *testing.T) {
	err := puzzle.Malformedf(3, "want %d fields", 2)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Equal(t, "puzzle: malformed input: line 3: want 2 fields", err.Error())
}

func TestAbsSum(t *testing.T) {
	assert.Equal(t, 5, puzzle.Abs(-5))
	assert.Equal(t, int64(7), puzzle.Abs(int64(7)))
	assert.Equal(t, 1.5, puzzle.Abs(-1.5))
	assert.Equal(t, 10, puzzle.Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, uint8(0), puzzle.Sum[uint8](nil))
}
