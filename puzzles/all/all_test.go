package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/katalvlaran/aoc2024/puzzles/all"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func TestAllDaysRegistered(t *testing.T) {
	all := puzzle.All()
	require.Len(t, all, 18)
	for i, p := range all {
		assert.Equal(t, i+1, p.Day)
		assert.NotEmpty(t, p.Title)
		_, err := p.New(p.Defaults)
		assert.NoError(t, err, "day %d defaults", p.Day)
	}
}
