// Package day09 solves "Disk Fragmenter": compacting a dense disk map.
package day09

import (
	"bytes"
	"context"
	"strconv"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   9,
		Title: "Disk Fragmenter",
		New:   func(puzzle.Params) (puzzle.Solution, error) { return Solver{}, nil },
	})
}

type Solver struct{}

const free = -1

// span is a run of blocks starting at pos.
type span struct {
	pos, size int
}

// Part1 moves single blocks from the end into the leftmost free block.
func (Solver) Part1(_ context.Context, input []byte) (string, error) {
	files, _, err := parse(input)
	if err != nil {
		return "", err
	}
	disk := layout(files)
	for l, r := 0, len(disk)-1; ; l, r = l+1, r-1 {
		for l < r && disk[l] != free {
			l++
		}
		for l < r && disk[r] == free {
			r--
		}
		if l >= r {
			break
		}
		disk[l], disk[r] = disk[r], free
	}
	sum := 0
	for pos, id := range disk {
		if id != free {
			sum += pos * id
		}
	}

	return strconv.Itoa(sum), nil
}

// Part2 moves whole files, highest ID first, into the leftmost free span
// that fits and lies left of the file. Each file moves at most once.
func (Solver) Part2(_ context.Context, input []byte) (string, error) {
	files, gaps, err := parse(input)
	if err != nil {
		return "", err
	}
	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for g := range gaps {
			if gaps[g].pos >= f.pos {
				break
			}
			if gaps[g].size >= f.size {
				f.pos = gaps[g].pos
				gaps[g].pos += f.size
				gaps[g].size -= f.size
				break
			}
		}
	}
	sum := 0
	for id, f := range files {
		for k := 0; k < f.size; k++ {
			sum += (f.pos + k) * id
		}
	}

	return strconv.Itoa(sum), nil
}

// layout expands files into one entry per block, free blocks as -1.
func layout(files []span) []int {
	end := 0
	if n := len(files); n > 0 {
		end = files[n-1].pos + files[n-1].size
	}
	disk := make([]int, end)
	for i := range disk {
		disk[i] = free
	}
	for id, f := range files {
		for k := 0; k < f.size; k++ {
			disk[f.pos+k] = id
		}
	}

	return disk
}

// parse returns file spans indexed by file ID and the free spans between them.
func parse(input []byte) (files, gaps []span, err error) {
	dense := bytes.TrimSpace(input)
	pos := 0
	for i, c := range dense {
		if c < '0' || c > '9' {
			return nil, nil, puzzle.Malformedf(1, "byte %d: %q is not a digit", i, c)
		}
		s := span{pos: pos, size: int(c - '0')}
		if i%2 == 0 {
			files = append(files, s)
		} else if s.size > 0 {
			gaps = append(gaps, s)
		}
		pos += s.size
	}

	return files, gaps, nil
}
