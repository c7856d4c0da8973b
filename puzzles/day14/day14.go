// Package day14 solves "Restroom Redoubt": robots patrolling a wrapping
// floor.
package day14

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   14,
		Title: "Restroom Redoubt",
		Defaults: puzzle.Params{
			"width":      101,
			"height":     103,
			"seconds":    100,
			"render_dir": "",
		},
		New: New,
	})
}

// Solver simulates robots on a Width×Height torus.
type Solver struct {
	Width, Height int
	// Seconds is the elapsed time scored in part 1.
	Seconds int
	// MaxSeconds bounds the search in part 2.
	MaxSeconds int
	// RenderDir, when set, receives a PNG of the frame found in part 2.
	RenderDir string
}

// New reads width, height, seconds, max_seconds (default width·height,
// after which positions repeat) and render_dir.
func New(p puzzle.Params) (puzzle.Solution, error) {
	var s Solver
	var err error
	if s.Width, err = p.Int("width", 101); err != nil {
		return nil, err
	}
	if s.Height, err = p.Int("height", 103); err != nil {
		return nil, err
	}
	if s.Seconds, err = p.Int("seconds", 100); err != nil {
		return nil, err
	}
	if s.MaxSeconds, err = p.Int("max_seconds", s.Width*s.Height); err != nil {
		return nil, err
	}
	if s.RenderDir, err = p.String("render_dir", ""); err != nil {
		return nil, err
	}
	if s.Width <= 0 || s.Height <= 0 || s.Seconds < 0 || s.MaxSeconds < 0 {
		return nil, fmt.Errorf("%w: width and height must be positive, seconds non-negative", puzzle.ErrBadParam)
	}

	return s, nil
}

type robot struct {
	px, py, vx, vy int
}

// at returns the robot's tile after t seconds.
func (r robot) at(t, w, h int) (x, y int) {
	return mod(r.px+r.vx*t, w), mod(r.py+r.vy*t, h)
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

// Part1 multiplies the robot counts of the four quadrants; robots on the
// middle row or column are not counted.
func (s Solver) Part1(_ context.Context, input []byte) (string, error) {
	robots, err := parse(input)
	if err != nil {
		return "", err
	}
	midX, midY := s.Width/2, s.Height/2
	var quads [4]int
	for _, r := range robots {
		x, y := r.at(s.Seconds, s.Width, s.Height)
		if (s.Width%2 == 1 && x == midX) || (s.Height%2 == 1 && y == midY) {
			continue
		}
		q := 0
		if x >= (s.Width+1)/2 {
			q++
		}
		if y >= (s.Height+1)/2 {
			q += 2
		}
		quads[q]++
	}

	return strconv.Itoa(quads[0] * quads[1] * quads[2] * quads[3]), nil
}

// Part2 finds the first second at which no two robots share a tile, the
// frame where they arrange into a picture.
func (s Solver) Part2(ctx context.Context, input []byte) (string, error) {
	robots, err := parse(input)
	if err != nil {
		return "", err
	}
	occupied := make([]int, s.Width*s.Height)
	for t := 0; t < s.MaxSeconds; t++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if s.distinct(robots, t, occupied) {
			if s.RenderDir != "" {
				if err := s.render(robots, t); err != nil {
					return "", err
				}
			}
			return strconv.Itoa(t), nil
		}
	}

	return "", fmt.Errorf("%w: robots always overlap within %d seconds", puzzle.ErrNoSolution, s.MaxSeconds)
}

// distinct stamps tiles with t+1 so occupied never needs clearing.
func (s Solver) distinct(robots []robot, t int, occupied []int) bool {
	for _, r := range robots {
		x, y := r.at(t, s.Width, s.Height)
		i := y*s.Width + x
		if occupied[i] == t+1 {
			return false
		}
		occupied[i] = t + 1
	}

	return true
}

// render writes the frame at second t as a black and white PNG.
func (s Solver) render(robots []robot, t int) error {
	img := image.NewGray(image.Rect(0, 0, s.Width, s.Height))
	for _, r := range robots {
		x, y := r.at(t, s.Width, s.Height)
		img.SetGray(x, y, color.Gray{Y: 0xff})
	}
	if err := os.MkdirAll(s.RenderDir, 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(filepath.Join(s.RenderDir, fmt.Sprintf("day14_%05d.png", t)))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: %w", err)
	}

	return f.Close()
}

func parse(input []byte) ([]robot, error) {
	var robots []robot
	for i, line := range puzzle.Lines(input) {
		ns, err := puzzle.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(ns) != 4 {
			return nil, puzzle.Malformedf(i+1, "want p=x,y v=dx,dy, got %q", line)
		}
		robots = append(robots, robot{ns[0], ns[1], ns[2], ns[3]})
	}

	return robots, nil
}
