// Package field generates the greyscale noise field rendered by the half-block demos.
//
// A field for a surface of W×H character cells has 2·H pixel rows of W columns, two
// pixel rows per character row. Values are random, only their distribution is fixed:
// tests should assert ranges, never exact colors.
package field

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termbuf/terminal"
)

// Grid is a row-major color field, Grid[y][x]
type Grid [][]terminal.RGB

// Rows returns the number of pixel rows
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, 0 for an empty grid
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Profile selects the brightness formula
type Profile uint8

const (
	// ProfileGradient fades from bright at the top to dark at the bottom,
	// base brightness is the squared depth factor (rows - y) / rows
	ProfileGradient Profile = iota
	// ProfileSnow is black with sparse bright flakes
	ProfileSnow
)

// jitter ranges, [lo, hi)
var jitterRange = [...][2]float64{
	ProfileGradient: {-0.1, 0.1},
	ProfileSnow:     {-100, 0.1},
}

// NewRand returns a generator seeded from the runtime's random source
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Brightness returns the clamped value for pixel row y of rows with the given jitter
func Brightness(p Profile, y, rows int, jitter float64) float64 {
	var base float64
	switch p {
	case ProfileSnow:
		base = 1
	default:
		depth := float64(rows-y) / float64(rows)
		base = depth * depth
	}
	return clamp01(base + jitter)
}

// Jitter draws one uniform perturbation for the profile
func Jitter(p Profile, rng *rand.Rand) float64 {
	r := jitterRange[p]
	return r[0] + (r[1]-r[0])*rng.Float64()
}

// Gray converts a brightness in [0, 1] to an 8-bit color with hue 0 and saturation 0
func Gray(v float64) terminal.RGB {
	r, g, b := colorful.Hsv(0, 0, clamp01(v)).Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

// Generate builds a fresh field for a surface of width×height character cells
func Generate(width, height int, p Profile, rng *rand.Rand) Grid {
	if width <= 0 || height <= 0 {
		return Grid{}
	}

	rows := height * 2
	grid := make(Grid, rows)
	for y := 0; y < rows; y++ {
		row := make([]terminal.RGB, width)
		for x := range row {
			row[x] = Gray(Brightness(p, y, rows, Jitter(p, rng)))
		}
		grid[y] = row
	}
	return grid
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
