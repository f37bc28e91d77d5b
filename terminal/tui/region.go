package tui

import "github.com/lixenwraith/termbuf/terminal"

// Region is a rectangular window into a row-major cell buffer TotalW cells wide.
// Coordinates passed to its methods are relative to (X, Y) and clipped to W×H.
type Region struct {
	Cells  []terminal.Cell
	TotalW int
	X, Y   int
	W, H   int
}

// NewRegion creates a region over cells at x, y of size w×h
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{Cells: cells, TotalW: totalW, X: x, Y: y, W: w, H: h}
}

// clipSpan clips the span [off, off+n) to [0, limit) and returns the new offset and length
func clipSpan(off, n, limit int) (int, int) {
	if off < 0 {
		n += off
		off = 0
	}
	n = min(n, limit-off)
	return off, max(n, 0)
}

// Sub returns the part of r at x, y of size w×h, clipped to r
func (r Region) Sub(x, y, w, h int) Region {
	x, w = clipSpan(x, w, r.W)
	y, h = clipSpan(y, h, r.H)
	return Region{Cells: r.Cells, TotalW: r.TotalW, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// index maps a relative position to the backing slice, -1 when outside the region or buffer
func (r Region) index(x, y int) int {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return -1
	}
	ax := r.X + x
	if ax < 0 || ax >= r.TotalW {
		return -1
	}
	idx := (r.Y+y)*r.TotalW + ax
	if idx < 0 || idx >= len(r.Cells) {
		return -1
	}
	return idx
}

// Cell sets one cell, positions outside the region are ignored
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if i := r.index(x, y); i >= 0 {
		r.Cells[i] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// At returns the cell at x, y, the zero Cell outside the region
func (r Region) At(x, y int) terminal.Cell {
	if i := r.index(x, y); i >= 0 {
		return r.Cells[i]
	}
	return terminal.Cell{}
}

// Fill blanks the region with background bg
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}
