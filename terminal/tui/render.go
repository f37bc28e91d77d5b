package tui

import "github.com/lixenwraith/termbuf/terminal"

// Text renders text at position, truncates at region edge
// Wide runes take two cells, the continuation cell is set to the zero rune
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		cw := terminal.Width.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+col+cw > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, fg, bg, attr)
			if cw == 2 {
				r.Cell(x+col+1, y, 0, fg, bg, attr)
			}
		}
		col += cw
	}
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := r.W - terminal.Width.StringWidth(s)
	r.Text(x, y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := (r.W - terminal.Width.StringWidth(s)) / 2
	if x < 0 {
		x = 0
		s = Truncate(s, r.W)
	}
	r.Text(x, y, s, fg, bg, attr)
}
