package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termbuf/terminal"
	"github.com/lixenwraith/termbuf/terminal/tui"
)

const greeting = "hello"

var (
	boxStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	textStyle = boxStyle.Bold(true)
)

// boxPadding is the blank column count on each side of the text inside the border
const boxPadding = 2

// boxRect returns the outer rectangle of the box centered on a w×h screen
func boxRect(w, h int, text string) (x, y, bw, bh int) {
	bw = terminal.Width.StringWidth(text) + 2*boxPadding + 2
	bh = 3
	return (w - bw) / 2, (h - bh) / 2, bw, bh
}

// draw clears the screen and paints the bordered text in its center
func draw(s tcell.Screen, text string) {
	s.Clear()
	w, h := s.Size()
	x, y, bw, bh := boxRect(w, h, text)

	for i := 1; i < bw-1; i++ {
		s.SetContent(x+i, y, tcell.RuneHLine, nil, boxStyle)
		s.SetContent(x+i, y+bh-1, tcell.RuneHLine, nil, boxStyle)
	}
	for j := 1; j < bh-1; j++ {
		s.SetContent(x, y+j, tcell.RuneVLine, nil, boxStyle)
		s.SetContent(x+bw-1, y+j, tcell.RuneVLine, nil, boxStyle)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, boxStyle)
	s.SetContent(x+bw-1, y, tcell.RuneURCorner, nil, boxStyle)
	s.SetContent(x, y+bh-1, tcell.RuneLLCorner, nil, boxStyle)
	s.SetContent(x+bw-1, y+bh-1, tcell.RuneLRCorner, nil, boxStyle)

	inner := tui.PadCenter(text, bw-2)
	col := x + 1
	for _, r := range inner {
		s.SetContent(col, y+1, r, nil, textStyle)
		col += terminal.Width.RuneWidth(r)
	}
	s.Show()
}
