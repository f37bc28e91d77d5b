package app

import (
	"fmt"

	"github.com/lixenwraith/termbuf/field"
	"github.com/lixenwraith/termbuf/fps"
	"github.com/lixenwraith/termbuf/halfblock"
	"github.com/lixenwraith/termbuf/terminal"
	"github.com/lixenwraith/termbuf/terminal/tui"
)

const (
	// HeaderHeight is the number of rows above the color field
	HeaderHeight = 1
	// FpsWidth is the column count reserved for the readout at the right of the header
	FpsWidth = 10
)

var (
	headerFg = terminal.RGBWhite
	headerBg = terminal.RGBBlack
)

// Widget paints itself into a region
type Widget interface {
	Render(r tui.Region)
}

// placed is a widget bound to the region it draws into for one frame
type placed struct {
	widget Widget
	region tui.Region
}

// Title is the centered header text naming the active output configuration
type Title struct {
	Text string
}

func (t Title) Render(r tui.Region) {
	r.Fill(headerBg)
	r.TextCenter(0, t.Text, headerFg, headerBg, terminal.AttrBold)
}

// FpsReadout shows the latest frame rate, blank until the first measurement
type FpsReadout struct {
	Tracker *fps.Tracker
}

func (f FpsReadout) Render(r tui.Region) {
	r.Fill(headerBg)
	if v, ok := f.Tracker.Reading(); ok {
		r.TextRight(0, fmt.Sprintf("%.1f fps", v), headerFg, headerBg, terminal.AttrNone)
	}
}

// ColorField is the scrolling half-block noise field
type ColorField struct {
	Colors field.Grid
	Frame  uint64
	Scroll halfblock.Scroll
}

func (c ColorField) Render(r tui.Region) {
	halfblock.Render(r, c.Colors, c.Frame, c.Scroll)
}

// layout splits the screen into the header widgets and the field area
// With header disabled the field takes the whole screen and title is empty
func layout(screen tui.Region, header bool) (title, readout, body tui.Region) {
	if !header {
		return tui.Region{}, tui.Region{}, screen
	}
	top, body := tui.SplitVFixed(screen, HeaderHeight)
	title, readout = tui.SplitHFixedRight(top, FpsWidth)
	return title, readout, body
}
