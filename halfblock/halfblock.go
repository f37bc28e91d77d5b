// Package halfblock composites a color field onto terminal cells two pixels at a time.
//
// Each cell gets the upper half block glyph: the foreground paints the upper pixel
// (even field row), the background the lower one (odd field row).
package halfblock

import (
	"github.com/lixenwraith/termbuf/field"
	"github.com/lixenwraith/termbuf/terminal"
	"github.com/lixenwraith/termbuf/terminal/tui"
)

// Glyph is the upper half block
const Glyph = '▀'

// Scroll selects the animation axis
type Scroll uint8

const (
	// ScrollHorizontal shifts the field one column left per frame
	ScrollHorizontal Scroll = iota
	// ScrollVertical shifts the field one character row down per frame
	ScrollVertical
)

// Render paints the region from colors, offset by frame along the scroll axis.
// colors must have exactly 2·r.H rows and at least r.W columns.
func Render(r tui.Region, colors field.Grid, frame uint64, scroll Scroll) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	switch scroll {
	case ScrollVertical:
		h := uint64(r.H)
		for y := 0; y < r.H; y++ {
			yi := int((uint64(r.H-y-1) + frame%h) % h)
			top, bottom := colors[yi*2], colors[yi*2+1]
			for x := 0; x < r.W; x++ {
				r.Cell(x, y, Glyph, top[x], bottom[x], terminal.AttrNone)
			}
		}
	default:
		w := uint64(r.W)
		for x := 0; x < r.W; x++ {
			xi := int((uint64(x) + frame%w) % w)
			for y := 0; y < r.H; y++ {
				r.Cell(x, y, Glyph, colors[y*2][xi], colors[y*2+1][xi], terminal.AttrNone)
			}
		}
	}
}
