package halfblock

import (
	"testing"

	"github.com/lixenwraith/termbuf/field"
	"github.com/lixenwraith/termbuf/terminal"
	"github.com/lixenwraith/termbuf/terminal/tui"
)

func solidGrid(w, h int, c terminal.RGB) field.Grid {
	g := make(field.Grid, h*2)
	for y := range g {
		g[y] = make([]terminal.RGB, w)
		for x := range g[y] {
			g[y][x] = c
		}
	}
	return g
}

func newRegion(w, h int) tui.Region {
	return tui.NewRegion(make([]terminal.Cell, w*h), w, 0, 0, w, h)
}

func TestUniformGrid(t *testing.T) {
	c := terminal.RGB{R: 90, G: 90, B: 90}
	w, h := 17, 6
	g := solidGrid(w, h, c)

	for _, scroll := range []Scroll{ScrollHorizontal, ScrollVertical} {
		for _, frame := range []uint64{0, 1, 5, 16, 17, 1 << 40, ^uint64(0)} {
			r := newRegion(w, h)
			Render(r, g, frame, scroll)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					cell := r.At(x, y)
					if cell.Rune != Glyph {
						t.Fatalf("Expected glyph %q at (%d,%d), got %q", Glyph, x, y, cell.Rune)
					}
					if cell.Fg != c || cell.Bg != c {
						t.Fatalf("Expected fg=bg=%+v at (%d,%d) frame %d, got fg=%+v bg=%+v", c, x, y, frame, cell.Fg, cell.Bg)
					}
				}
			}
		}
	}
}

func TestPixelRowsMapToForegroundAndBackground(t *testing.T) {
	w, h := 3, 2
	g := solidGrid(w, h, terminal.RGBBlack)
	for x := 0; x < w; x++ {
		g[0][x] = gray(10)
		g[1][x] = gray(20)
		g[2][x] = gray(30)
		g[3][x] = gray(40)
	}

	r := newRegion(w, h)
	Render(r, g, 0, ScrollHorizontal)

	if cell := r.At(1, 0); cell.Fg != gray(10) || cell.Bg != gray(20) {
		t.Errorf("Expected row 0 fg=10 bg=20, got fg=%v bg=%v", cell.Fg, cell.Bg)
	}
	if cell := r.At(1, 1); cell.Fg != gray(30) || cell.Bg != gray(40) {
		t.Errorf("Expected row 1 fg=30 bg=40, got fg=%v bg=%v", cell.Fg, cell.Bg)
	}
}

// markedColumn returns the screen column showing the marker color on row 0
func markedColumn(t *testing.T, r tui.Region, marker terminal.RGB) int {
	t.Helper()
	found := -1
	for x := 0; x < r.W; x++ {
		if r.At(x, 0).Fg == marker {
			if found >= 0 {
				t.Fatalf("Expected a single marked column, found %d and %d", found, x)
			}
			found = x
		}
	}
	if found < 0 {
		t.Fatal("Expected to find the marked column")
	}
	return found
}

func TestHorizontalScrollShiftsOneColumnPerFrame(t *testing.T) {
	w, h := 11, 3
	marker := terminal.RGBWhite
	g := solidGrid(w, h, terminal.RGBBlack)
	const src = 4
	for y := range g {
		g[y][src] = marker
	}

	prev := -1
	for frame := uint64(0); frame < 3*uint64(w); frame++ {
		r := newRegion(w, h)
		Render(r, g, frame, ScrollHorizontal)
		pos := markedColumn(t, r, marker)

		// Screen x shows source (x + frame) mod w
		want := ((src-int(frame%uint64(w)))%w + w) % w
		if pos != want {
			t.Fatalf("Expected marker at column %d on frame %d, got %d", want, frame, pos)
		}
		if prev >= 0 && pos != (prev-1+w)%w {
			t.Fatalf("Expected marker to move exactly one column on frame %d: %d -> %d", frame, prev, pos)
		}
		prev = pos
	}
}

func TestVerticalScrollShiftsOneRowPerFrame(t *testing.T) {
	w, h := 4, 7
	marker := terminal.RGBWhite
	g := solidGrid(w, h, terminal.RGBBlack)
	// Character row 2 of the source is both pixel rows 4 and 5
	for x := 0; x < w; x++ {
		g[4][x] = marker
		g[5][x] = marker
	}

	markedRow := func(r tui.Region) int {
		for y := 0; y < r.H; y++ {
			if r.At(0, y).Fg == marker {
				return y
			}
		}
		return -1
	}

	prev := -1
	for frame := uint64(0); frame < 2*uint64(h); frame++ {
		r := newRegion(w, h)
		Render(r, g, frame, ScrollVertical)
		pos := markedRow(r)
		if pos < 0 {
			t.Fatalf("Expected marker row on frame %d", frame)
		}
		if prev >= 0 && pos != (prev+1)%h {
			t.Fatalf("Expected marker to fall one row on frame %d: %d -> %d", frame, prev, pos)
		}
		prev = pos
	}
}

func TestRenderIntoSubRegion(t *testing.T) {
	totalW, totalH := 10, 5
	cells := make([]terminal.Cell, totalW*totalH)
	root := tui.NewRegion(cells, totalW, 0, 0, totalW, totalH)
	_, body := tui.SplitVFixed(root, 1)

	c := gray(200)
	Render(body, solidGrid(body.W, body.H, c), 3, ScrollHorizontal)

	for x := 0; x < totalW; x++ {
		if cells[x].Rune != 0 {
			t.Fatalf("Expected header row untouched at column %d, got %q", x, cells[x].Rune)
		}
	}
	for i := totalW; i < len(cells); i++ {
		if cells[i].Rune != Glyph || cells[i].Bg != c {
			t.Fatalf("Expected body cell %d painted, got %+v", i, cells[i])
		}
	}
}

func TestEmptyRegion(t *testing.T) {
	// No rows means no grid access at all
	Render(newRegion(5, 0), field.Grid{}, 9, ScrollHorizontal)
	Render(newRegion(0, 0), field.Grid{}, 9, ScrollVertical)
}

// gray returns the neutral color with all channels set to v
func gray(v uint8) terminal.RGB {
	return terminal.RGB{R: v, G: v, B: v}
}
