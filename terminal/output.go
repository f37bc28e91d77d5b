package terminal

// outputBuffer manages diffed terminal output against the last flushed frame
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	w         *seqWriter

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(out Output, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		w:         newSeqWriter(out),
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions and invalidates the front buffer
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// cellEqual compares two cells for equality, blank cells ignore foreground
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Attrs != b.Attrs {
		return false
	}
	if a.Rune == 0 || a.Rune == ' ' {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}

// control writes whole control sequences and flushes them
func (o *outputBuffer) control(seqs ...[]byte) error {
	for _, s := range seqs {
		o.w.raw(s)
	}
	o.cursorValid = false
	o.lastValid = false
	return o.w.flush()
}

// flush writes the frame, diffing against front buffer
func (o *outputBuffer) flush(cells []Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
		// Resized terminals keep stale content outside the diff, start from blank
		if err := o.clear(RGBBlack); err != nil {
			return err
		}
	}

	if len(cells) < width*height {
		return nil
	}

	w := o.w
	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			if cellEqual(cells[idx], o.front[idx]) {
				x++
				continue
			}

			// Position cursor once for this dirty region
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					w.buf = appendCursorForward(w.buf, x-o.cursorX)
				} else {
					w.buf = appendCursorPos(w.buf, x, y)
				}
				w.emit()
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			// Write all contiguous dirty cells, emitting style only when changed
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]
				if cellEqual(c, o.front[cidx]) {
					break
				}

				o.writeStyle(c.Fg, c.Bg, c.Attrs)

				r := c.Rune
				if r == 0 {
					r = ' '
				}
				w.glyph(r)

				o.front[cidx] = c
				o.cursorX++
				x++

				// The terminal already advanced over the continuation cell of a wide rune
				if x < width && Width.RuneWidth(r) == 2 {
					o.front[cidx+1] = cells[cidx+1]
					o.cursorX++
					x++
				}
			}
		}
	}

	w.raw(csiSGR0)
	o.lastValid = false

	return w.flush()
}

// writeStyle emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyle(fg, bg RGB, attr Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	attrChanged := !o.lastValid || attr != o.lastAttr

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	b := append(o.w.buf, csi...)
	if attrChanged {
		// Attribute changes need a reset, which also drops both colors
		b = append(b, '0')
		if attr&AttrBold != 0 {
			b = append(b, ";1"...)
		}
		if attr&AttrDim != 0 {
			b = append(b, ";2"...)
		}
		if attr&AttrItalic != 0 {
			b = append(b, ";3"...)
		}
		if attr&AttrUnderline != 0 {
			b = append(b, ";4"...)
		}
		if attr&AttrReverse != 0 {
			b = append(b, ";7"...)
		}
		b = append(b, ';')
		b = o.appendColor(b, '3', fg)
		b = append(b, ';')
		b = o.appendColor(b, '4', bg)
	} else {
		if fgChanged {
			b = o.appendColor(b, '3', fg)
		}
		if fgChanged && bgChanged {
			b = append(b, ';')
		}
		if bgChanged {
			b = o.appendColor(b, '4', bg)
		}
	}
	o.w.buf = append(b, 'm')
	o.w.emit()

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// appendColor appends "38;2;R;G;B" style parameters, plane is '3' for fg and '4' for bg
func (o *outputBuffer) appendColor(b []byte, plane byte, c RGB) []byte {
	b = append(b, plane, '8', ';')
	if o.colorMode == ColorModeTrueColor {
		b = append(b, '2', ';')
		b = appendInt(b, int(c.R))
		b = append(b, ';')
		b = appendInt(b, int(c.G))
		b = append(b, ';')
		return appendInt(b, int(c.B))
	}
	b = append(b, '5', ';')
	return appendInt(b, int(RGBTo256(c)))
}

// clear writes a clear screen with specified background
func (o *outputBuffer) clear(bg RGB) error {
	o.w.raw(csiSGR0)
	if o.colorMode == ColorModeTrueColor {
		o.w.buf = append(o.w.buf, csiBgRGB...)
		o.w.buf = appendInt(o.w.buf, int(bg.R))
		o.w.buf = append(o.w.buf, ';')
		o.w.buf = appendInt(o.w.buf, int(bg.G))
		o.w.buf = append(o.w.buf, ';')
		o.w.buf = appendInt(o.w.buf, int(bg.B))
	} else {
		o.w.buf = append(o.w.buf, csiBg256...)
		o.w.buf = appendInt(o.w.buf, int(RGBTo256(bg)))
	}
	o.w.buf = append(o.w.buf, 'm')
	o.w.emit()
	o.w.raw(csiClear)

	o.lastValid = false
	o.cursorValid = false

	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
	return o.w.flush()
}
