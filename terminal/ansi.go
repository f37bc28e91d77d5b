package terminal

import (
	"strconv"
	"unicode/utf8"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l keeps the cursor at the right edge so the bottom-right cell never scrolls
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	csiBg256 = []byte("\x1b[48;5;") // followed by N;m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B;m
)

// seqWriter assembles one escape sequence or glyph at a time and hands it to the Output
// as a single write. The first write error is kept and every later write is skipped.
type seqWriter struct {
	out Output
	buf []byte
	err error
}

func newSeqWriter(out Output) *seqWriter {
	return &seqWriter{out: out, buf: make([]byte, 0, 64)}
}

// emit writes the pending fragment
func (w *seqWriter) emit() {
	if w.err == nil && len(w.buf) > 0 {
		_, w.err = w.out.Write(w.buf)
	}
	w.buf = w.buf[:0]
}

// raw writes a complete pre-built sequence
func (w *seqWriter) raw(p []byte) {
	w.buf = append(w.buf, p...)
	w.emit()
}

// glyph writes a single rune
func (w *seqWriter) glyph(r rune) {
	w.buf = utf8.AppendRune(w.buf, r)
	w.emit()
}

// flush flushes the Output, returns the sticky error if any write failed
func (w *seqWriter) flush() error {
	if w.err == nil {
		w.err = w.out.Flush()
	}
	return w.err
}

// appendInt appends a non-negative decimal
func appendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	return strconv.AppendInt(b, int64(n), 10)
}

// appendCursorPos appends the cursor positioning sequence (0-indexed input)
func appendCursorPos(b []byte, x, y int) []byte {
	b = append(b, csi...)
	b = appendInt(b, y+1)
	b = append(b, ';')
	b = appendInt(b, x+1)
	return append(b, 'H')
}

// appendCursorForward appends cursor forward N positions
func appendCursorForward(b []byte, n int) []byte {
	if n <= 0 {
		return b
	}
	b = append(b, csi...)
	if n > 1 {
		b = appendInt(b, n)
	}
	return append(b, 'C')
}
