package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 4
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal is one raw-mode, alternate-screen session over a single Output
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	// On failure everything already changed is rolled back before the error returns
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns the color capability frames are encoded for
	ColorMode() ColorMode

	// Flush writes cell buffer to terminal, cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int) error

	// PollEvent waits up to timeout for one input event, false when none arrived
	PollEvent(timeout time.Duration) (Event, bool)
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	output  *outputBuffer
	input   *inputReader

	initialized bool
	finalized   bool
}

// New creates a terminal reading keys from in and writing frames to out
func New(in *os.File, out Output, colorMode ColorMode) Terminal {
	return newTerminal(newBackend(in), out, colorMode)
}

func newTerminal(b Backend, out Output, colorMode ColorMode) *termImpl {
	return &termImpl{
		backend: b,
		output:  newOutputBuffer(out, colorMode),
		input:   newInputReader(b),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.initialized = true

	w, h := t.backend.Size()
	t.output.resize(w, h)

	t.output.control(csiAltScreenEnter, csiCursorHide, csiAutoWrapOff)
	if err := t.output.clear(RGBBlack); err != nil {
		return errors.Join(fmt.Errorf("terminal init: %w", err), t.Fini())
	}
	return nil
}

// Fini restores terminal state, raw mode is restored even when the output is broken
func (t *termImpl) Fini() error {
	if !t.initialized || t.finalized {
		return nil
	}
	t.finalized = true

	t.output.control(csiCursorShow, csiAltScreenExit, csiAutoWrapOn, csiSGR0)
	outErr := t.output.w.flush()

	var errs []error
	if outErr != nil {
		errs = append(errs, fmt.Errorf("terminal restore: %w", outErr))
	}
	if err := t.backend.Fini(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// ColorMode returns the encoding color capability
func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// Flush writes cell buffer to terminal
func (t *termImpl) Flush(cells []Cell, width, height int) error {
	if !t.initialized || t.finalized {
		return nil
	}
	return t.output.flush(cells, width, height)
}

// PollEvent returns the next pending event, polling the backend at most once
func (t *termImpl) PollEvent(timeout time.Duration) (Event, bool) {
	return t.input.poll(timeout)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
