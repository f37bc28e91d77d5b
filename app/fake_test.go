package app

import (
	"time"

	"github.com/lixenwraith/termbuf/clock"
	"github.com/lixenwraith/termbuf/terminal"
)

// polled is one scripted PollEvent result
type polled struct {
	ev terminal.Event
	ok bool
}

var noEvent = polled{}

func key(r rune) polled {
	return polled{ev: terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}, ok: true}
}

// fakeTerminal records the session and replays scripted input
type fakeTerminal struct {
	width, height int
	sizes         [][2]int // per-frame sizes, the last one sticks

	script []polled

	initErr  error
	finiErr  error
	flushErr error

	// advanced on every flush when set
	clock *clock.Mock
	step  time.Duration

	initCalls  int
	finiCalls  int
	flushes    int
	polls      int
	timeouts   []time.Duration
	last       []terminal.Cell
	lastW      int
	lastH      int
	sizeCalls  int
	finiBefore int // flushes seen when Fini ran
}

func (f *fakeTerminal) Init() error {
	f.initCalls++
	return f.initErr
}

func (f *fakeTerminal) Fini() error {
	f.finiCalls++
	f.finiBefore = f.flushes
	return f.finiErr
}

func (f *fakeTerminal) Size() (int, int) {
	f.sizeCalls++
	if len(f.sizes) > 0 {
		i := min(f.sizeCalls-1, len(f.sizes)-1)
		return f.sizes[i][0], f.sizes[i][1]
	}
	return f.width, f.height
}

func (f *fakeTerminal) ColorMode() terminal.ColorMode {
	return terminal.ColorModeTrueColor
}

func (f *fakeTerminal) Flush(cells []terminal.Cell, w, h int) error {
	if f.flushErr != nil {
		return f.flushErr
	}
	f.flushes++
	f.last = append(f.last[:0], cells...)
	f.lastW, f.lastH = w, h
	if f.clock != nil {
		f.clock.Advance(f.step)
	}
	return nil
}

func (f *fakeTerminal) PollEvent(timeout time.Duration) (terminal.Event, bool) {
	f.polls++
	f.timeouts = append(f.timeouts, timeout)
	if len(f.script) == 0 {
		return terminal.Event{}, false
	}
	p := f.script[0]
	f.script = f.script[1:]
	return p.ev, p.ok
}

func (f *fakeTerminal) row(y int) string {
	var s []rune
	for x := 0; x < f.lastW; x++ {
		r := f.last[y*f.lastW+x].Rune
		if r == 0 {
			r = ' '
		}
		s = append(s, r)
	}
	return string(s)
}
