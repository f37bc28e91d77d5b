// Package app runs the animated noise field against one terminal session.
//
// Each call to Run owns the terminal for its whole life: it enters raw mode and the
// alternate screen, draws frames until a key asks to quit or switch output, and always
// restores the terminal before returning.
package app

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/termbuf/clock"
	"github.com/lixenwraith/termbuf/field"
	"github.com/lixenwraith/termbuf/fps"
	"github.com/lixenwraith/termbuf/halfblock"
	"github.com/lixenwraith/termbuf/terminal"
	"github.com/lixenwraith/termbuf/terminal/tui"
)

// DefaultPollTimeout paces the loop at about 60 frames per second
const DefaultPollTimeout = time.Second / 60

// State is the loop outcome
type State uint8

const (
	StateRunning State = iota
	StateSwitchRequested
	StateQuitRequested
)

func (s State) String() string {
	switch s {
	case StateSwitchRequested:
		return "switch"
	case StateQuitRequested:
		return "quit"
	default:
		return "running"
	}
}

// Options configures one animation run
type Options struct {
	Title  string
	Header bool // title and fps row above the field

	Profile field.Profile
	Scroll  halfblock.Scroll

	// ExitAfter requests quit once this much time has passed since the loop started, 0 disables unless Timed
	ExitAfter time.Duration
	// Timed enforces ExitAfter even when it is 0, so the run stops after its first frame
	Timed bool
	// PollTimeout bounds the input wait of each frame, 0 means DefaultPollTimeout
	PollTimeout time.Duration

	Clock clock.Provider // nil means the system clock
	Rand  *rand.Rand     // nil means field.NewRand()
}

// App holds the loop state of one run
type App struct {
	term terminal.Terminal
	opts Options

	clock   clock.Provider
	rng     *rand.Rand
	fps     *fps.Tracker
	started time.Time

	// Independent request flags, checked once per iteration
	quit      bool
	switchReq bool

	frame uint64

	// Field size the current grid was generated for
	fieldW, fieldH int
	fieldSet       bool
	colors         field.Grid
	rebuilds       int

	cells   []terminal.Cell
	screenW int
	screenH int
}

// New prepares a run against term
func New(term terminal.Terminal, opts Options) *App {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}
	if opts.Rand == nil {
		opts.Rand = field.NewRand()
	}

	return &App{
		term:  term,
		opts:  opts,
		clock: opts.Clock,
		rng:   opts.Rand,
		fps:   fps.NewTracker(opts.Clock),
	}
}

// Run is New(term, opts).Run()
func Run(term terminal.Terminal, opts Options) (State, error) {
	return New(term, opts).Run()
}

// State reports the current request, quit wins over switch
func (a *App) State() State {
	switch {
	case a.quit:
		return StateQuitRequested
	case a.switchReq:
		return StateSwitchRequested
	default:
		return StateRunning
	}
}

// Frame returns the number of iterations run so far
func (a *App) Frame() uint64 {
	return a.frame
}

// Run drives the loop until quit or switch is requested or an error occurs
// The terminal is restored on every path once Init succeeded; a teardown error is
// returned only when nothing failed before it
func (a *App) Run() (state State, err error) {
	if err := a.term.Init(); err != nil {
		return a.State(), err
	}
	defer func() {
		if ferr := a.term.Fini(); ferr != nil && err == nil {
			err = ferr
		}
		log.Printf("app: %q stopped after %d frames: %s", a.opts.Title, a.frame, a.State())
	}()

	a.started = a.clock.Now()
	for !a.quit && !a.switchReq {
		if err := a.step(); err != nil {
			return a.State(), err
		}
	}
	return a.State(), nil
}

// step runs one iteration: tick, size, field, render, input
func (a *App) step() error {
	a.frame++
	a.fps.Tick()

	w, h := a.term.Size()
	a.resizeCells(w, h)

	screen := tui.NewRegion(a.cells, w, 0, 0, w, h)
	title, readout, body := layout(screen, a.opts.Header)

	a.setupColors(body.W, body.H)

	for _, p := range a.compose(title, readout, body) {
		p.widget.Render(p.region)
	}

	if err := a.term.Flush(a.cells, w, h); err != nil {
		return fmt.Errorf("draw frame %d: %w", a.frame, err)
	}

	if ev, ok := a.term.PollEvent(a.opts.PollTimeout); ok {
		if err := a.handleEvent(ev); err != nil {
			return err
		}
	}

	if (a.opts.Timed || a.opts.ExitAfter > 0) && a.clock.Now().Sub(a.started) >= a.opts.ExitAfter {
		a.quit = true
	}
	return nil
}

// compose binds this frame's widgets to their regions, header widgets only when enabled
func (a *App) compose(title, readout, body tui.Region) []placed {
	noise := ColorField{Colors: a.colors, Frame: a.frame, Scroll: a.opts.Scroll}
	if !a.opts.Header {
		return []placed{{noise, body}}
	}
	return []placed{
		{Title{Text: a.opts.Title}, title},
		{FpsReadout{Tracker: a.fps}, readout},
		{noise, body},
	}
}

// handleEvent sets the request flags, only presses count
func (a *App) handleEvent(ev terminal.Event) error {
	switch {
	case ev.Type == terminal.EventError:
		return fmt.Errorf("poll input: %w", ev.Err)
	case ev.IsRune('q'):
		a.quit = true
	case ev.IsRune(' '):
		a.switchReq = true
	case ev.Type == terminal.EventKey && ev.Action == terminal.KeyPress && ev.Key == terminal.KeyCtrlC:
		a.quit = true
	}
	return nil
}

// resizeCells keeps a w×h cell buffer
func (a *App) resizeCells(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == a.screenW && h == a.screenH && a.cells != nil {
		return
	}
	a.cells = make([]terminal.Cell, w*h)
	a.screenW, a.screenH = w, h
}

// setupColors regenerates the grid when the field size differs from the last one,
// reporting whether it did
func (a *App) setupColors(w, h int) bool {
	if a.fieldSet && w == a.fieldW && h == a.fieldH {
		return false
	}
	a.colors = field.Generate(w, h, a.opts.Profile, a.rng)
	a.fieldW, a.fieldH = w, h
	a.fieldSet = true
	a.rebuilds++
	log.Printf("app: field %dx%d generated (%d)", w, h, a.rebuilds)
	return true
}
