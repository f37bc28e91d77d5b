// Package fps measures rendered frames per second over one second windows.
package fps

import (
	"time"

	"github.com/lixenwraith/termbuf/clock"
)

const (
	// Window is the minimum time between two readings
	Window = time.Second
	// minFrames is the frame count a window must exceed before it produces a reading
	minFrames = 2
)

// Tracker counts frames and keeps the latest frames-per-second reading
type Tracker struct {
	clock  clock.Provider
	frames int
	last   time.Time
	fps    float64
	valid  bool
}

// NewTracker starts the first window at the provider's current time
func NewTracker(c clock.Provider) *Tracker {
	return &Tracker{
		clock: c,
		last:  c.Now(),
	}
}

// Tick records one frame, closing the window once it is older than Window and holds more than two frames
func (t *Tracker) Tick() {
	t.frames++
	now := t.clock.Now()
	elapsed := now.Sub(t.last)
	if elapsed > Window && t.frames > minFrames {
		t.fps = float64(t.frames) / elapsed.Seconds()
		t.valid = true
		t.frames = 0
		t.last = now
	}
}

// Reading returns the latest fps value, false until the first window completes
func (t *Tracker) Reading() (float64, bool) {
	return t.fps, t.valid
}
