// Package clock provides wall-clock sources for frame timing.
package clock

import "time"

// Provider returns the current time
type Provider interface {
	Now() time.Time
}

// System reads time.Now, readings carry the monotonic component
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now()
}
