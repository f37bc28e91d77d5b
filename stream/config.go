// Package stream opens stdout or stderr with a chosen buffering mode and cycles
// through the six stream/buffering combinations.
package stream

import "fmt"

// Target is the standard stream written to
type Target uint8

const (
	Stdout Target = iota
	Stderr
)

// String returns the stream name
func (t Target) String() string {
	if t == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Fd returns the process descriptor of the stream
func (t Target) Fd() int {
	if t == Stderr {
		return 2
	}
	return 1
}

// Buffering is the write accumulation policy between the caller and the OS
type Buffering uint8

const (
	// Unbuffered hands every write straight to the OS
	Unbuffered Buffering = iota
	// LineBuffered writes through the last newline of each write, holds the rest
	LineBuffered
	// BlockBuffered holds writes until the buffer fills or Flush is called
	BlockBuffered
)

// String returns the mode as shown in titles
func (b Buffering) String() string {
	switch b {
	case LineBuffered:
		return "line buffered"
	case BlockBuffered:
		return "block buffered"
	default:
		return "unbuffered"
	}
}

// Config is one output configuration
type Config struct {
	Target    Target
	Buffering Buffering
}

// String returns e.g. "stdout (line buffered)"
func (c Config) String() string {
	return fmt.Sprintf("%s (%s)", c.Target, c.Buffering)
}

// Configs lists every configuration in cycle order
var Configs = [...]Config{
	{Stdout, Unbuffered},
	{Stdout, LineBuffered},
	{Stdout, BlockBuffered},
	{Stderr, Unbuffered},
	{Stderr, LineBuffered},
	{Stderr, BlockBuffered},
}

// Cycle holds the current position in Configs
// The zero value points at the first configuration
type Cycle struct {
	idx int
}

// NewCycle starts at the first configuration
func NewCycle() *Cycle {
	return &Cycle{}
}

// Current returns the active configuration
func (c *Cycle) Current() Config {
	return Configs[c.idx]
}

// Advance moves to the next configuration, wrapping after the last, and returns it
func (c *Cycle) Advance() Config {
	c.idx = (c.idx + 1) % len(Configs)
	return Configs[c.idx]
}
