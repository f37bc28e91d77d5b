package terminal

import (
	"io"
	"time"
)

// Output is the byte sink frames are written to
// Flush is called once at the end of every frame and after every control sequence batch
type Output interface {
	io.Writer
	Flush() error
}

// Backend abstracts the platform side of a terminal session: raw mode, size and input.
// Output bytes never pass through the backend, they go to the Output handed to New.
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init, safe to call without a prior Init
	Fini() error

	// Size returns the terminal size in cells
	Size() (width, height int)

	// Read waits up to timeout for input; nil data with nil error means nothing arrived
	Read(timeout time.Duration) ([]byte, error)
}
