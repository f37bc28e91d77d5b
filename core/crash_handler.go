// Package core holds process-level helpers shared by the demos.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termbuf/terminal"
)

// exit is replaced in tests
var exit = osExit

var osExit = os.Exit

// StdStreams writes to both stdout and stderr, the reset target for demos that may draw on either
func StdStreams() io.Writer {
	return io.MultiWriter(os.Stdout, os.Stderr)
}

// HandleCrash resets the terminal on w, prints the panic value and stack to stderr, and exits 1
// Call it from a deferred recover in main; nil r is a no-op
func HandleCrash(r any, w io.Writer) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(w)
	if f, ok := w.(interface{ Flush() error }); ok {
		f.Flush()
	}
	os.Stderr.Sync()

	// \r\n in case the tty is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}
