//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Fallback size when the input is not a tty
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type unixBackend struct {
	in      *os.File
	inFd    int
	oldTerm *term.State
	buf     []byte
}

func newBackend(in *os.File) Backend {
	return &unixBackend{
		in:   in,
		inFd: int(in.Fd()),
		buf:  make([]byte, 256),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("%s is not a terminal", b.in.Name())
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() error {
	if b.oldTerm == nil {
		return nil
	}
	old := b.oldTerm
	b.oldTerm = nil
	if err := term.Restore(b.inFd, old); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	return nil
}

func (b *unixBackend) Size() (int, int) {
	return getTerminalSize(b.inFd)
}

// Read polls the input descriptor once, EINTR counts as an empty poll
func (b *unixBackend) Read(timeout time.Duration) ([]byte, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return nil, nil
		}
		return nil, fmt.Errorf("poll input: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	if fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 && fds[0].Revents&unix.POLLIN == 0 {
		return nil, fmt.Errorf("input closed")
	}

	rn, err := unix.Read(b.inFd, b.buf)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return nil, nil
		}
		return nil, fmt.Errorf("read input: %w", err)
	}
	if rn == 0 {
		return nil, fmt.Errorf("input closed")
	}

	ret := make([]byte, rn)
	copy(ret, b.buf[:rn])
	return ret, nil
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}
