package terminal

import (
	"bytes"
	"errors"
	"time"
)

// fakeBackend replays scripted reads
type fakeBackend struct {
	width, height int
	reads         [][]byte
	readErr       error
	initErr       error
	finiErr       error

	initCalls int
	finiCalls int
	timeouts  []time.Duration
}

func (b *fakeBackend) Init() error {
	b.initCalls++
	return b.initErr
}

func (b *fakeBackend) Fini() error {
	b.finiCalls++
	return b.finiErr
}

func (b *fakeBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *fakeBackend) Read(timeout time.Duration) ([]byte, error) {
	b.timeouts = append(b.timeouts, timeout)
	if len(b.reads) == 0 {
		return nil, b.readErr
	}
	d := b.reads[0]
	b.reads = b.reads[1:]
	return d, nil
}

// recordingOutput keeps every write separately
type recordingOutput struct {
	writes  [][]byte
	flushes int

	failAfter int // fail writes once this many succeeded, 0 never fails
}

var errBrokenOutput = errors.New("broken output")

func (o *recordingOutput) Write(p []byte) (int, error) {
	if o.failAfter > 0 && len(o.writes) >= o.failAfter {
		return 0, errBrokenOutput
	}
	o.writes = append(o.writes, bytes.Clone(p))
	return len(p), nil
}

func (o *recordingOutput) Flush() error {
	o.flushes++
	return nil
}

func (o *recordingOutput) bytes() []byte {
	return bytes.Join(o.writes, nil)
}

func (o *recordingOutput) reset() {
	o.writes = nil
	o.flushes = 0
}
