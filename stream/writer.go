package stream

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

const (
	// LineBufferSize is the line writer capacity; a line longer than this is written in pieces
	LineBufferSize = 1024
	// BlockBufferSize is the block writer capacity
	BlockBufferSize = 8192
)

// Writer is an opened output stream
type Writer interface {
	io.Writer
	// Flush pushes buffered bytes to the OS, no-op when unbuffered
	Flush() error
	// Close flushes and releases what the writer owns, never the process's standard stream
	Close() error
}

// fileWriter writes straight to a file
type fileWriter struct {
	f     *os.File
	owned bool
}

// NewUnbuffered wraps f without a buffer, Close closes f only when owned is true
func NewUnbuffered(f *os.File, owned bool) Writer {
	return &fileWriter{f: f, owned: owned}
}

func (w *fileWriter) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *fileWriter) Flush() error {
	return nil
}

func (w *fileWriter) Close() error {
	if !w.owned {
		return nil
	}
	return w.f.Close()
}

// LineWriter flushes its buffer whenever a write contains a newline
// Bytes after the last newline of a write stay buffered
type LineWriter struct {
	buf *bufio.Writer
}

// NewLineWriter creates a line writer over w with LineBufferSize capacity
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{buf: bufio.NewWriterSize(w, LineBufferSize)}
}

func (l *LineWriter) Write(p []byte) (int, error) {
	i := bytes.LastIndexByte(p, '\n')
	if i < 0 {
		return l.buf.Write(p)
	}

	n, err := l.buf.Write(p[:i+1])
	if err != nil {
		return n, err
	}
	if err := l.buf.Flush(); err != nil {
		return n, err
	}
	m, err := l.buf.Write(p[i+1:])
	return n + m, err
}

// Flush writes any held partial line
func (l *LineWriter) Flush() error {
	return l.buf.Flush()
}

// Buffered returns the number of held bytes
func (l *LineWriter) Buffered() int {
	return l.buf.Buffered()
}

// Close flushes, the underlying writer stays open
func (l *LineWriter) Close() error {
	return l.buf.Flush()
}

// BlockWriter holds writes until BlockBufferSize bytes accumulate or Flush is called
type BlockWriter struct {
	*bufio.Writer
}

// NewBlockWriter creates a block writer over w
func NewBlockWriter(w io.Writer) *BlockWriter {
	return &BlockWriter{Writer: bufio.NewWriterSize(w, BlockBufferSize)}
}

// Close flushes, the underlying writer stays open
func (b *BlockWriter) Close() error {
	return b.Flush()
}
