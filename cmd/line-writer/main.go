// line-writer shows a line buffered stdout: text appears only once a newline is written
// or the writer is flushed. Progress notes go to stderr, which is not buffered.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lixenwraith/termbuf/core"
	"github.com/lixenwraith/termbuf/logging"
	"github.com/lixenwraith/termbuf/stream"
)

var (
	pauseFlag = flag.Duration("pause", time.Second, "Pause between steps")
	debugFlag = flag.Bool("debug", false, "Write logs to logs/line-writer.log")
)

type step struct {
	text  string
	note  string
	flush bool
}

var steps = []step{
	{text: "no newline yet...", note: "wrote a partial line, nothing on stdout"},
	{text: " line done\n", note: "wrote a newline, the whole line appeared"},
	{text: "tail without newline", note: "wrote a tail, it is held"},
	{note: "flushed explicitly, the tail appeared", flush: true},
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, os.Stdout)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "line-writer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := logging.Setup("line-writer", *debugFlag); logFile != nil {
		defer logFile.Close()
	}
	return play(os.Stdout, os.Stderr, *pauseFlag)
}

// play writes the steps to out through a line buffer, noting each on notes
func play(out, notes io.Writer, pause time.Duration) error {
	lw := stream.NewLineWriter(out)
	for _, s := range steps {
		var err error
		if s.flush {
			err = lw.Flush()
		} else {
			_, err = lw.Write([]byte(s.text))
		}
		if err != nil {
			return fmt.Errorf("%s: %w", s.note, err)
		}
		fmt.Fprintf(notes, "\n[%s, %d bytes held]\n", s.note, lw.Buffered())
		time.Sleep(pause)
	}
	_, err := fmt.Fprintln(out)
	return err
}
