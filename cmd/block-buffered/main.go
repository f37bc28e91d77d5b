// block-buffered prints a count once unbuffered and once through an 8 KiB block buffer
// and reports how long each took.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/termbuf/core"
	"github.com/lixenwraith/termbuf/logging"
	"github.com/lixenwraith/termbuf/stream"
)

var (
	countFlag = flag.Int("n", 999999, "Count to print")
	debugFlag = flag.Bool("debug", false, "Write logs to logs/block-buffered.log")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, os.Stdout)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "block-buffered: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := logging.Setup("block-buffered", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	opener := stream.NewOpener()
	var results []string
	for _, b := range []stream.Buffering{stream.Unbuffered, stream.BlockBuffered} {
		cfg := stream.Config{Target: stream.Stdout, Buffering: b}
		elapsed, err := count(opener, cfg, *countFlag)
		if err != nil {
			return err
		}
		results = append(results, fmt.Sprintf("%s: %v", cfg, elapsed.Round(time.Microsecond)))
	}

	for _, r := range results {
		fmt.Fprintln(os.Stderr, r)
	}
	return nil
}

// count writes 1..n, one number per write, and returns the time until the last byte left the buffer
func count(opener *stream.Opener, cfg stream.Config, n int) (time.Duration, error) {
	w, err := opener.Open(cfg)
	if err != nil {
		return 0, err
	}
	defer w.Close()

	buf := make([]byte, 0, 16)
	start := time.Now()
	for i := 1; i <= n; i++ {
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return 0, err
		}
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
