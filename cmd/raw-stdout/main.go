// raw-stdout writes through clones of the cached raw stdout descriptor and shows that
// closing a clone leaves stdout usable. With -broken it wraps fd 1 itself and closes it,
// so the second write fails.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/termbuf/core"
	"github.com/lixenwraith/termbuf/logging"
	"github.com/lixenwraith/termbuf/stream"
)

var (
	brokenFlag = flag.Bool("broken", false, "Wrap fd 1 directly and close it after the first line")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/raw-stdout.log")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, os.Stdout)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "raw-stdout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := logging.Setup("raw-stdout", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *brokenFlag {
		return writeOwned()
	}
	return writeCloned(stream.Raw(stream.Stdout))
}

// writeCloned writes each line through its own clone and closes it
func writeCloned(raw *stream.DescriptorCache) error {
	for i := 1; i <= 2; i++ {
		f, err := raw.Clone()
		if err != nil {
			return err
		}
		w := stream.NewUnbuffered(f, true)
		if _, err := fmt.Fprintf(w, "line %d through clone fd %d\n", i, f.Fd()); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		log.Printf("clone %d closed", i)
	}

	_, err := fmt.Fprintln(os.Stdout, "stdout still open after closing both clones")
	return err
}

// writeOwned takes ownership of fd 1 without duplicating it, closing the wrapper closes stdout
func writeOwned() error {
	w := stream.NewUnbuffered(os.NewFile(uintptr(stream.Stdout.Fd()), "stdout"), true)
	if _, err := fmt.Fprintln(w, "first line through fd 1"); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "second line through fd 1"); err != nil {
		fmt.Fprintf(os.Stderr, "second write failed as expected: %v\n", err)
		return nil
	}
	return fmt.Errorf("second write succeeded on a closed descriptor")
}
