// stream-cycle animates the noise field, space moves to the next output stream and
// buffering mode, q quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/termbuf/app"
	"github.com/lixenwraith/termbuf/config"
	"github.com/lixenwraith/termbuf/core"
	"github.com/lixenwraith/termbuf/logging"
	"github.com/lixenwraith/termbuf/stream"
	"github.com/lixenwraith/termbuf/terminal"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/stream-cycle.log")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, core.StdStreams())
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stream-cycle: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := logging.Setup("stream-cycle", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := config.ParseColorMode(*colorModeFlag)
	if err != nil {
		return err
	}

	newTerm := func(out terminal.Output) terminal.Terminal {
		return terminal.New(os.Stdin, out, colorMode)
	}
	return app.RunCycle(stream.NewOpener(), stream.NewCycle(), newTerm, app.Options{Header: true})
}
