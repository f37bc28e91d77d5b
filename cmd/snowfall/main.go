// snowfall lets greyscale flakes fall down the whole screen, space starts over, q quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/termbuf/app"
	"github.com/lixenwraith/termbuf/config"
	"github.com/lixenwraith/termbuf/core"
	"github.com/lixenwraith/termbuf/field"
	"github.com/lixenwraith/termbuf/halfblock"
	"github.com/lixenwraith/termbuf/logging"
	"github.com/lixenwraith/termbuf/stream"
	"github.com/lixenwraith/termbuf/terminal"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/snowfall.log")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, os.Stdout)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snowfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := logging.Setup("snowfall", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := config.ParseColorMode(*colorModeFlag)
	if err != nil {
		return err
	}

	out, err := stream.NewOpener().Open(stream.Config{Target: stream.Stdout, Buffering: stream.LineBuffered})
	if err != nil {
		return err
	}
	defer out.Close()

	opts := app.Options{
		Profile: field.ProfileSnow,
		Scroll:  halfblock.ScrollVertical,
	}
	for {
		// A fresh run draws a new field
		state, err := app.Run(terminal.New(os.Stdin, out, colorMode), opts)
		if err != nil {
			return err
		}
		if state == app.StateQuitRequested {
			return nil
		}
	}
}
