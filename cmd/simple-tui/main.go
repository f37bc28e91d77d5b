// simple-tui draws a centered, bordered greeting with tcell, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termbuf/core"
	"github.com/lixenwraith/termbuf/logging"
)

var debugFlag = flag.Bool("debug", false, "Write logs to logs/simple-tui.log")

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, os.Stdout)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simple-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := logging.Setup("simple-tui", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	draw(screen, greeting)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, greeting)
		case *tcell.EventKey:
			log.Printf("key %s", ev.Name())
			if quitKey(ev) {
				return nil
			}
		case nil:
			// Screen finalized elsewhere
			return nil
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}
