package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/termbuf/stream"
	"github.com/lixenwraith/termbuf/terminal"
)

// StreamOpener opens an output for a configuration
type StreamOpener interface {
	Open(cfg stream.Config) (stream.Writer, error)
}

// TerminalFactory binds a terminal session to an opened output
type TerminalFactory func(out terminal.Output) terminal.Terminal

// RunCycle runs the animation against the cycle's current configuration, advancing to
// the next one on every switch request, until quit or the first error.
// opts.Title is replaced by the configuration name for each run.
func RunCycle(opener StreamOpener, cycle *stream.Cycle, newTerm TerminalFactory, opts Options) error {
	for {
		cfg := cycle.Current()
		out, err := opener.Open(cfg)
		if err != nil {
			return err
		}

		opts.Title = cfg.String()
		log.Printf("app: running on %s", cfg)
		state, err := Run(newTerm(out), opts)
		if cerr := out.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", cfg, cerr))
		}
		if err != nil {
			return err
		}

		if state == StateQuitRequested {
			return nil
		}
		cycle.Advance()
	}
}
