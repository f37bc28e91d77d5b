// stream-profiler draws the noise field on one standard stream for a fixed time and
// reports the frame rate it reached.
//
//	STREAM=stdout|stderr   stream to draw on (default stdout)
//	DURATION=<seconds>     run time (default 5, 0 draws a single frame)
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/termbuf/app"
	"github.com/lixenwraith/termbuf/config"
	"github.com/lixenwraith/termbuf/core"
	"github.com/lixenwraith/termbuf/logging"
	"github.com/lixenwraith/termbuf/stream"
	"github.com/lixenwraith/termbuf/terminal"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/stream-profiler.log")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, core.StdStreams())
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stream-profiler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := logging.Setup("stream-profiler", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := config.ParseColorMode(*colorModeFlag)
	if err != nil {
		return err
	}

	cfg := config.LoadProfiler()
	streamCfg := cfg.StreamConfig()
	out, err := stream.NewOpener().Open(streamCfg)
	if err != nil {
		return err
	}
	defer out.Close()

	a := app.New(terminal.New(os.Stdin, out, colorMode), app.Options{
		Title:     streamCfg.String(),
		ExitAfter: cfg.Duration,
		Timed:     true,
	})

	start := time.Now()
	state, err := a.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stderr, "%s: %d frames in %v (%.2f fps), %s\n",
		streamCfg, a.Frame(), elapsed.Round(time.Millisecond), float64(a.Frame())/elapsed.Seconds(), state)
	return nil
}
