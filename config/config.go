// Package config reads demo settings from the environment and flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/termbuf/stream"
	"github.com/lixenwraith/termbuf/terminal"
)

const (
	// DefaultDuration is the profiler run length when DURATION is unset or invalid
	DefaultDuration = 5 * time.Second

	envStream   = "STREAM"
	envDuration = "DURATION"
)

// ProfilerConfig holds the stream profiler settings
type ProfilerConfig struct {
	Target   stream.Target
	Duration time.Duration
}

// DefaultProfilerConfig returns stdout for five seconds
func DefaultProfilerConfig() *ProfilerConfig {
	return &ProfilerConfig{
		Target:   stream.Stdout,
		Duration: DefaultDuration,
	}
}

// LoadProfiler loads profiler configuration from environment variables
func LoadProfiler() *ProfilerConfig {
	cfg := DefaultProfilerConfig()

	// Anything other than stderr means stdout
	if s := os.Getenv(envStream); strings.EqualFold(strings.TrimSpace(s), "stderr") {
		cfg.Target = stream.Stderr
	}

	// Whole seconds, 0 stops after the first frame
	if d := os.Getenv(envDuration); d != "" {
		if val, err := strconv.Atoi(strings.TrimSpace(d)); err == nil && val >= 0 {
			cfg.Duration = time.Duration(val) * time.Second
		}
	}

	return cfg
}

// StreamConfig returns the buffering the process's standard stream has by default:
// stdout is line buffered, stderr is not buffered
func (c *ProfilerConfig) StreamConfig() stream.Config {
	if c.Target == stream.Stderr {
		return stream.Config{Target: stream.Stderr, Buffering: stream.Unbuffered}
	}
	return stream.Config{Target: stream.Stdout, Buffering: stream.LineBuffered}
}

// ParseColorMode resolves the -color flag value, "auto" detects from the environment
func ParseColorMode(s string) (terminal.ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return terminal.DetectColorMode(), nil
	case "256":
		return terminal.ColorMode256, nil
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrueColor, nil
	}
	return terminal.ColorMode256, fmt.Errorf("unknown color mode %q (want auto, truecolor or 256)", s)
}
