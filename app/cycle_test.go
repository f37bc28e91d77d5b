package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/termbuf/stream"
	"github.com/lixenwraith/termbuf/terminal"
)

type fakeWriter struct {
	bytes.Buffer
	closed int
}

func (w *fakeWriter) Flush() error { return nil }

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

type fakeOpener struct {
	opened  []stream.Config
	writers []*fakeWriter
	failOn  int // 1-based open that fails, 0 never
	err     error
}

func (o *fakeOpener) Open(cfg stream.Config) (stream.Writer, error) {
	o.opened = append(o.opened, cfg)
	if o.failOn == len(o.opened) {
		return nil, o.err
	}
	w := &fakeWriter{}
	o.writers = append(o.writers, w)
	return w, nil
}

// scriptedFactory hands out one fake terminal per run with the given scripts
func scriptedFactory(scripts ...[]polled) (TerminalFactory, *[]*fakeTerminal) {
	var made []*fakeTerminal
	return func(out terminal.Output) terminal.Terminal {
		ft := &fakeTerminal{width: 12, height: 4}
		if len(made) < len(scripts) {
			ft.script = scripts[len(made)]
		}
		made = append(made, ft)
		return ft
	}, &made
}

func TestRunCycle_SwitchesThenQuits(t *testing.T) {
	opener := &fakeOpener{}
	cycle := stream.NewCycle()
	factory, made := scriptedFactory(
		[]polled{key(' ')},
		[]polled{noEvent, key(' ')},
		[]polled{key('q')},
	)

	if err := RunCycle(opener, cycle, factory, testOptions()); err != nil {
		t.Fatalf("cycle: %v", err)
	}

	want := stream.Configs[:3]
	if len(opener.opened) != len(want) {
		t.Fatalf("Expected %d opens, got %d", len(want), len(opener.opened))
	}
	for i, cfg := range want {
		if opener.opened[i] != cfg {
			t.Errorf("Open %d: expected %v, got %v", i, cfg, opener.opened[i])
		}
	}
	for i, w := range opener.writers {
		if w.closed != 1 {
			t.Errorf("Expected writer %d closed once, got %d", i, w.closed)
		}
	}
	for i, ft := range *made {
		if ft.finiCalls != 1 {
			t.Errorf("Expected session %d torn down, got %d fini calls", i, ft.finiCalls)
		}
	}
	if cycle.Current() != stream.Configs[2] {
		t.Errorf("Expected cycle to stay on the quitting config, got %v", cycle.Current())
	}
}

func TestRunCycle_WrapsAround(t *testing.T) {
	opener := &fakeOpener{}
	scripts := make([][]polled, len(stream.Configs)+1)
	for i := range stream.Configs {
		scripts[i] = []polled{key(' ')}
	}
	scripts[len(stream.Configs)] = []polled{key('q')}
	factory, _ := scriptedFactory(scripts...)

	if err := RunCycle(opener, stream.NewCycle(), factory, testOptions()); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if last := opener.opened[len(opener.opened)-1]; last != stream.Configs[0] {
		t.Errorf("Expected wrap to %v, got %v", stream.Configs[0], last)
	}
}

func TestRunCycle_OpenFailureStops(t *testing.T) {
	dupErr := errors.New("too many open files")
	opener := &fakeOpener{failOn: 2, err: dupErr}
	factory, made := scriptedFactory([]polled{key(' ')})

	err := RunCycle(opener, stream.NewCycle(), factory, testOptions())
	if !errors.Is(err, dupErr) {
		t.Errorf("Expected open error, got %v", err)
	}
	if len(*made) != 1 {
		t.Errorf("Expected no session after failed open, got %d sessions", len(*made))
	}
}

func TestRunCycle_TitleNamesConfig(t *testing.T) {
	opener := &fakeOpener{}
	var ft *fakeTerminal
	factory := func(out terminal.Output) terminal.Terminal {
		ft = &fakeTerminal{width: 40, height: 4, script: []polled{key('q')}}
		return ft
	}

	if err := RunCycle(opener, stream.NewCycle(), factory, testOptions()); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	want := stream.Configs[0].String()
	if header := ft.row(0); !strings.Contains(header, want) {
		t.Errorf("Expected %q in header, got %q", want, header)
	}
}
