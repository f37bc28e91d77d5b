package terminal

import (
	"bytes"
	"errors"
	"testing"
)

func TestTerminal_InitFini(t *testing.T) {
	b := &fakeBackend{width: 10, height: 4}
	out := &recordingOutput{}
	term := newTerminal(b, out, ColorModeTrueColor)

	if err := term.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	got := out.bytes()
	for _, seq := range [][]byte{csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, csiClear} {
		if !bytes.Contains(got, seq) {
			t.Errorf("Expected %q on init, got %q", seq, got)
		}
	}

	out.reset()
	if err := term.Fini(); err != nil {
		t.Fatalf("fini: %v", err)
	}
	got = out.bytes()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiAutoWrapOn} {
		if !bytes.Contains(got, seq) {
			t.Errorf("Expected %q on fini, got %q", seq, got)
		}
	}

	if err := term.Fini(); err != nil {
		t.Errorf("Expected second fini to be a no-op, got %v", err)
	}
	if b.finiCalls != 1 {
		t.Errorf("Expected backend restored once, got %d", b.finiCalls)
	}
}

func TestTerminal_InitBackendFailure(t *testing.T) {
	b := &fakeBackend{initErr: errors.New("not a terminal")}
	out := &recordingOutput{}
	term := newTerminal(b, out, ColorModeTrueColor)

	if err := term.Init(); !errors.Is(err, b.initErr) {
		t.Fatalf("Expected backend error, got %v", err)
	}
	if len(out.writes) != 0 {
		t.Errorf("Expected nothing written, got %q", out.bytes())
	}
	if err := term.Fini(); err != nil || b.finiCalls != 0 {
		t.Errorf("Expected fini no-op after failed init, got %v (%d calls)", err, b.finiCalls)
	}
}

func TestTerminal_InitOutputFailureRestores(t *testing.T) {
	b := &fakeBackend{width: 10, height: 4}
	out := &recordingOutput{failAfter: 1}
	term := newTerminal(b, out, ColorModeTrueColor)

	err := term.Init()
	if !errors.Is(err, errBrokenOutput) {
		t.Fatalf("Expected output error, got %v", err)
	}
	if b.finiCalls != 1 {
		t.Errorf("Expected raw mode rolled back, got %d backend fini calls", b.finiCalls)
	}
}

func TestTerminal_FlushBeforeInit(t *testing.T) {
	out := &recordingOutput{}
	term := newTerminal(&fakeBackend{width: 2, height: 1}, out, ColorModeTrueColor)

	if err := term.Flush(make([]Cell, 2), 2, 1); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	if len(out.writes) != 0 {
		t.Error("Expected no output before init")
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0} {
		if !bytes.Contains(buf.Bytes(), seq) {
			t.Errorf("Expected %q in reset, got %q", seq, buf.String())
		}
	}
}

func TestColor_RGBTo256(t *testing.T) {
	if got := RGBTo256(RGBBlack); got != 16 {
		t.Errorf("Expected black -> 16, got %d", got)
	}
	if got := RGBTo256(RGBWhite); got != 231 {
		t.Errorf("Expected white -> 231, got %d", got)
	}
	if got := RGBTo256(RGB{128, 128, 128}); got < 232 {
		t.Errorf("Expected mid grey in grey ramp, got %d", got)
	}
}

func TestColor_DetectColorMode(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	if m := DetectColorMode(); m != ColorModeTrueColor {
		t.Errorf("Expected truecolor, got %v", m)
	}
}
