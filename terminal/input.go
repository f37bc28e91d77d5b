package terminal

import (
	"time"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventError
)

// KeyAction distinguishes press from release
// Legacy terminal input only reports presses, release needs a keyboard protocol extension
type KeyAction uint8

const (
	KeyPress KeyAction = iota
	KeyRelease
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Action    KeyAction
	Err       error // For EventError
}

// IsRune reports a press of the printable character r
func (e Event) IsRune(r rune) bool {
	return e.Type == EventKey && e.Action == KeyPress && e.Key == KeyRune && e.Rune == r && e.Modifiers&(ModAlt|ModCtrl) == 0
}

// inputReader turns backend bytes into events on demand, nothing runs between polls
type inputReader struct {
	backend Backend

	// Bytes of an incomplete sequence carried to the next poll
	buf     []byte
	pending []Event
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		buf:     make([]byte, 0, 256),
	}
}

// poll returns a queued event or reads the backend once, waiting at most timeout
func (r *inputReader) poll(timeout time.Duration) (Event, bool) {
	if ev, ok := r.next(); ok {
		return ev, true
	}

	data, err := r.backend.Read(timeout)
	if err != nil {
		return Event{Type: EventError, Err: err}, true
	}

	if len(data) == 0 {
		// Nothing followed a lone ESC within the timeout, it was the key itself
		if len(r.buf) == 1 && r.buf[0] == 0x1b {
			r.buf = r.buf[:0]
			return Event{Type: EventKey, Key: KeyEscape}, true
		}
		return Event{}, false
	}

	r.buf = append(r.buf, data...)
	consumed := r.parseInput(r.buf)
	if consumed >= len(r.buf) {
		r.buf = r.buf[:0]
	} else if consumed > 0 {
		copy(r.buf, r.buf[consumed:])
		r.buf = r.buf[:len(r.buf)-consumed]
	}

	return r.next()
}

func (r *inputReader) next() (Event, bool) {
	if len(r.pending) == 0 {
		return Event{}, false
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, true
}

func (r *inputReader) push(ev Event) {
	r.pending = append(r.pending, ev)
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			r.push(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev.Key != KeyNone {
				r.push(ev)
			}
			i += consumed

		case b < 0x20:
			r.push(parseControl(b))
			i++

		case b == 0x7f:
			r.push(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			if rn != utf8.RuneError {
				r.push(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			}
			i += size
		}
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		if len(data) < 3 {
			return 0, Event{}
		}
		key, mod, _ := lookupSS3(data[2])
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	case data[1] < 0x20:
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}
	// ESC followed by a non-ASCII byte, report ESC and let the rest parse on its own
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI parses "ESC [ params final", unknown but well formed sequences are swallowed
func parseCSI(data []byte) (int, Event) {
	const maxScan = 16

	for end := 2; end < len(data) && end < maxScan; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			key, mod, _ := lookupCSI(data[2 : end+1])
			return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
		}
		if b < 0x20 || b > 0x7e {
			// Not a CSI after all
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}
	if len(data) >= maxScan {
		return maxScan, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{}
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{Type: EventKey, Key: KeyNone}
}
