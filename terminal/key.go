package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4

	// Ctrl+letter, KeyCtrlA + (b - 0x01) for control byte b
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// csiKey maps the bytes between "ESC [" and the final byte inclusive
type csiKey struct {
	key Key
	mod Modifier
}

var csiSequences = map[string]csiKey{
	"A":  {KeyUp, ModNone},
	"B":  {KeyDown, ModNone},
	"C":  {KeyRight, ModNone},
	"D":  {KeyLeft, ModNone},
	"Z":  {KeyBacktab, ModShift},
	"H":  {KeyHome, ModNone},
	"F":  {KeyEnd, ModNone},
	"1~": {KeyHome, ModNone},
	"2~": {KeyInsert, ModNone},
	"3~": {KeyDelete, ModNone},
	"4~": {KeyEnd, ModNone},
	"5~": {KeyPageUp, ModNone},
	"6~": {KeyPageDown, ModNone},

	"1;2A": {KeyUp, ModShift},
	"1;2B": {KeyDown, ModShift},
	"1;2C": {KeyRight, ModShift},
	"1;2D": {KeyLeft, ModShift},
	"1;5A": {KeyUp, ModCtrl},
	"1;5B": {KeyDown, ModCtrl},
	"1;5C": {KeyRight, ModCtrl},
	"1;5D": {KeyLeft, ModCtrl},

	"11~": {KeyF1, ModNone},
	"12~": {KeyF2, ModNone},
	"13~": {KeyF3, ModNone},
	"14~": {KeyF4, ModNone},
}

// ss3Sequences maps the byte after "ESC O"
var ss3Sequences = map[byte]csiKey{
	'A': {KeyUp, ModNone},
	'B': {KeyDown, ModNone},
	'C': {KeyRight, ModNone},
	'D': {KeyLeft, ModNone},
	'H': {KeyHome, ModNone},
	'F': {KeyEnd, ModNone},
	'P': {KeyF1, ModNone},
	'Q': {KeyF2, ModNone},
	'R': {KeyF3, ModNone},
	'S': {KeyF4, ModNone},
}

func lookupCSI(seq []byte) (Key, Modifier, bool) {
	k, ok := csiSequences[string(seq)]
	return k.key, k.mod, ok
}

func lookupSS3(b byte) (Key, Modifier, bool) {
	k, ok := ss3Sequences[b]
	return k.key, k.mod, ok
}
