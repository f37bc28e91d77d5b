// Package terminal provides direct ANSI terminal control for the demos.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Cell-diffed frames written straight into a caller supplied Output
//   - Raw stdin input with synchronous, timeout bounded polling
//   - Clean terminal restoration on exit/panic
//
// The Output decides write granularity: an unbuffered Output turns every cursor move,
// SGR sequence and glyph into its own write, a buffered one coalesces them. The
// package bypasses terminfo/termcap entirely and targets xterm-compatible terminals.
package terminal
