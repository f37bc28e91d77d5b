package tui

import "github.com/lixenwraith/termbuf/terminal"

// Truncate truncates string with … suffix if it exceeds maxW display columns
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if terminal.Width.StringWidth(s) <= maxW {
		return s
	}
	return terminal.Width.Truncate(s, maxW, "…")
}

// PadCenter centers string within width display columns
func PadCenter(s string, width int) string {
	return terminal.Width.FillRight(terminal.Width.FillLeft(s, (width+terminal.Width.StringWidth(s))/2), width)
}
