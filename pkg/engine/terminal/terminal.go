// Package terminal queries the attached terminal for layout and colour support.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the width and height of the terminal on f.
// Falls back to defaults if f is not a terminal.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether f is attached to a terminal, so colour and
// screen clearing make sense
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
