// Package renderer defines how a session is drawn.
package renderer

import (
	"frostfire/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleSequence
	StyleHot
	StyleCold
	StyleStatic
	StyleOutline
	StyleWall
	StyleSubtle
	StylePlayer
)

// Renderer defines the interface for session rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete frame: the map, sequence status and messages
	RenderFrame(s *gameplay.Session)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}
