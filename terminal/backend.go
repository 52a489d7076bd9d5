// Package terminal manages the terminal session around the rendering
// core: raw mode, alternate screen, resize watching, and key input.
// The rendering pipeline itself only needs an io.Writer; everything in
// this package exists so programs have somewhere correct to point it.
package terminal

import (
	"errors"
)

// ErrNotTerminal reports that stdin is not attached to a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the previous terminal mode
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. A nil slice with nil error means closed.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
