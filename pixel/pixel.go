// Package pixel implements the logical framebuffer for braille rendering:
// a surface of sub-pixel-packed lit bits with per-pixel palette colors,
// immutable sprites, and the compositing operations between them.
package pixel

import (
	"errors"
)

var (
	// ErrInvalidDimensions reports a zero or negative surface/sprite size
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds reports strict single-pixel access outside a surface
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrDimensionMismatch reports sprite pixel/mask data that disagrees
	// with the declared width and height
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Pixel is one addressable point on a Surface: a lit bit plus a
// foreground and background palette index. The displayed color is Fg
// when lit, Bg otherwise.
type Pixel struct {
	Lit bool
	Fg  uint8
	Bg  uint8
}
