// Package render turns a pixel surface into terminal output: it groups
// the surface into 2x4 braille cells, picks one foreground/background
// palette pair per cell, and emits the minimal ANSI escape stream that
// brings the terminal in line with the cell grid.
package render

import (
	"github.com/lixenwraith/braillix/pixel"
)

// Cell is one terminal character cell derived from a 2x4 pixel block:
// the packed lit-bit pattern plus a single foreground and background
// palette index. Terminal cells carry exactly one color pair, so cells
// where sub-pixels disagree on color are a lossy reduction (see Encode).
type Cell struct {
	Bits uint8
	Fg   uint8
	Bg   uint8
}

// Rune returns the braille character displaying this cell's bit pattern
func (c Cell) Rune() rune {
	return pixel.BrailleRune(c.Bits)
}
