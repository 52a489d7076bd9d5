package pixel

import (
	"fmt"
)

// Sprite is an immutable rectangular bitmap. Sprites carry their own
// pixel data plus an optional transparency mask deciding which pixels
// participate in blitting. Construction copies all inputs; a sprite is
// never mutated afterwards and may be blitted onto many surfaces
// concurrently.
type Sprite struct {
	width  int
	height int
	pixels []Pixel
	mask   []bool // nil means fully opaque
}

// NewSprite builds a sprite from row-major pixel data. pixels must hold
// exactly width*height entries; mask, when non-nil, must match the same
// length or construction fails with ErrDimensionMismatch.
func NewSprite(width, height int, pixels []Pixel, mask []bool) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n := width * height
	if len(pixels) != n {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d sprite", ErrDimensionMismatch, len(pixels), width, height)
	}
	if mask != nil && len(mask) != n {
		return nil, fmt.Errorf("%w: %d mask entries for %dx%d sprite", ErrDimensionMismatch, len(mask), width, height)
	}
	sp := &Sprite{
		width:  width,
		height: height,
		pixels: make([]Pixel, n),
	}
	copy(sp.pixels, pixels)
	if mask != nil {
		sp.mask = make([]bool, n)
		copy(sp.mask, mask)
	}
	return sp, nil
}

// SpriteFromBraille parses braille glyph art into a sprite. Every rune
// must be in the braille block U+2800-U+28FF and all rows must have the
// same length. Lit pixels take fg/bg as their colors; unlit pixels do
// too, so a Transparent blit shows only the glyph shape.
func SpriteFromBraille(rows []string, fg, bg uint8) (*Sprite, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	var cells [][]uint8
	cellW := -1
	for _, row := range rows {
		var line []uint8
		for _, r := range row {
			bits, ok := BitsFromBraille(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not a braille character", ErrDimensionMismatch, r)
			}
			line = append(line, bits)
		}
		if cellW == -1 {
			cellW = len(line)
		} else if len(line) != cellW {
			return nil, fmt.Errorf("%w: ragged rows (%d vs %d cells)", ErrDimensionMismatch, len(line), cellW)
		}
		cells = append(cells, line)
	}
	if cellW == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidDimensions)
	}

	width := cellW * CellPixelWidth
	height := len(cells) * CellPixelHeight
	pixels := make([]Pixel, width*height)
	for cy, line := range cells {
		for cx, bits := range line {
			for py := 0; py < CellPixelHeight; py++ {
				for px := 0; px < CellPixelWidth; px++ {
					x := cx*CellPixelWidth + px
					y := cy*CellPixelHeight + py
					pixels[y*width+x] = Pixel{
						Lit: bits&bitPosition(px, py) != 0,
						Fg:  fg,
						Bg:  bg,
					}
				}
			}
		}
	}
	return &Sprite{width: width, height: height, pixels: pixels}, nil
}

// Width returns the sprite width in pixels
func (sp *Sprite) Width() int {
	return sp.width
}

// Height returns the sprite height in pixels
func (sp *Sprite) Height() int {
	return sp.height
}

// At returns the pixel at (x, y) and whether the coordinate is inside
// the sprite
func (sp *Sprite) At(x, y int) (Pixel, bool) {
	if x < 0 || x >= sp.width || y < 0 || y >= sp.height {
		return Pixel{}, false
	}
	return sp.pixels[y*sp.width+x], true
}

// Masked returns true if the pixel at (x, y) is excluded from blitting
func (sp *Sprite) Masked(x, y int) bool {
	if sp.mask == nil {
		return false
	}
	if x < 0 || x >= sp.width || y < 0 || y >= sp.height {
		return true
	}
	return !sp.mask[y*sp.width+x]
}
