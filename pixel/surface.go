package pixel

import (
	"fmt"
)

// Surface is the logical framebuffer: width x height pixels addressed
// from the top-left corner. Lit bits are stored packed, one byte per
// 2x4 cell, so a cell's glyph pattern can be read in a single load;
// color indices are stored per pixel.
//
// A Surface is fixed-size and single-writer. Concurrent mutation
// requires external synchronization.
type Surface struct {
	width  int
	height int

	cellW int
	cellH int

	// bits holds one byte of lit bits per cell, row-major in cells.
	// Pixel dimensions that are not cell multiples leave padding bits,
	// which stay permanently unlit.
	bits []uint8

	// fg and bg are per-pixel palette index planes, row-major in pixels
	fg []uint8
	bg []uint8
}

// New creates a surface of the given pixel dimensions with every pixel
// set to def. Returns ErrInvalidDimensions when either dimension is
// zero or negative.
func New(width, height int, def Pixel) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	s := &Surface{
		width:  width,
		height: height,
		cellW:  (width + CellPixelWidth - 1) / CellPixelWidth,
		cellH:  (height + CellPixelHeight - 1) / CellPixelHeight,
	}
	s.bits = make([]uint8, s.cellW*s.cellH)
	s.fg = make([]uint8, width*height)
	s.bg = make([]uint8, width*height)
	s.Clear(def)
	return s, nil
}

// Width returns the surface width in pixels
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels
func (s *Surface) Height() int {
	return s.height
}

// CellWidth returns the surface width in terminal cells
func (s *Surface) CellWidth() int {
	return s.cellW
}

// CellHeight returns the surface height in terminal cells
func (s *Surface) CellHeight() int {
	return s.cellH
}

// inBounds returns true if (x, y) is a valid pixel coordinate
func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// cellIndex returns the packed-bits index for a cell coordinate
func (s *Surface) cellIndex(cx, cy int) int {
	return cy*s.cellW + cx
}

// Get returns the pixel at (x, y). Returns ErrOutOfBounds for
// coordinates outside the surface; there is no clamping.
func (s *Surface) Get(x, y int) (Pixel, error) {
	if !s.inBounds(x, y) {
		return Pixel{}, fmt.Errorf("%w: (%d,%d) on %dx%d surface", ErrOutOfBounds, x, y, s.width, s.height)
	}
	return s.at(x, y), nil
}

// Set writes the pixel at (x, y). Returns ErrOutOfBounds for
// coordinates outside the surface; the surface is untouched on error.
func (s *Surface) Set(x, y int, p Pixel) error {
	if !s.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d surface", ErrOutOfBounds, x, y, s.width, s.height)
	}
	s.set(x, y, p)
	return nil
}

// at reads a pixel without bounds checking
func (s *Surface) at(x, y int) Pixel {
	ci := s.cellIndex(x/CellPixelWidth, y/CellPixelHeight)
	bit := bitPosition(x%CellPixelWidth, y%CellPixelHeight)
	pi := y*s.width + x
	return Pixel{
		Lit: s.bits[ci]&bit != 0,
		Fg:  s.fg[pi],
		Bg:  s.bg[pi],
	}
}

// set writes a pixel without bounds checking
func (s *Surface) set(x, y int, p Pixel) {
	ci := s.cellIndex(x/CellPixelWidth, y/CellPixelHeight)
	bit := bitPosition(x%CellPixelWidth, y%CellPixelHeight)
	if p.Lit {
		s.bits[ci] |= bit
	} else {
		s.bits[ci] &^= bit
	}
	pi := y*s.width + x
	s.fg[pi] = p.Fg
	s.bg[pi] = p.Bg
}

// setLit writes only the lit bit without bounds checking
func (s *Surface) setLit(x, y int, lit bool) {
	ci := s.cellIndex(x/CellPixelWidth, y/CellPixelHeight)
	bit := bitPosition(x%CellPixelWidth, y%CellPixelHeight)
	if lit {
		s.bits[ci] |= bit
	} else {
		s.bits[ci] &^= bit
	}
}

// toggleLit flips the lit bit without bounds checking
func (s *Surface) toggleLit(x, y int) {
	ci := s.cellIndex(x/CellPixelWidth, y/CellPixelHeight)
	s.bits[ci] ^= bitPosition(x%CellPixelWidth, y%CellPixelHeight)
}

// Clear sets every pixel to p
func (s *Surface) Clear(p Pixel) {
	if len(s.fg) == 0 {
		return
	}
	// Exponential copy for the color planes
	s.fg[0] = p.Fg
	for filled := 1; filled < len(s.fg); filled *= 2 {
		copy(s.fg[filled:], s.fg[:filled])
	}
	s.bg[0] = p.Bg
	for filled := 1; filled < len(s.bg); filled *= 2 {
		copy(s.bg[filled:], s.bg[:filled])
	}

	if !p.Lit {
		for i := range s.bits {
			s.bits[i] = 0
		}
		return
	}
	// Lit clear must leave padding bits in edge cells unlit
	for cy := 0; cy < s.cellH; cy++ {
		for cx := 0; cx < s.cellW; cx++ {
			s.bits[s.cellIndex(cx, cy)] = s.cellMask(cx, cy)
		}
	}
}

// cellMask returns the bits of a cell that map to pixels inside the
// logical surface bounds. Interior cells are 0xFF; right and bottom
// edge cells lose their padding bits.
func (s *Surface) cellMask(cx, cy int) uint8 {
	w := s.width - cx*CellPixelWidth
	if w > CellPixelWidth {
		w = CellPixelWidth
	}
	h := s.height - cy*CellPixelHeight
	if h > CellPixelHeight {
		h = CellPixelHeight
	}
	var mask uint8
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			mask |= bitPosition(px, py)
		}
	}
	return mask
}

// FillRect sets every pixel of the rectangle to p. Regions outside the
// surface are silently clipped; partial off-screen rectangles are an
// expected case, not an error.
func (s *Surface) FillRect(x, y, w, h int, p Pixel) {
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	if y1 > s.height {
		y1 = s.height
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.set(px, py, p)
		}
	}
}

// CellBits returns the packed lit bits of the cell at (cx, cy) in
// internal bit order, or 0 for out-of-range cell coordinates.
func (s *Surface) CellBits(cx, cy int) uint8 {
	if cx < 0 || cx >= s.cellW || cy < 0 || cy >= s.cellH {
		return 0
	}
	return s.bits[s.cellIndex(cx, cy)]
}
