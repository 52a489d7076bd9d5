package render

import (
	"github.com/lixenwraith/braillix/pixel"
)

// Encode converts the whole surface into a row-major cell grid of
// CellWidth x CellHeight cells. grid is reused when it has capacity.
//
// Encoding is deterministic: identical surface content always yields an
// identical grid, including tie-breaks in the color vote.
func Encode(s *pixel.Surface, grid []Cell) []Cell {
	cw, ch := s.CellWidth(), s.CellHeight()
	size := cw * ch
	if cap(grid) < size {
		grid = make([]Cell, size)
	} else {
		grid = grid[:size]
	}
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw; cx++ {
			grid[cy*cw+cx] = EncodeCell(s, cx, cy)
		}
	}
	return grid
}

// EncodeCell derives the terminal cell for the 2x4 pixel block at cell
// coordinate (cx, cy).
//
// The glyph pattern is the surface's packed lit bits for the cell. The
// color pair is chosen by vote: each in-bounds sub-pixel contributes
// its displayed color (foreground if lit, background if unlit); the
// most frequent lit-color becomes the cell foreground and the most
// frequent unlit-color the cell background, ties broken by lowest
// palette index. A cell with no lit pixels takes its foreground from
// voting the pixels' foreground attributes instead, and symmetrically
// for the background of a fully lit cell, keeping the result
// deterministic.
func EncodeCell(s *pixel.Surface, cx, cy int) Cell {
	c := Cell{Bits: s.CellBits(cx, cy)}

	// At most 8 samples per vote
	var lit, unlit, allFg, allBg [8]uint8
	var nLit, nUnlit, n int

	for py := 0; py < pixel.CellPixelHeight; py++ {
		for px := 0; px < pixel.CellPixelWidth; px++ {
			p, err := s.Get(cx*pixel.CellPixelWidth+px, cy*pixel.CellPixelHeight+py)
			if err != nil {
				continue // padding position outside logical bounds
			}
			allFg[n] = p.Fg
			allBg[n] = p.Bg
			n++
			if p.Lit {
				lit[nLit] = p.Fg
				nLit++
			} else {
				unlit[nUnlit] = p.Bg
				nUnlit++
			}
		}
	}

	if nLit > 0 {
		c.Fg = vote(lit[:nLit])
	} else {
		c.Fg = vote(allFg[:n])
	}
	if nUnlit > 0 {
		c.Bg = vote(unlit[:nUnlit])
	} else {
		c.Bg = vote(allBg[:n])
	}
	return c
}

// vote returns the most frequent value, lowest value on ties.
// vals must be non-empty.
func vote(vals []uint8) uint8 {
	best := vals[0]
	bestCount := 0
	for _, candidate := range vals {
		count := 0
		for _, v := range vals {
			if v == candidate {
				count++
			}
		}
		if count > bestCount || (count == bestCount && candidate < best) {
			best = candidate
			bestCount = count
		}
	}
	return best
}
