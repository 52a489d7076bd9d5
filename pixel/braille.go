package pixel

// Braille glyph geometry. One terminal cell covers a 2x4 pixel block.
const (
	CellPixelWidth  = 2
	CellPixelHeight = 4
	// BrailleBase is the codepoint of the empty braille character U+2800
	BrailleBase = 0x2800
	// BrailleUTF8Bytes is the encoded size of any braille character;
	// the whole block sits between U+0800 and U+FFFF
	BrailleUTF8Bytes = 3
)

// Packed lit bits use internal row-major order within a cell:
//
//	0 1
//	2 3
//	4 5
//	6 7
//
// The Unicode braille block numbers its dots differently:
//
//	0 3
//	1 4
//	2 5
//	6 7
//
// brailleBit maps an internal bit position to its braille dot bit. The
// table is the single place the dot convention lives; swapping it out
// changes glyph selection without touching surface or blit code.
var brailleBit = [8]uint8{0, 3, 1, 4, 2, 5, 6, 7}

// internalBit is the inverse mapping, braille dot bit to internal bit
var internalBit = [8]uint8{0, 2, 4, 1, 3, 5, 6, 7}

// BrailleOffset converts internal packed bits to the codepoint offset
// from BrailleBase.
func BrailleOffset(bits uint8) uint8 {
	var offset uint8
	for i := uint8(0); i < 8; i++ {
		if bits&(1<<i) != 0 {
			offset |= 1 << brailleBit[i]
		}
	}
	return offset
}

// BrailleRune returns the braille character for internal packed bits
func BrailleRune(bits uint8) rune {
	return rune(BrailleBase + uint32(BrailleOffset(bits)))
}

// BitsFromBraille converts a braille character back to internal packed
// bits. Returns false if r is outside the braille block.
func BitsFromBraille(r rune) (uint8, bool) {
	if r < BrailleBase || r >= BrailleBase+256 {
		return 0, false
	}
	offset := uint8(r - BrailleBase)
	var bits uint8
	for i := uint8(0); i < 8; i++ {
		if offset&(1<<i) != 0 {
			bits |= 1 << internalBit[i]
		}
	}
	return bits, true
}

// bitPosition returns the internal bit for a sub-pixel position within
// a cell. px must be in [0,2), py in [0,4).
func bitPosition(px, py int) uint8 {
	return 1 << uint8(py*CellPixelWidth+px)
}
