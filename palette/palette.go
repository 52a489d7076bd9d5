// Package palette provides the xterm 256-color palette: a fixed, read-only
// table mapping 8-bit indices to RGB triples, plus index math for the
// 6x6x6 color cube and the grayscale ramp.
//
// Layout:
//
//	0-15    system colors
//	16-231  color cube, index = 16 + 36*r + 6*g + b with r,g,b in [0,5]
//	232-255 grayscale ramp, level = 8 + 10*(index-232)
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// The 16 system colors. Terminals are free to theme these; the values
// here are the xterm defaults and only matter for quantization.
var systemColors = [16]RGB{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// table holds the full 256-entry palette, built once at init and never
// mutated afterwards.
var table [256]RGB

// labTable caches the CIE-Lab form of every palette entry for Nearest
var labTable [256]colorful.Color

// cubeIndex maps a 0-255 channel value to the nearest cube level 0-5
var cubeIndex [256]uint8

func init() {
	copy(table[:16], systemColors[:])
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				table[16+36*r+6*g+b] = RGB{cubeValues[r], cubeValues[g], cubeValues[b]}
			}
		}
	}
	for step := 0; step < 24; step++ {
		level := uint8(8 + 10*step)
		table[grayscaleStart+step] = RGB{level, level, level}
	}

	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}

	for i, c := range table {
		labTable[i] = toColorful(c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// At returns the RGB value of a palette index
func At(index uint8) RGB {
	return table[index]
}

// Cube returns the palette index for a color cube coordinate.
// r, g, b must be in [0,5]; out-of-range values are clamped.
func Cube(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// CubeRGB returns the (r, g, b) cube coordinates for a color cube index.
// Index must be in [16,231]. Returns (0,0,0) for out-of-range indices.
func CubeRGB(index uint8) (r, g, b uint8) {
	if index < 16 || index > 231 {
		return 0, 0, 0
	}
	n := index - 16
	r = n / 36
	g = (n % 36) / 6
	b = n % 6
	return r, g, b
}

// Gray returns the palette index for a grayscale step.
// step must be in [0,23] (indices 232-255); larger steps are clamped.
func Gray(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return grayscaleStart + step
}

// Nearest returns the palette index whose color is perceptually closest
// to c, using CIE-Lab distance. Exact cube and grayscale hits short-circuit
// the search; ties resolve to the lowest index.
func Nearest(c RGB) uint8 {
	// Exact cube hit
	ri, gi, bi := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
	if cubeValues[ri] == c.R && cubeValues[gi] == c.G && cubeValues[bi] == c.B {
		return Cube(ri, gi, bi)
	}
	// Exact grayscale hit
	if c.R == c.G && c.G == c.B && c.R >= 8 && (c.R-8)%10 == 0 && (c.R-8)/10 < 24 {
		return Gray((c.R - 8) / 10)
	}

	target := toColorful(c)
	best := uint8(0)
	bestDist := target.DistanceLab(labTable[0])
	for i := 1; i < 256; i++ {
		d := target.DistanceLab(labTable[i])
		if d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}
