package pixel

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/braillix/palette"
)

// alphaThreshold is the cutoff above which an image pixel counts as lit
const alphaThreshold = 128

// SpriteFromImage converts a decoded image into a sprite. The image is
// rescaled to width x height pixels with nearest-neighbor sampling,
// without preserving aspect ratio. Pixels with alpha above the
// threshold are lit and take the nearest 256-palette index of their
// color as foreground; transparent pixels stay unlit, so a Transparent
// blit draws only the opaque shape.
func SpriteFromImage(src image.Image, width, height int) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	pixels := make([]Pixel, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := scaled.PixOffset(x, y)
			r, g, b, a := scaled.Pix[i], scaled.Pix[i+1], scaled.Pix[i+2], scaled.Pix[i+3]
			p := Pixel{}
			if a > alphaThreshold {
				p.Lit = true
				p.Fg = palette.Nearest(palette.RGB{R: r, G: g, B: b})
			}
			pixels[y*width+x] = p
		}
	}
	return &Sprite{width: width, height: height, pixels: pixels}, nil
}
