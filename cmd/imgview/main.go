// imgview renders an image file as braille pixels in the terminal.
// Arrow keys pan when the image is larger than the screen, 'r' forces
// a full redraw, 'q' or Esc quits.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lixenwraith/braillix/pixel"
	"github.com/lixenwraith/braillix/render"
	"github.com/lixenwraith/braillix/terminal"
)

func main() {
	var (
		fit      bool
		noStatus bool
	)
	flag.BoolVar(&fit, "fit", true, "Scale image to fit the terminal")
	flag.BoolVar(&noStatus, "no-status", false, "Hide status bar")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	img, err := loadImage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	if err := run(img, path, fit, !noStatus); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

type viewer struct {
	img    image.Image
	sprite *pixel.Sprite
	fit    bool

	// Viewport top-left corner in sprite pixels
	offX, offY int
}

// rebuild converts the image into a sprite for the current screen size
func (v *viewer) rebuild(pw, ph int) error {
	w, h := pw, ph
	if !v.fit {
		bounds := v.img.Bounds()
		w, h = bounds.Dx(), bounds.Dy()
	}
	sp, err := pixel.SpriteFromImage(v.img, w, h)
	if err != nil {
		return err
	}
	v.sprite = sp
	v.clampOffset(pw, ph)
	return nil
}

func (v *viewer) clampOffset(pw, ph int) {
	maxX := v.sprite.Width() - pw
	maxY := v.sprite.Height() - ph
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if v.offX > maxX {
		v.offX = maxX
	}
	if v.offY > maxY {
		v.offY = maxY
	}
	if v.offX < 0 {
		v.offX = 0
	}
	if v.offY < 0 {
		v.offY = 0
	}
}

func run(img image.Image, path string, fit, status bool) error {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	pw, ph := term.PixelSize()
	v := &viewer{img: img, fit: fit}
	if err := v.rebuild(pw, ph); err != nil {
		return err
	}

	surface, err := pixel.New(pw, ph, pixel.Pixel{})
	if err != nil {
		return err
	}
	renderer := render.NewRenderer(surface.CellWidth(), surface.CellHeight())

	const panStep = 8
	draw := func() error {
		surface.Clear(pixel.Pixel{})
		pixel.Blit(surface, v.sprite, -v.offX, -v.offY, pixel.BlitTransparent)
		if err := renderer.Render(surface, term); err != nil {
			return err
		}
		if status {
			cw, chRows := term.Size()
			bounds := v.img.Bounds()
			line := fmt.Sprintf(" %s  %dx%d  pan %d,%d  [q]uit [r]edraw",
				path, bounds.Dx(), bounds.Dy(), v.offX, v.offY)
			if _, err := term.Write(terminal.StatusLine(chRows-1, cw, line)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case ev := <-term.Events():
			switch {
			case ev.Key == terminal.KeyEsc,
				ev.Key == terminal.KeyRune && ev.Rune == 'q':
				return nil
			case ev.Key == terminal.KeyRune && ev.Rune == 'r':
				renderer.ForceFullRedraw()
			default:
				if dir, ok := ev.DirectionWASD(); ok {
					switch dir {
					case terminal.DirUp:
						v.offY -= panStep
					case terminal.DirDown:
						v.offY += panStep
					case terminal.DirLeft:
						v.offX -= panStep
					case terminal.DirRight:
						v.offX += panStep
					}
					v.clampOffset(pw, ph)
				}
			}
			if err := draw(); err != nil {
				return err
			}
		case <-term.ResizeChan():
			pw, ph = term.PixelSize()
			if err := v.rebuild(pw, ph); err != nil {
				return err
			}
			surface, err = pixel.New(pw, ph, pixel.Pixel{})
			if err != nil {
				return err
			}
			renderer.ForceFullRedraw()
			if err := draw(); err != nil {
				return err
			}
		}
	}
}
