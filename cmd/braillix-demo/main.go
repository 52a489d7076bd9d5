// Bouncing-sprites demo: hearts drifting around the terminal at pixel
// resolution, each at its own speed and color.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/braillix/palette"
	"github.com/lixenwraith/braillix/pixel"
	"github.com/lixenwraith/braillix/render"
	"github.com/lixenwraith/braillix/terminal"
)

// heartArt is an 8x8 bitmap, 'X' marks lit pixels
var heartArt = []string{
	".XX..XX.",
	"XXXXXXXX",
	"XXXXXXXX",
	".XXXXXX.",
	".XXXXXX.",
	"..XXXX..",
	"...XX...",
	"........",
}

func heartSprite(fg uint8) (*pixel.Sprite, error) {
	h := len(heartArt)
	w := len(heartArt[0])
	pixels := make([]pixel.Pixel, 0, w*h)
	for _, row := range heartArt {
		for _, c := range row {
			pixels = append(pixels, pixel.Pixel{Lit: c == 'X', Fg: fg})
		}
	}
	return pixel.NewSprite(w, h, pixels, nil)
}

type heart struct {
	sprite   *pixel.Sprite
	x, y     int
	right    bool
	down     bool
	slowness int
}

func (h *heart) tick(ticks int, maxX, maxY int) {
	if ticks%h.slowness != 0 {
		return
	}
	if h.x <= 0 {
		h.right = true
	}
	if h.x >= maxX-1 {
		h.right = false
	}
	if h.y <= 0 {
		h.down = true
	}
	if h.y >= maxY-1 {
		h.down = false
	}
	if h.right {
		h.x++
	} else {
		h.x--
	}
	if h.down {
		h.y++
	} else {
		h.y--
	}
}

func main() {
	var (
		count int
		fps   int
	)
	flag.IntVar(&count, "n", 5, "Number of hearts")
	flag.IntVar(&fps, "fps", 60, "Frames per second")
	flag.Parse()
	if fps <= 0 {
		fps = 60
	}

	// Raw mode must not survive a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(count, fps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(count, fps int) error {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	pw, ph := term.PixelSize()
	surface, err := pixel.New(pw, ph, pixel.Pixel{})
	if err != nil {
		return err
	}

	colors := []uint8{
		palette.Cube(5, 0, 0), // red
		palette.Cube(5, 0, 2), // rose
		palette.Cube(5, 2, 0), // orange
		palette.Cube(3, 0, 5), // purple
		palette.Cube(0, 5, 5), // cyan
	}
	span := func(limit int) int {
		if limit <= 0 {
			return 1
		}
		return limit
	}
	hearts := make([]*heart, 0, count)
	for i := 0; i < count; i++ {
		sp, err := heartSprite(colors[i%len(colors)])
		if err != nil {
			return err
		}
		hearts = append(hearts, &heart{
			sprite:   sp,
			x:        (i * 7) % span(pw-sp.Width()),
			y:        (i * 5) % span(ph-sp.Height()),
			right:    i%2 == 0,
			down:     i%3 != 0,
			slowness: 1 + i%3,
		})
	}

	renderer := render.NewRenderer(surface.CellWidth(), surface.CellHeight())
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case ev := <-term.Events():
			if ev.Key == terminal.KeyEsc || (ev.Key == terminal.KeyRune && ev.Rune == 'q') {
				return nil
			}
		case <-term.ResizeChan():
			pw, ph = term.PixelSize()
			surface, err = pixel.New(pw, ph, pixel.Pixel{})
			if err != nil {
				return err
			}
			renderer.ForceFullRedraw()
		case <-ticker.C:
			ticks++
			surface.Clear(pixel.Pixel{})
			for _, h := range hearts {
				h.tick(ticks, pw-h.sprite.Width(), ph-h.sprite.Height())
				pixel.Blit(surface, h.sprite, h.x, h.y, pixel.BlitTransparent)
			}
			if err := renderer.Render(surface, term); err != nil {
				return err
			}
		}
	}
}
