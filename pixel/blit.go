package pixel

// BlitMode selects the compositing operation applied per source pixel.
// There is no default mode; callers pick one explicitly.
type BlitMode uint8

const (
	// BlitCopy replaces the destination pixel entirely, lit bit and colors
	BlitCopy BlitMode = iota
	// BlitTransparent behaves like BlitCopy but skips unlit source
	// pixels, treating unlit as the transparent key
	BlitTransparent
	// BlitMask copies only the lit bit, preserving destination colors
	BlitMask
	// BlitXor flips the destination lit bit where the source is lit.
	// Blitting the same sprite twice at the same offset is a no-op.
	BlitXor
)

// Blit composites sp onto dst with its top-left corner at (ox, oy).
// Sprite regions falling outside the surface are silently clipped;
// partially on-screen sprites are an expected case. Pixels excluded by
// the sprite's mask are skipped under every mode.
func Blit(dst *Surface, sp *Sprite, ox, oy int, mode BlitMode) {
	// Clip the sprite-space iteration window to the surface
	sx0, sy0 := 0, 0
	sx1, sy1 := sp.width, sp.height
	if ox < 0 {
		sx0 = -ox
	}
	if oy < 0 {
		sy0 = -oy
	}
	if ox+sx1 > dst.width {
		sx1 = dst.width - ox
	}
	if oy+sy1 > dst.height {
		sy1 = dst.height - oy
	}

	for sy := sy0; sy < sy1; sy++ {
		dy := oy + sy
		for sx := sx0; sx < sx1; sx++ {
			if sp.Masked(sx, sy) {
				continue
			}
			src := sp.pixels[sy*sp.width+sx]
			dx := ox + sx
			switch mode {
			case BlitCopy:
				dst.set(dx, dy, src)
			case BlitTransparent:
				if src.Lit {
					dst.set(dx, dy, src)
				}
			case BlitMask:
				dst.setLit(dx, dy, src.Lit)
			case BlitXor:
				if src.Lit {
					dst.toggleLit(dx, dy)
				}
			}
		}
	}
}
