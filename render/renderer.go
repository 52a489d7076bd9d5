package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/lixenwraith/braillix/pixel"
)

// ErrSinkWrite reports a write failure from the output sink. The
// underlying error is wrapped and reachable through errors.Unwrap.
var ErrSinkWrite = errors.New("sink write failed")

// Renderer emits ANSI escape sequences that bring a terminal's visible
// state in line with the current cell grid, minimizing bytes written.
// It remembers the last grid it emitted and diffs against it, skipping
// unchanged cells, redundant cursor positioning, and redundant SGR
// color sequences. An unchanged frame emits zero bytes.
//
// A Renderer owns its diff state exclusively and must not be used from
// multiple goroutines: interleaved escape sequences corrupt terminal
// state. A Render call runs to completion or reports its sink error.
type Renderer struct {
	width  int
	height int

	grid  []Cell // scratch grid for the current frame
	front []Cell // last emitted cell per position
	known []bool // false until a position has been emitted

	w *bufio.Writer

	// Virtual cursor: tracked belief about the terminal cursor
	cursorX     int
	cursorY     int
	cursorValid bool

	// Last emitted SGR colors for coalescing
	lastFg    uint8
	lastBg    uint8
	lastValid bool

	// Set after a sink failure; the next Render performs a full redraw
	needFull bool
}

// NewRenderer creates a renderer for a grid of width x height cells.
// Rendering a surface with a different cell grid resizes the renderer
// and forces a full redraw.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		w: bufio.NewWriterSize(io.Discard, 65536),
	}
	r.resize(width, height)
	return r
}

// resize reallocates diff state for new dimensions
func (r *Renderer) resize(width, height int) {
	size := width * height
	if cap(r.front) < size {
		r.front = make([]Cell, size)
		r.known = make([]bool, size)
	} else {
		r.front = r.front[:size]
		r.known = r.known[:size]
	}
	r.width = width
	r.height = height
	r.invalidate()
}

// invalidate marks every cell, the cursor, and the SGR state unknown
func (r *Renderer) invalidate() {
	for i := range r.known {
		r.known[i] = false
	}
	r.cursorValid = false
	r.lastValid = false
}

// ForceFullRedraw resets the diff state so the next Render re-emits
// every cell, positioning and color sequences included. Used after a
// resize or suspected terminal corruption.
func (r *Renderer) ForceFullRedraw() {
	r.invalidate()
}

// Render encodes the surface and writes the escape sequences for all
// changed cells to sink. Output is buffered and flushed once per call;
// a failure is returned wrapped in ErrSinkWrite and the next call falls
// back to a full redraw rather than trusting partially flushed state.
func (r *Renderer) Render(s *pixel.Surface, sink io.Writer) error {
	if cw, ch := s.CellWidth(), s.CellHeight(); cw != r.width || ch != r.height {
		r.resize(cw, ch)
	}
	if r.needFull {
		r.invalidate()
		r.needFull = false
	}

	r.grid = Encode(s, r.grid)

	w := r.w
	w.Reset(sink)
	dirty := false

	for y := 0; y < r.height; y++ {
		rowStart := y * r.width
		x := 0

		for x < r.width {
			idx := rowStart + x
			if r.known[idx] && r.grid[idx] == r.front[idx] {
				x++
				continue
			}

			// Position cursor once for this dirty run
			if !r.cursorValid || x != r.cursorX || y != r.cursorY {
				if r.cursorValid && y == r.cursorY && x > r.cursorX {
					writeCursorForward(w, x-r.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				r.cursorX = x
				r.cursorY = y
				r.cursorValid = true
			}

			// Write all contiguous dirty cells, emitting SGR only on change
			for x < r.width {
				cidx := rowStart + x
				c := r.grid[cidx]
				if r.known[cidx] && c == r.front[cidx] {
					break
				}

				r.writeStyle(c.Fg, c.Bg)
				w.WriteRune(c.Rune())

				r.front[cidx] = c
				r.known[cidx] = true
				r.cursorX++
				x++
				dirty = true
			}
		}
	}

	if dirty {
		w.Write(csiSGR0)
		r.lastValid = false
	}

	if err := w.Flush(); err != nil {
		r.needFull = true
		r.cursorValid = false
		r.lastValid = false
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	return nil
}

// writeStyle emits a single combined SGR sequence when colors change
func (r *Renderer) writeStyle(fg, bg uint8) {
	fgChanged := !r.lastValid || fg != r.lastFg
	bgChanged := !r.lastValid || bg != r.lastBg
	if !fgChanged && !bgChanged {
		return
	}

	w := r.w
	switch {
	case fgChanged && bgChanged:
		w.Write(csi)
		w.Write([]byte("38;5;"))
		writeInt(w, int(fg))
		w.WriteByte(';')
		w.Write([]byte("48;5;"))
		writeInt(w, int(bg))
		w.WriteByte('m')
	case fgChanged:
		w.Write(csiFg256)
		writeInt(w, int(fg))
		w.WriteByte('m')
	default:
		w.Write(csiBg256)
		writeInt(w, int(bg))
		w.WriteByte('m')
	}

	r.lastFg = fg
	r.lastBg = bg
	r.lastValid = true
}

// Rasterize returns the surface as plain braille text with newlines,
// no escape sequences or colors. Useful for tests and debug dumps.
func Rasterize(s *pixel.Surface) string {
	cw, ch := s.CellWidth(), s.CellHeight()
	buf := make([]byte, 0, ch*(cw*pixel.BrailleUTF8Bytes+1))
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw; cx++ {
			buf = utf8.AppendRune(buf, pixel.BrailleRune(s.CellBits(cx, cy)))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
