package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/braillix/pixel"
)

// failWriter fails every write
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func countBraille(s string) int {
	n := 0
	for _, r := range s {
		if r >= pixel.BrailleBase && r < pixel.BrailleBase+256 {
			n++
		}
	}
	return n
}

func newTestRenderer(t *testing.T, s *pixel.Surface) *Renderer {
	t.Helper()
	return NewRenderer(s.CellWidth(), s.CellHeight())
}

func TestRenderFirstFrame(t *testing.T) {
	s := mustSurface(t, 2, 4, pixel.Pixel{})
	r := newTestRenderer(t, s)

	var buf bytes.Buffer
	if err := r.Render(s, &buf); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[1;1H\x1b[38;5;0;48;5;0m⠀\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("First frame = %q, want %q", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := mustSurface(t, 16, 16, pixel.Pixel{Fg: 3, Bg: 8})
	s.FillRect(2, 2, 10, 10, pixel.Pixel{Lit: true, Fg: 5, Bg: 8})
	r := newTestRenderer(t, s)

	var first bytes.Buffer
	if err := r.Render(s, &first); err != nil {
		t.Fatal(err)
	}
	if first.Len() == 0 {
		t.Fatal("First render emitted nothing")
	}

	var second bytes.Buffer
	if err := r.Render(s, &second); err != nil {
		t.Fatal(err)
	}
	if second.Len() != 0 {
		t.Errorf("Unchanged re-render emitted %d bytes: %q", second.Len(), second.String())
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	s := mustSurface(t, 8, 4, pixel.Pixel{})
	r := newTestRenderer(t, s)

	var buf bytes.Buffer
	if err := r.Render(s, &buf); err != nil {
		t.Fatal(err)
	}
	if got := countBraille(buf.String()); got != 4 {
		t.Fatalf("Full frame emitted %d glyphs, want 4", got)
	}

	// One pixel changes: exactly one cell re-emitted
	s.Set(0, 0, pixel.Pixel{Lit: true})
	buf.Reset()
	if err := r.Render(s, &buf); err != nil {
		t.Fatal(err)
	}
	if got := countBraille(buf.String()); got != 1 {
		t.Errorf("Partial frame emitted %d glyphs, want 1: %q", got, buf.String())
	}
}

func TestRenderCursorForward(t *testing.T) {
	s := mustSurface(t, 8, 4, pixel.Pixel{})
	r := newTestRenderer(t, s)

	var buf bytes.Buffer
	if err := r.Render(s, &buf); err != nil {
		t.Fatal(err)
	}

	// Dirty cells 0 and 2 on the same row: the gap is crossed with a
	// cursor-forward sequence instead of absolute positioning
	s.Set(0, 0, pixel.Pixel{Lit: true})
	s.Set(4, 0, pixel.Pixel{Lit: true})
	buf.Reset()
	if err := r.Render(s, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[C") {
		t.Errorf("Expected cursor-forward sequence in %q", out)
	}
	if strings.Count(out, "H") != 1 {
		t.Errorf("Expected a single absolute position in %q", out)
	}
}

func TestRenderColorCoalescing(t *testing.T) {
	// A row of cells sharing one color pair needs exactly one SGR
	s := mustSurface(t, 8, 4, pixel.Pixel{})
	s.Clear(pixel.Pixel{Lit: true, Fg: 9, Bg: 4})
	r := newTestRenderer(t, s)

	var buf bytes.Buffer
	if err := r.Render(s, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if got := strings.Count(out, "38;5;9"); got != 1 {
		t.Errorf("Foreground SGR emitted %d times, want 1: %q", got, out)
	}
	if got := strings.Count(out, "48;5;4"); got != 1 {
		t.Errorf("Background SGR emitted %d times, want 1: %q", got, out)
	}
}

func TestForceFullRedraw(t *testing.T) {
	s := mustSurface(t, 8, 8, pixel.Pixel{})
	r := newTestRenderer(t, s)

	var first bytes.Buffer
	if err := r.Render(s, &first); err != nil {
		t.Fatal(err)
	}

	r.ForceFullRedraw()
	var again bytes.Buffer
	if err := r.Render(s, &again); err != nil {
		t.Fatal(err)
	}
	if again.String() != first.String() {
		t.Errorf("Forced redraw = %q, want identical to first frame %q", again.String(), first.String())
	}
	if got := countBraille(again.String()); got != s.CellWidth()*s.CellHeight() {
		t.Errorf("Forced redraw emitted %d glyphs, want %d", got, s.CellWidth()*s.CellHeight())
	}
}

func TestRenderSinkFailure(t *testing.T) {
	s := mustSurface(t, 4, 4, pixel.Pixel{})
	r := newTestRenderer(t, s)

	err := r.Render(s, failWriter{})
	if !errors.Is(err, ErrSinkWrite) {
		t.Fatalf("Render to failing sink error = %v, want ErrSinkWrite", err)
	}

	// Recovery: the next call performs a full redraw
	var buf bytes.Buffer
	if err := r.Render(s, &buf); err != nil {
		t.Fatal(err)
	}
	if got := countBraille(buf.String()); got != s.CellWidth()*s.CellHeight() {
		t.Errorf("Post-failure render emitted %d glyphs, want full %d", got, s.CellWidth()*s.CellHeight())
	}
}

func TestRenderResizesWithSurface(t *testing.T) {
	small := mustSurface(t, 2, 4, pixel.Pixel{})
	r := newTestRenderer(t, small)

	var buf bytes.Buffer
	if err := r.Render(small, &buf); err != nil {
		t.Fatal(err)
	}

	big := mustSurface(t, 4, 8, pixel.Pixel{})
	buf.Reset()
	if err := r.Render(big, &buf); err != nil {
		t.Fatal(err)
	}
	if got := countBraille(buf.String()); got != 4 {
		t.Errorf("Render after resize emitted %d glyphs, want 4", got)
	}
}
