package pixel

import (
	"errors"
	"testing"
)

func TestNewSurfaceInvalidDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 10}, {10, 0}, {0, 0}, {-1, 10}, {10, -5},
	}
	for _, c := range cases {
		if _, err := New(c.w, c.h, Pixel{}); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", c.w, c.h, err)
		}
	}
}

func TestSurfaceCellDimensions(t *testing.T) {
	cases := []struct{ w, h, cw, ch int }{
		{16, 24, 8, 6},
		{3, 3, 2, 1},
		{1, 1, 1, 1},
		{8, 8, 4, 2},
	}
	for _, c := range cases {
		s, err := New(c.w, c.h, Pixel{})
		if err != nil {
			t.Fatalf("New(%d, %d): %v", c.w, c.h, err)
		}
		if s.CellWidth() != c.cw || s.CellHeight() != c.ch {
			t.Errorf("%dx%d surface: cell grid %dx%d, want %dx%d",
				c.w, c.h, s.CellWidth(), s.CellHeight(), c.cw, c.ch)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s, err := New(5, 7, Pixel{})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 5; x++ {
			p := Pixel{Lit: (x+y)%2 == 0, Fg: uint8(x*10 + y), Bg: uint8(y*10 + x)}
			if err := s.Set(x, y, p); err != nil {
				t.Fatalf("Set(%d, %d): %v", x, y, err)
			}
			got, err := s.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d, %d): %v", x, y, err)
			}
			if got != p {
				t.Errorf("Get(%d, %d) = %+v, want %+v", x, y, got, p)
			}
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	s, err := New(4, 4, Pixel{})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-100, -100},
	}
	for _, c := range cases {
		if _, err := s.Get(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
		if err := s.Set(c.x, c.y, Pixel{Lit: true}); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
	}
	// Failed sets must leave no state behind
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p, _ := s.Get(x, y)
			if p.Lit {
				t.Errorf("Pixel (%d, %d) lit after rejected sets", x, y)
			}
		}
	}
}

func TestCellBitsPacking(t *testing.T) {
	s, err := New(4, 8, Pixel{})
	if err != nil {
		t.Fatal(err)
	}
	// Internal bit order within a cell: bit = y*2 + x
	s.Set(0, 0, Pixel{Lit: true})
	if got := s.CellBits(0, 0); got != 0x01 {
		t.Errorf("CellBits(0,0) = %#02x, want 0x01", got)
	}
	s.Set(1, 1, Pixel{Lit: true})
	if got := s.CellBits(0, 0); got != 0x09 {
		t.Errorf("CellBits(0,0) = %#02x, want 0x09", got)
	}
	// Pixel (2, 5) lives in cell (1, 1), local position (0, 1)
	s.Set(2, 5, Pixel{Lit: true})
	if got := s.CellBits(1, 1); got != 0x04 {
		t.Errorf("CellBits(1,1) = %#02x, want 0x04", got)
	}
	// Unset clears the bit again
	s.Set(1, 1, Pixel{})
	if got := s.CellBits(0, 0); got != 0x01 {
		t.Errorf("CellBits(0,0) after unset = %#02x, want 0x01", got)
	}
	if got := s.CellBits(-1, 0); got != 0 {
		t.Errorf("CellBits out of range = %#02x, want 0", got)
	}
}

func TestClear(t *testing.T) {
	s, err := New(6, 6, Pixel{})
	if err != nil {
		t.Fatal(err)
	}
	s.Clear(Pixel{Lit: true, Fg: 9, Bg: 4})
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			p, _ := s.Get(x, y)
			if !p.Lit || p.Fg != 9 || p.Bg != 4 {
				t.Fatalf("Pixel (%d, %d) = %+v after lit clear", x, y, p)
			}
		}
	}
	s.Clear(Pixel{})
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			p, _ := s.Get(x, y)
			if p.Lit || p.Fg != 0 || p.Bg != 0 {
				t.Fatalf("Pixel (%d, %d) = %+v after unlit clear", x, y, p)
			}
		}
	}
}

func TestClearLeavesPaddingUnlit(t *testing.T) {
	// 3x3 surface occupies 2x1 cells; cell (1, 0) covers only x=2, y=0..2
	s, err := New(3, 3, Pixel{})
	if err != nil {
		t.Fatal(err)
	}
	s.Clear(Pixel{Lit: true})
	want := uint8(0x01 | 0x04 | 0x10) // positions (0,0), (0,1), (0,2)
	if got := s.CellBits(1, 0); got != want {
		t.Errorf("Edge cell bits = %#02x, want %#02x", got, want)
	}
}

func TestFillRectClipping(t *testing.T) {
	s, err := New(8, 8, Pixel{})
	if err != nil {
		t.Fatal(err)
	}
	// Rectangle hanging off the top-left corner: no error, clipped
	s.FillRect(-2, -2, 4, 4, Pixel{Lit: true, Fg: 3})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p, _ := s.Get(x, y)
			wantLit := x < 2 && y < 2
			if p.Lit != wantLit {
				t.Errorf("Pixel (%d, %d) lit = %v, want %v", x, y, p.Lit, wantLit)
			}
		}
	}
	// Fully off-screen rectangle is a no-op
	s.Clear(Pixel{})
	s.FillRect(100, 100, 5, 5, Pixel{Lit: true})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p, _ := s.Get(x, y); p.Lit {
				t.Fatalf("Pixel (%d, %d) lit after off-screen fill", x, y)
			}
		}
	}
}
