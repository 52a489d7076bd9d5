package terminal

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/braillix/pixel"
)

// ResizeEvent represents a terminal resize, dimensions in cells
type ResizeEvent struct {
	Width  int
	Height int
}

// Terminal owns a raw-mode terminal session: alternate screen, hidden
// cursor, auto-wrap disabled, resize watching, and a key input reader.
// It implements io.Writer so it can be passed directly to
// render.Renderer as the output sink.
type Terminal struct {
	backend Backend
	input   *inputReader

	resizeCh chan ResizeEvent

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a terminal session for stdin/stdout. Nothing touches the
// terminal until Init.
func New() *Terminal {
	return &Terminal{
		backend:  newBackend(),
		resizeCh: make(chan ResizeEvent, 1),
	}
}

// Init enters raw mode, switches to the alternate screen, hides the
// cursor, and disables auto-wrap. Idempotent.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.backend.SetResizeHandler(func(w, h int) {
		// Non-blocking send; replace a stale pending event so the
		// latest size always wins
		select {
		case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
			default:
			}
		}
	})

	t.backend.Write(csiAltScreenEnter)
	t.backend.Write(csiCursorHide)
	t.backend.Write(csiAutoWrapOff)
	t.backend.Write(csiClear)

	t.input = newInputReader(t.backend)
	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alt screen so the main
	// buffer gets wrap back
	t.backend.Write(csiAutoWrapOn)
	t.backend.Write(csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

// Size returns the terminal dimensions in cells
func (t *Terminal) Size() (width, height int) {
	return t.backend.Size()
}

// PixelSize returns the drawable area in braille pixels: one terminal
// cell is 2 pixels wide and 4 tall.
func (t *Terminal) PixelSize() (width, height int) {
	w, h := t.backend.Size()
	return w * pixel.CellPixelWidth, h * pixel.CellPixelHeight
}

// ResizeChan returns the channel receiving resize events
func (t *Terminal) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

// Events returns the key event channel. Valid after Init.
func (t *Terminal) Events() <-chan Event {
	return t.input.events()
}

// Write sends raw bytes to the terminal, satisfying io.Writer
func (t *Terminal) Write(p []byte) (int, error) {
	if err := t.backend.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
