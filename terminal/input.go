package terminal

import (
	"sync"
	"unicode/utf8"
)

// Key identifies the special keys the input reader recognizes
type Key uint8

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
)

// Event is a keyboard input event. Rune is set for KeyRune events.
type Event struct {
	Key  Key
	Rune rune
}

// Direction abstracts the four movement directions
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Direction maps the event to a movement direction using arrow keys
// plus a configurable character set. Returns false for non-movement
// events.
func (e Event) Direction(up, left, down, right rune) (Direction, bool) {
	switch e.Key {
	case KeyUp:
		return DirUp, true
	case KeyLeft:
		return DirLeft, true
	case KeyDown:
		return DirDown, true
	case KeyRight:
		return DirRight, true
	case KeyRune:
		switch e.Rune {
		case up:
			return DirUp, true
		case left:
			return DirLeft, true
		case down:
			return DirDown, true
		case right:
			return DirRight, true
		}
	}
	return 0, false
}

// DirectionWASD maps arrow keys and WASD to their directions
func (e Event) DirectionWASD() (Direction, bool) {
	return e.Direction('w', 'a', 's', 'd')
}

// inputReader parses raw stdin bytes into key events
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Carry-over for byte sequences split across reads
	pending []byte
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	<-r.doneCh
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil || data == nil {
			return
		}
		r.pending = append(r.pending, data...)
		r.drain()
	}
}

// drain parses as many complete events as possible out of pending
func (r *inputReader) drain() {
	for len(r.pending) > 0 {
		ev, n := parseEvent(r.pending)
		if n == 0 {
			// Incomplete sequence, wait for more bytes
			return
		}
		r.pending = r.pending[n:]
		select {
		case r.eventCh <- ev:
		case <-r.stopCh:
			return
		}
	}
}

// parseEvent decodes one event from the front of buf, returning the
// event and the number of bytes consumed; 0 means incomplete input.
// A lone ESC with no continuation bytes in the same chunk is reported
// as KeyEsc: in raw mode, escape sequences arrive whole.
func parseEvent(buf []byte) (Event, int) {
	switch buf[0] {
	case 0x1b:
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return Event{Key: KeyUp}, 3
			case 'B':
				return Event{Key: KeyDown}, 3
			case 'C':
				return Event{Key: KeyRight}, 3
			case 'D':
				return Event{Key: KeyLeft}, 3
			}
			// Unrecognized CSI sequence: skip the introducer and let
			// the remaining bytes parse as runes
			return Event{Key: KeyEsc}, 2
		}
		if len(buf) == 1 || buf[1] != '[' {
			return Event{Key: KeyEsc}, 1
		}
		return Event{}, 0
	case '\r', '\n':
		return Event{Key: KeyEnter}, 1
	case '\t':
		return Event{Key: KeyTab}, 1
	case 0x7f, 0x08:
		return Event{Key: KeyBackspace}, 1
	}

	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError && n == 1 && !utf8.FullRune(buf) {
		return Event{}, 0 // partial UTF-8 at chunk boundary
	}
	return Event{Key: KeyRune, Rune: r}, n
}
