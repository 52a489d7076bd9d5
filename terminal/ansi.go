package terminal

import (
	"io"
)

// Pre-allocated session control sequences
var (
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// DECAWM: auto-wrap mode. ?7l keeps the cursor stuck at the right
	// edge, preventing scroll when writing the bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// EmergencyReset writes a best-effort terminal restore sequence.
// Used from panic paths where the session state is unknown.
func EmergencyReset(w io.Writer) {
	w.Write(csiRIS)
	w.Write(csiAltScreenExit)
	w.Write(csiCursorShow)
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)
}
