package terminal

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// StatusLine builds the escape sequence for a reverse-video status bar
// on the given cell row (0-indexed), clipped and padded to width
// columns. Wide runes that would cross the clip boundary are dropped.
func StatusLine(row, width int, text string) []byte {
	buf := make([]byte, 0, width+32)
	buf = append(buf, csiCursorTo(row)...)
	buf = append(buf, "\x1b[7m"...)

	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		buf = append(buf, string(r)...)
		used += w
	}
	for ; used < width; used++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, csiSGR0...)
	return buf
}

// csiCursorTo returns a cursor position sequence for column 1 of a row
func csiCursorTo(row int) []byte {
	return []byte("\x1b[" + strconv.Itoa(row+1) + ";1H")
}
