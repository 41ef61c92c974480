package board

import "github.com/gdamore/tcell/v2"

// Cell is a single character cell inside a card's content buffer.
// The rendering surface fills buffers with card content; effects
// overpaint them before the buffer is blitted to the terminal.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// NewBuffer allocates a cleared cell buffer of the given size.
func NewBuffer(w, h int) [][]Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	buf := make([][]Cell, h)
	for y := range buf {
		buf[y] = make([]Cell, w)
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}
	return buf
}
