// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/render.go
// Summary: Card tile rendering and content height measurement.

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/stratuswx/stratus/board"
	"github.com/stratuswx/stratus/weather"
)

// measureCardHeight returns the rendered height of a card in rows. The
// board's layout engine consumes this; cards with precipitation carry
// one extra detail line.
func measureCardHeight(o weather.Observation, haveObs bool) int {
	h := 6 // borders, title, temperature, condition, wind/humidity
	if haveObs && o.PrecipMM > 0 {
		h++
	}
	return h
}

// renderCard draws one card tile into a fresh cell buffer. The caller
// overlays the card's animation effect afterwards.
func renderCard(c board.CardRender, o weather.Observation, haveObs, dragged bool, fg, bg tcell.Color) [][]board.Cell {
	w := c.Width
	h := measureCardHeight(o, haveObs)
	buf := board.NewBuffer(w, h)
	if w < 4 || h < 3 {
		return buf
	}

	border := tcell.StyleDefault.Foreground(fg).Background(bg)
	if dragged {
		border = border.Reverse(true)
	}
	drawBorder(buf, border)

	title := c.City
	if c.Country != "" {
		title += ", " + c.Country
	}
	putLine(buf, 1, title, tcell.StyleDefault.Bold(true))

	if haveObs {
		putLine(buf, 2, fmt.Sprintf("%.1f°C", o.TempC), tcell.StyleDefault)
		putLine(buf, 3, weather.Describe(o.Code), tcell.StyleDefault)
		details := fmt.Sprintf("wind %.0f km/h  hum %.0f%%", o.WindKph, o.Humidity)
		putLine(buf, 4, details, tcell.StyleDefault.Dim(true))
		if o.PrecipMM > 0 {
			putLine(buf, 5, fmt.Sprintf("precip %.1f mm", o.PrecipMM), tcell.StyleDefault.Dim(true))
		}
	} else {
		putLine(buf, 2, "--", tcell.StyleDefault)
		putLine(buf, 3, "waiting for data", tcell.StyleDefault.Dim(true))
	}

	return buf
}

func drawBorder(buf [][]board.Cell, style tcell.Style) {
	h := len(buf)
	w := len(buf[0])
	for x := 0; x < w; x++ {
		buf[0][x] = board.Cell{Ch: '─', Style: style}
		buf[h-1][x] = board.Cell{Ch: '─', Style: style}
	}
	for y := 0; y < h; y++ {
		buf[y][0] = board.Cell{Ch: '│', Style: style}
		buf[y][w-1] = board.Cell{Ch: '│', Style: style}
	}
	buf[0][0] = board.Cell{Ch: '┌', Style: style}
	buf[0][w-1] = board.Cell{Ch: '┐', Style: style}
	buf[h-1][0] = board.Cell{Ch: '└', Style: style}
	buf[h-1][w-1] = board.Cell{Ch: '┘', Style: style}
}

// putLine writes text inside the border at the given row, truncated to
// the card's inner width by display width, not byte count.
func putLine(buf [][]board.Cell, row int, text string, style tcell.Style) {
	if row <= 0 || row >= len(buf)-1 {
		return
	}
	inner := len(buf[row]) - 4
	if inner <= 0 {
		return
	}
	text = runewidth.Truncate(text, inner, "…")

	x := 2
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 || x+rw > 2+inner {
			break
		}
		buf[row][x] = board.Cell{Ch: r, Style: style}
		// Wide runes own their trailing cell.
		for i := 1; i < rw; i++ {
			buf[row][x+i] = board.Cell{Ch: 0, Style: style}
		}
		x += rw
	}
}
