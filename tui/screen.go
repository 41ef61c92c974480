// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/screen.go
// Summary: Terminal rendering surface. Owns the tcell lifecycle, the
//          frame loop, and mouse-driven card drag wiring.

package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/stratuswx/stratus/board"
	"github.com/stratuswx/stratus/weather"
)

const keyQuit = tcell.KeyCtrlQ

// topOffset reserves the status bar row above the card grid.
const topOffset = 1

// Screen manages the terminal display using tcell as the backend. It
// renders the board's snapshot every frame and translates input events
// into board operations; it never mutates layout or order itself.
type Screen struct {
	tcellScreen tcell.Screen
	board       *board.Board

	quit        chan struct{}
	refreshChan chan bool
	closeOnce   sync.Once

	defaultFg tcell.Color
	defaultBg tcell.Color

	obsMu sync.Mutex
	obs   map[string]weather.Observation

	mouseDown bool
}

// NewScreen initializes the terminal with tcell.
func NewScreen() (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tcellScreen.Init(); err != nil {
		return nil, err
	}

	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	tcellScreen.SetStyle(defStyle)
	tcellScreen.HideCursor()
	tcellScreen.EnableMouse()

	defaultFg, defaultBg, _ := queryDefaultColors()

	return &Screen{
		tcellScreen: tcellScreen,
		quit:        make(chan struct{}),
		refreshChan: make(chan bool, 1),
		defaultFg:   defaultFg,
		defaultBg:   defaultBg,
		obs:         make(map[string]weather.Observation),
	}, nil
}

// SetBoard attaches the board this screen renders. Must be called
// before Run.
func (s *Screen) SetBoard(b *board.Board) {
	s.board = b
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	return s.tcellScreen.Size()
}

// GridWidth returns the width available to the card grid.
func (s *Screen) GridWidth() int {
	w, _ := s.tcellScreen.Size()
	return w
}

// RequestRefresh signals the frame loop to redraw. Safe from any
// goroutine; effect ticks call it for every new frame.
func (s *Screen) RequestRefresh() {
	select {
	case s.refreshChan <- true:
	default:
	}
}

// UpdateObservation records fresh display data for a city's card.
func (s *Screen) UpdateObservation(o weather.Observation) {
	id := board.NormalizeID(o.City)
	if id == "" {
		return
	}
	s.obsMu.Lock()
	s.obs[id] = o
	s.obsMu.Unlock()
	s.RequestRefresh()
}

// Run starts the event and rendering loop and blocks until Close.
func (s *Screen) Run() error {
	eventChan := make(chan tcell.Event, 10)
	go func() {
		for {
			select {
			case <-s.quit:
				return
			default:
				eventChan <- s.tcellScreen.PollEvent()
			}
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	s.board.Resize(s.GridWidth())
	s.board.RelayoutNow()

	dirty := true
	for {
		select {
		case ev := <-eventChan:
			s.handleEvent(ev)
			dirty = true
		case <-s.refreshChan:
			dirty = true
		case <-ticker.C:
			if dirty {
				s.draw()
				dirty = false
			}
		case <-s.quit:
			return nil
		}
	}
}

// Close shuts down tcell and unblocks Run.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.tcellScreen.Fini()
	})
}

func (s *Screen) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == keyQuit, ev.Rune() == 'q':
			s.Close()
		case ev.Key() == tcell.KeyEscape:
			s.board.CancelDrag()
		}

	case *tcell.EventMouse:
		s.handleMouse(ev)

	case *tcell.EventResize:
		s.tcellScreen.Sync()
		s.board.Resize(s.GridWidth())
	}
}

// handleMouse drives the drag state machine: press on a card begins a
// drag, motion over another card reorders live, release drops.
func (s *Screen) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		if id := s.cardAt(x, y); id != "" {
			s.board.BeginDrag(id)
		}
	case pressed && s.mouseDown:
		dragged := s.board.Dragging()
		if dragged == "" {
			return
		}
		if id := s.cardAt(x, y); id != "" && id != dragged {
			s.board.DragOver(id)
		}
	case !pressed && s.mouseDown:
		s.mouseDown = false
		s.board.Drop()
	}
}

// cardAt hit-tests the grid and returns the card id under the pointer.
func (s *Screen) cardAt(x, y int) string {
	_, cards := s.board.Snapshot()
	y -= topOffset
	for _, c := range cards {
		if c.Height <= 0 {
			continue
		}
		if x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height {
			return c.ID
		}
	}
	return ""
}

// draw renders one full frame: status bar, then every card at its
// layout position with its effect overlay applied.
func (s *Screen) draw() {
	s.tcellScreen.Clear()
	s.drawStatusBar()

	_, cards := s.board.Snapshot()
	dragged := s.board.Dragging()

	s.obsMu.Lock()
	obs := make(map[string]weather.Observation, len(s.obs))
	for k, v := range s.obs {
		obs[k] = v
	}
	s.obsMu.Unlock()

	for _, c := range cards {
		o, ok := obs[c.ID]
		h := measureCardHeight(o, ok)
		if h != c.Height {
			// The board debounces the relayout; this frame still draws
			// at the stale position.
			s.board.SetMeasuredHeight(c.ID, h)
		}

		buf := renderCard(c, o, ok, c.ID == dragged, s.defaultFg, s.defaultBg)
		if c.Effect != nil {
			c.Effect.Apply(buf)
		}
		s.blit(c.X, c.Y+topOffset, buf)
	}

	s.tcellScreen.Show()
}

func (s *Screen) drawStatusBar() {
	w, _ := s.tcellScreen.Size()
	style := tcell.StyleDefault.Foreground(s.defaultBg).Background(s.defaultFg)
	text := " stratus   drag cards to reorder, q quits "
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		s.tcellScreen.SetContent(x, 0, ch, nil, style)
	}
}

func (s *Screen) blit(x, y int, buf [][]board.Cell) {
	for r, row := range buf {
		for c, cell := range row {
			s.tcellScreen.SetContent(x+c, y+r, cell.Ch, nil, cell.Style)
		}
	}
}
