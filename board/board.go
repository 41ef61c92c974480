// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/board.go
// Summary: The card lifecycle manager orchestrating layout, animation and
//          drag reordering for one dashboard surface.

package board

import (
	"log"
	"sync"
)

// PreferenceProvider supplies user preferences the board consults before
// starting animations. The call may block (it models an asynchronous
// settings read), so the board never invokes it under its lock.
type PreferenceProvider interface {
	AnimationsEnabled() bool
}

// PersistFunc receives the card id order whenever it changes: once per
// add/remove and once per finalized drag drop.
type PersistFunc func(cardIDsInOrder []string)

// Options configures a Board.
type Options struct {
	// ContainerWidth is the initial width of the layout container.
	ContainerWidth int
	// CardWidth is the uniform card width; zero falls back to 34 cells.
	CardWidth int
	// Gap between cards; negative falls back to 2 cells.
	Gap int
	// Factory overrides effect construction (tests use stubs).
	Factory EffectFactory
	// Prefs gates animation attachment; nil means always enabled.
	Prefs PreferenceProvider
	// Persist receives order changes; nil disables persistence.
	Persist PersistFunc
	// Invalidate is called whenever a running effect has a new frame.
	Invalidate func()
}

// Board owns the collection of visible cards and mediates every mutation:
// creation, refresh, removal, drag reordering, resizing. It is the only
// component that writes card positions or order; the drag controller's
// closures are the single sanctioned bypass of add/remove. All methods are
// safe for concurrent use.
type Board struct {
	mu         sync.Mutex
	cards      map[string]*Card
	order      []string
	width      int
	cardWidth  int
	gap        int
	layout     LayoutState
	closed     bool
	dispatcher *EventDispatcher
	orch       *Orchestrator
	drag       *DragReorderController
	sched      *RelayoutScheduler
	prefs      PreferenceProvider
	persist    PersistFunc
}

// New creates an empty board.
func New(opts Options) *Board {
	if opts.CardWidth <= 0 {
		opts.CardWidth = 34
	}
	if opts.Gap < 0 {
		opts.Gap = 2
	}
	b := &Board{
		cards:      make(map[string]*Card),
		order:      make([]string, 0),
		width:      opts.ContainerWidth,
		cardWidth:  opts.CardWidth,
		gap:        opts.Gap,
		dispatcher: NewEventDispatcher(),
		prefs:      opts.Prefs,
		persist:    opts.Persist,
	}
	b.orch = NewOrchestrator(opts.Factory, b.dispatcher, opts.Invalidate)
	b.drag = newDragReorderController(dragOps{
		indexOf:    b.indexOfLocked,
		moveNextTo: b.moveNextToLocked,
		dropped:    b.dragDroppedLocked,
	})
	b.sched = NewRelayoutScheduler(b.relayoutNow)
	return b
}

// Dispatcher exposes the board's event stream for collaborators.
func (b *Board) Dispatcher() *EventDispatcher { return b.dispatcher }

// CardWidth returns the uniform configured card width.
func (b *Board) CardWidth() int {
	return b.cardWidth
}

// AddCard creates a card for the given data, or returns the existing card
// when the normalized city name is already present. New cards append to the
// order, or prepend when prepend is set (geolocation results land first).
func (b *Board) AddCard(data CardData, prepend bool) *Card {
	id := NormalizeID(data.City)
	if id == "" {
		return nil
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	if existing, ok := b.cards[id]; ok {
		b.mu.Unlock()
		debugf("Board: addCard %q ignored, card exists", id)
		return existing
	}

	card := &Card{
		ID:             id,
		City:           data.City,
		Country:        data.Country,
		WeatherCode:    data.WeatherCode,
		Intensity:      data.Intensity,
		Width:          b.cardWidth,
		MeasuredHeight: data.MeasuredHeight,
	}
	b.cards[id] = card
	if prepend {
		b.order = append([]string{id}, b.order...)
	} else {
		b.order = append(b.order, id)
	}
	b.persistLocked()
	b.dispatcher.Broadcast(Event{Type: EventCardAdded, Payload: CardPayload{CardID: id}})
	b.mu.Unlock()

	b.sched.Schedule(UrgencyRefresh)
	b.requestAnimation(card)
	return card
}

// RefreshCard mutates an existing card in place with fresh weather data and
// re-evaluates its animation; the effect is only recreated when the kind
// actually changed. Unknown ids are silently ignored.
func (b *Board) RefreshCard(id string, data CardData) {
	id = NormalizeID(id)

	b.mu.Lock()
	card, ok := b.cards[id]
	if !ok || b.closed {
		b.mu.Unlock()
		debugf("Board: refreshCard %q ignored, no such card", id)
		return
	}
	// Empty name fields mean "keep": refresh sources key off the id and
	// may not know the display spelling.
	if data.City != "" {
		card.City = data.City
	}
	if data.Country != "" {
		card.Country = data.Country
	}
	card.WeatherCode = data.WeatherCode
	card.Intensity = data.Intensity
	if data.MeasuredHeight > 0 {
		card.MeasuredHeight = data.MeasuredHeight
	}
	b.mu.Unlock()

	b.sched.Schedule(UrgencyRefresh)
	b.requestAnimation(card)
}

// RemoveCard detaches the card's animation synchronously and evicts it.
// Unknown ids are silently ignored.
func (b *Board) RemoveCard(id string) {
	id = NormalizeID(id)

	b.mu.Lock()
	card, ok := b.cards[id]
	if !ok {
		b.mu.Unlock()
		debugf("Board: removeCard %q ignored, no such card", id)
		return
	}
	b.orch.Detach(card)
	delete(b.cards, id)
	if idx := b.indexOfLocked(id); idx >= 0 {
		b.order = append(b.order[:idx], b.order[idx+1:]...)
	}
	b.persistLocked()
	b.dispatcher.Broadcast(Event{Type: EventCardRemoved, Payload: CardPayload{CardID: id}})
	b.mu.Unlock()

	b.sched.Schedule(UrgencyRefresh)
}

// SetMeasuredHeight records the rendered content height reported by the
// rendering surface and schedules a relayout when it changed.
func (b *Board) SetMeasuredHeight(id string, height int) {
	id = NormalizeID(id)

	b.mu.Lock()
	card, ok := b.cards[id]
	if !ok || height <= 0 || card.MeasuredHeight == height {
		b.mu.Unlock()
		return
	}
	card.MeasuredHeight = height
	if card.effect != nil {
		card.effect.Resize(card.Width, height)
	}
	b.mu.Unlock()

	b.sched.Schedule(UrgencyRefresh)
}

// Resize updates the container width (window resize trigger).
func (b *Board) Resize(width int) {
	b.mu.Lock()
	if b.width == width {
		b.mu.Unlock()
		return
	}
	b.width = width
	b.mu.Unlock()

	b.sched.Schedule(UrgencyResize)
}

// BeginDrag starts dragging the given card.
func (b *Board) BeginDrag(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag.beginDrag(NormalizeID(id))
}

// DragOver reorders the collection live as the pointer crosses targetID.
func (b *Board) DragOver(targetID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag.dragOver(NormalizeID(targetID))
}

// Drop finalizes a drag: persist the order and re-layout near-immediately.
func (b *Board) Drop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag.drop()
}

// CancelDrag force-resets the drag state machine; the optimistic reorder
// already applied stands.
func (b *Board) CancelDrag() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag.cancel()
}

// Dragging returns the id of the card being dragged, or "".
func (b *Board) Dragging() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drag.DraggedID()
}

// Layout returns the most recently computed layout state.
func (b *Board) Layout() LayoutState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.layout
}

// CardRender is a consistent snapshot of one card for the render pass. The
// Effect reference may be nil; when set its Apply is safe to call without
// the board lock.
type CardRender struct {
	ID          string
	City        string
	Country     string
	WeatherCode int
	X, Y        int
	Width       int
	Height      int
	Effect      Effect
	Animating   bool
}

// Snapshot returns the cards in display order together with the current
// layout, for one render pass.
func (b *Board) Snapshot() (LayoutState, []CardRender) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]CardRender, 0, len(b.order))
	for _, id := range b.order {
		c, ok := b.cards[id]
		if !ok {
			continue
		}
		out = append(out, CardRender{
			ID:          c.ID,
			City:        c.City,
			Country:     c.Country,
			WeatherCode: c.WeatherCode,
			X:           c.X,
			Y:           c.Y,
			Width:       c.Width,
			Height:      c.MeasuredHeight,
			Effect:      c.effect,
			Animating:   c.effect != nil,
		})
	}
	return b.layout, out
}

// Len returns the number of visible cards.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}

// Order returns a copy of the current card id order.
func (b *Board) Order() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.order...)
}

// Close tears the board down: every animation is detached and the pending
// relayout is cancelled. No effect goroutine survives Close.
func (b *Board) Close() {
	b.sched.Stop()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.drag.cancel()
	for _, c := range b.cards {
		b.orch.Detach(c)
	}
	log.Printf("Board: closed with %d cards", len(b.cards))
}

// RelayoutNow forces a synchronous layout pass, bypassing the debounce.
// The rendering surface calls this once at startup.
func (b *Board) RelayoutNow() {
	b.relayoutNow()
}

// requestAnimation kicks off the asynchronous preference read that
// precedes any animation start. The read may complete after the card was
// removed or refreshed; the liveness check below makes late completions
// harmless (they must never start an effect for a dead card).
func (b *Board) requestAnimation(card *Card) {
	go func() {
		enabled := true
		if b.prefs != nil {
			enabled = b.prefs.AnimationsEnabled()
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		if b.closed {
			return
		}
		live, ok := b.cards[card.ID]
		if !ok || live != card {
			debugf("Board: discarding stale animation request for %q", card.ID)
			return
		}
		if !enabled {
			b.orch.Detach(card)
			return
		}
		b.orch.Attach(card, card.WeatherCode, card.Intensity)
	}()
}

func (b *Board) relayoutNow() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	heights := make([]int, 0, len(b.order))
	for _, id := range b.order {
		heights = append(heights, b.cards[id].MeasuredHeight)
	}
	ls := ComputeLayout(heights, b.width, b.cardWidth, b.gap)
	for i, id := range b.order {
		c := b.cards[id]
		c.Column = ls.Positions[i].Column
		c.X = ls.Positions[i].X
		c.Y = ls.Positions[i].Y
	}
	b.layout = ls
	b.dispatcher.Broadcast(Event{Type: EventLayoutComputed, Payload: ls})
}

func (b *Board) indexOfLocked(id string) int {
	for i, o := range b.order {
		if o == id {
			return i
		}
	}
	return -1
}

// moveNextToLocked re-slots id next to targetID. Only the drag controller
// calls this.
func (b *Board) moveNextToLocked(id, targetID string, after bool) {
	cur := b.indexOfLocked(id)
	if cur < 0 {
		return
	}
	b.order = append(b.order[:cur], b.order[cur+1:]...)
	target := b.indexOfLocked(targetID)
	if target < 0 {
		// Target vanished mid-drag; put the card back where it was.
		b.order = append(b.order[:cur], append([]string{id}, b.order[cur:]...)...)
		return
	}
	insert := target
	if after {
		insert = target + 1
	}
	b.order = append(b.order[:insert], append([]string{id}, b.order[insert:]...)...)
	b.dispatcher.Broadcast(Event{Type: EventOrderChanged, Payload: CardPayload{CardID: id}})
}

func (b *Board) dragDroppedLocked() {
	b.persistLocked()
	b.sched.Schedule(UrgencyDrop)
}

func (b *Board) persistLocked() {
	if b.persist == nil {
		return
	}
	b.persist(append([]string(nil), b.order...))
}
