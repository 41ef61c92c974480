// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/dispatcher.go
// Summary: Event dispatcher broadcasting board state changes to collaborators.
// Usage: The rendering surface and persistence layer subscribe here.

package board

import "sync"

// EventType defines the type of an event.
type EventType int

const (
	// EventLayoutComputed carries a LayoutState payload after every pass.
	EventLayoutComputed EventType = iota
	// EventAnimationKindChanged carries an AnimationKindPayload whenever a
	// card's attached effect kind changes (including to KindNone).
	EventAnimationKindChanged
	// Card collection events, CardPayload.
	EventCardAdded
	EventCardRemoved
	EventOrderChanged
)

// Event is a message passed from the board to its subscribers.
type Event struct {
	Type    EventType
	Payload interface{}
}

// AnimationKindPayload is the data for EventAnimationKindChanged.
type AnimationKindPayload struct {
	CardID string
	Kind   EffectKind
}

// CardPayload is the data for card collection events.
type CardPayload struct {
	CardID string
}

// Listener is implemented by any component that wants board events.
type Listener interface {
	OnEvent(event Event)
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
// Listeners are invoked synchronously and must not call back into the board.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{listeners: make([]Listener, 0)}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, l := range d.listeners {
		l.OnEvent(event)
	}
}
