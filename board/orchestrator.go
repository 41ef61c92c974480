// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/orchestrator.go
// Summary: Maps weather codes to effects and enforces one effect per card.
// Usage: Owned by the Board; all calls happen under the board lock.

package board

import "log"

// Orchestrator attaches and detaches animated effects on cards. It
// guarantees that a card never runs two effects at once and that a stopped
// effect leaves no timers behind. The orchestrator keeps no per-card state
// of its own; the card's effect fields are the single source of truth, and
// the Board serializes access to them.
type Orchestrator struct {
	factory    EffectFactory
	dispatcher *EventDispatcher
	invalidate func()
}

// NewOrchestrator creates an orchestrator. A nil factory falls back to the
// default effect set.
func NewOrchestrator(factory EffectFactory, dispatcher *EventDispatcher, invalidate func()) *Orchestrator {
	if factory == nil {
		factory = NewEffect
	}
	return &Orchestrator{
		factory:    factory,
		dispatcher: dispatcher,
		invalidate: invalidate,
	}
}

// Attach ensures the card runs the effect for weatherCode at the given
// intensity. Unknown or non-animated codes detach any existing effect and
// are not an error. A same-kind attach only updates intensity in place, so
// no-op refreshes never flicker.
func (o *Orchestrator) Attach(card *Card, weatherCode int, intensity float64) {
	kind := KindForCode(weatherCode)
	if kind == KindNone {
		o.Detach(card)
		return
	}

	if card.effect != nil && card.effectKind == kind {
		card.effect.SetIntensity(intensity)
		return
	}

	// Different kind: the old effect must be fully stopped before the new
	// one starts. Two effects never run concurrently on one card.
	if card.effect != nil {
		card.effect.Stop()
		card.effect = nil
	}

	eff := o.factory(kind, o.invalidate)
	if eff == nil {
		card.effectKind = KindNone
		o.announce(card.ID, KindNone)
		return
	}
	eff.Resize(card.Width, card.MeasuredHeight)
	eff.SetIntensity(intensity)
	card.effect = eff
	card.effectKind = kind
	eff.Start()
	debugf("Orchestrator: card %q now animating %s", card.ID, kind)
	o.announce(card.ID, kind)
}

// Detach stops and releases the card's effect, if any. Idempotent; must be
// called before a card leaves the collection so no orphaned tick goroutine
// survives the card.
func (o *Orchestrator) Detach(card *Card) {
	if card.effect == nil {
		if card.effectKind != KindNone {
			card.effectKind = KindNone
		}
		return
	}
	card.effect.Stop()
	card.effect = nil
	card.effectKind = KindNone
	debugf("Orchestrator: card %q animation detached", card.ID)
	o.announce(card.ID, KindNone)
}

func (o *Orchestrator) announce(cardID string, kind EffectKind) {
	if o.dispatcher == nil {
		return
	}
	o.dispatcher.Broadcast(Event{
		Type:    EventAnimationKindChanged,
		Payload: AnimationKindPayload{CardID: cardID, Kind: kind},
	})
}

// Debug enables debug-level logging for stale-reference no-ops and
// animation transitions.
var Debug bool

func debugf(format string, args ...interface{}) {
	if Debug {
		log.Printf(format, args...)
	}
}
