// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package board

import (
	"sync"
	"testing"
)

// stubEffect records lifecycle calls without running timers.
type stubEffect struct {
	mu        sync.Mutex
	kind      EffectKind
	starts    int
	stops     int
	running   bool
	intensity float64
}

func (s *stubEffect) Kind() EffectKind { return s.kind }

func (s *stubEffect) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts++
	s.running = true
}

func (s *stubEffect) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.stops++
		s.running = false
	}
}

func (s *stubEffect) SetIntensity(i float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intensity = i
}

func (s *stubEffect) Resize(w, h int)     {}
func (s *stubEffect) Apply(buf [][]Cell)  {}

// stubFactory hands out stub effects and remembers every one it built.
type stubFactory struct {
	mu    sync.Mutex
	built []*stubEffect
}

func (f *stubFactory) new(kind EffectKind, invalidate func()) Effect {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := &stubEffect{kind: kind}
	f.built = append(f.built, e)
	return e
}

func (f *stubFactory) runningCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.built {
		if e.running {
			n++
		}
	}
	return n
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *stubFactory) {
	t.Helper()
	f := &stubFactory{}
	return NewOrchestrator(f.new, NewEventDispatcher(), nil), f
}

func TestAttachUnknownCodeIsSilentDetach(t *testing.T) {
	o, f := newTestOrchestrator(t)
	card := &Card{ID: "oslo", Width: 30, MeasuredHeight: 10}

	o.Attach(card, 200, 0.5) // no such code
	if card.effect != nil {
		t.Fatalf("unknown code attached an effect")
	}
	if len(f.built) != 0 {
		t.Fatalf("factory was invoked for unknown code")
	}
}

func TestAttachSameKindUpdatesIntensityInPlace(t *testing.T) {
	o, f := newTestOrchestrator(t)
	card := &Card{ID: "oslo", Width: 30, MeasuredHeight: 10}

	o.Attach(card, 61, 0.3) // rain
	o.Attach(card, 63, 0.9) // still rain
	if len(f.built) != 1 {
		t.Fatalf("same-kind reattach recreated the effect: %d built", len(f.built))
	}
	if f.built[0].starts != 1 {
		t.Fatalf("effect started %d times, want 1", f.built[0].starts)
	}
	if f.built[0].intensity != 0.9 {
		t.Fatalf("intensity = %v, want 0.9", f.built[0].intensity)
	}
}

func TestKindChangeStopsOldBeforeStartingNew(t *testing.T) {
	o, f := newTestOrchestrator(t)
	card := &Card{ID: "oslo", Width: 30, MeasuredHeight: 10}

	o.Attach(card, 95, 1.0) // thunderstorm
	o.Attach(card, 61, 0.5) // refreshed to rain
	if len(f.built) != 2 {
		t.Fatalf("expected 2 effects, got %d", len(f.built))
	}
	storm, rain := f.built[0], f.built[1]
	if storm.kind != KindStorm || rain.kind != KindRain {
		t.Fatalf("kinds = %v, %v", storm.kind, rain.kind)
	}
	if storm.stops != 1 || storm.running {
		t.Fatalf("storm effect not fully stopped: stops=%d running=%v", storm.stops, storm.running)
	}
	if rain.starts != 1 || !rain.running {
		t.Fatalf("rain effect not started")
	}
	if f.runningCount() != 1 {
		t.Fatalf("%d effects running on one card", f.runningCount())
	}
}

func TestAttachExclusivityUnderChurn(t *testing.T) {
	o, f := newTestOrchestrator(t)
	card := &Card{ID: "oslo", Width: 30, MeasuredHeight: 10}

	codes := []int{0, 2, 61, 71, 95, 61, 61, 3, 99, 0}
	for _, code := range codes {
		o.Attach(card, code, 0.5)
		if f.runningCount() > 1 {
			t.Fatalf("more than one running effect after code %d", code)
		}
	}
}

func TestDetachIdempotent(t *testing.T) {
	o, f := newTestOrchestrator(t)
	card := &Card{ID: "oslo", Width: 30, MeasuredHeight: 10}

	o.Detach(card) // never attached
	o.Attach(card, 71, 0.4)
	o.Detach(card)
	o.Detach(card)
	if f.built[0].stops != 1 {
		t.Fatalf("stops = %d, want exactly 1", f.built[0].stops)
	}
	if card.effect != nil || card.AttachedKind() != KindNone {
		t.Fatalf("card still holds effect state after detach")
	}
}

func TestKindChangeAnnounced(t *testing.T) {
	f := &stubFactory{}
	d := NewEventDispatcher()
	o := NewOrchestrator(f.new, d, nil)

	var got []AnimationKindPayload
	d.Subscribe(listenerFunc(func(ev Event) {
		if ev.Type == EventAnimationKindChanged {
			got = append(got, ev.Payload.(AnimationKindPayload))
		}
	}))

	card := &Card{ID: "oslo", Width: 30, MeasuredHeight: 10}
	o.Attach(card, 61, 0.5)
	o.Attach(card, 63, 0.5) // same kind, no announcement
	o.Detach(card)

	want := []AnimationKindPayload{
		{CardID: "oslo", Kind: KindRain},
		{CardID: "oslo", Kind: KindNone},
	}
	if len(got) != len(want) {
		t.Fatalf("announcements = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("announcement %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// listenerFunc adapts a func to the Listener interface.
type listenerFunc func(Event)

func (f listenerFunc) OnEvent(ev Event) { f(ev) }
