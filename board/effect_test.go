// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package board

import (
	"sync/atomic"
	"testing"
	"time"
)

func allEffects(invalidate func()) []Effect {
	return []Effect{
		NewClearEffect(invalidate),
		NewCloudEffect(invalidate),
		NewRainEffect(invalidate),
		NewSnowEffect(invalidate),
		NewStormEffect(invalidate),
	}
}

func TestEffectKinds(t *testing.T) {
	want := []EffectKind{KindClear, KindCloud, KindRain, KindSnow, KindStorm}
	for i, e := range allEffects(nil) {
		if e.Kind() != want[i] {
			t.Fatalf("effect %d kind = %v, want %v", i, e.Kind(), want[i])
		}
	}
}

func TestEffectStopIdempotent(t *testing.T) {
	for _, e := range allEffects(nil) {
		e.Resize(30, 10)
		e.Stop() // never started
		e.Start()
		e.Stop()
		e.Stop() // already stopped
	}
}

func TestEffectDoubleStartHarmless(t *testing.T) {
	e := NewRainEffect(nil)
	e.Resize(30, 10)
	e.Start()
	e.Start()
	e.Stop()
	// A second goroutine from the double start would panic the closed
	// done channel on Stop; reaching here means there was only one.
}

func TestNoInvalidateAfterStop(t *testing.T) {
	var ticks int32
	e := NewSnowEffect(func() { atomic.AddInt32(&ticks, 1) })
	e.SetIntensity(1)
	e.Resize(40, 12)
	e.Start()

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&ticks) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if atomic.LoadInt32(&ticks) == 0 {
		t.Fatalf("effect never ticked")
	}

	e.Stop()
	settled := atomic.LoadInt32(&ticks)
	time.Sleep(250 * time.Millisecond)
	if got := atomic.LoadInt32(&ticks); got != settled {
		t.Fatalf("effect ticked after Stop returned: %d -> %d", settled, got)
	}
}

func TestEffectPaintsBuffer(t *testing.T) {
	e := NewRainEffect(nil)
	e.SetIntensity(1)
	e.Resize(20, 8)
	e.Start()
	defer e.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		buf := NewBuffer(20, 8)
		e.Apply(buf)
		for y := range buf {
			for x := range buf[y] {
				if buf[y][x].Ch != ' ' {
					return // a drop landed
				}
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("rain effect never painted a drop")
}

func TestStoppedEffectDoesNotPaint(t *testing.T) {
	e := NewRainEffect(nil)
	e.SetIntensity(1)
	e.Resize(20, 8)
	buf := NewBuffer(20, 8)
	e.Apply(buf)
	for y := range buf {
		for x := range buf[y] {
			if buf[y][x].Ch != ' ' {
				t.Fatalf("stopped effect painted the buffer")
			}
		}
	}
}

func TestApplyToleratesMismatchedBuffer(t *testing.T) {
	// The render surface may hand a buffer smaller than the last Resize
	// while a refresh is in flight; painting must stay in bounds.
	for _, e := range allEffects(nil) {
		e.SetIntensity(1)
		e.Resize(40, 20)
		e.Start()
		time.Sleep(150 * time.Millisecond)
		e.Apply(NewBuffer(5, 2))
		e.Apply(NewBuffer(0, 0))
		e.Stop()
	}
}
