// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/base_effect.go
// Summary: Common state and tick loop shared by all weather effects.
// Usage: Embedded by the concrete *_effect.go implementations.

package board

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/stratuswx/stratus/internal/anim"
)

// EffectState is the lifecycle state of an effect.
type EffectState int

const (
	StateOff EffectState = iota
	StateRunning
)

const effectTick = 80 * time.Millisecond

// BaseEffect provides the lifecycle and animation plumbing for effects:
// an intensity ramp, a cancellable tick goroutine, and the frame
// invalidation hook. Concrete effects supply a step function that advances
// their particle state once per tick.
type BaseEffect struct {
	mu         sync.Mutex
	state      EffectState
	w, h       int
	cancel     context.CancelFunc
	done       chan struct{}
	intensity  *anim.Ramp
	invalidate func()
	rng        *rand.Rand
}

func newBaseEffect(invalidate func()) BaseEffect {
	return BaseEffect{
		state:      StateOff,
		intensity:  anim.NewRamp(0, 250*time.Millisecond, anim.EaseSmoothstep),
		invalidate: invalidate,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetIntensity retargets the intensity ramp, clamped to [0,1].
func (b *BaseEffect) SetIntensity(intensity float64) {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	b.intensity.Retarget(intensity)
}

// Intensity returns the current eased intensity.
func (b *BaseEffect) Intensity() float64 {
	return b.intensity.Value()
}

// Resize records the card dimensions the effect paints into.
func (b *BaseEffect) Resize(w, h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.w, b.h = w, h
}

func (b *BaseEffect) size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.w, b.h
}

func (b *BaseEffect) running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == StateRunning
}

// start launches the tick goroutine. Starting a running effect is a no-op.
func (b *BaseEffect) start(step func(dt time.Duration)) {
	b.mu.Lock()
	if b.state == StateRunning {
		b.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	b.state = StateRunning
	done := b.done
	b.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(effectTick)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				step(now.Sub(last))
				last = now
				if b.invalidate != nil {
					b.invalidate()
				}
			}
		}
	}()
}

// stop cancels the tick goroutine and waits for it to exit. Idempotent:
// stopping an already-stopped or never-started effect is safe.
func (b *BaseEffect) stop() {
	b.mu.Lock()
	if b.state != StateRunning {
		b.mu.Unlock()
		return
	}
	b.state = StateOff
	cancel := b.cancel
	done := b.done
	b.cancel = nil
	b.done = nil
	b.mu.Unlock()

	cancel()
	<-done
}
