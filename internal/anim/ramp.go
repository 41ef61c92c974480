// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/ramp.go
// Summary: Thread-safe eased value ramp for effect intensity transitions.
// Usage: Embedded by effects to move intensity smoothly between targets.

package anim

import (
	"sync"
	"time"
)

// EasingFunc maps progress [0,1] to an eased value [0,1].
type EasingFunc func(t float64) float64

var (
	// EaseLinear - constant speed.
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseSmoothstep - smooth S-curve, the default for intensity ramps.
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseOutQuad - fast start, decelerating. Used for storm flashes.
	EaseOutQuad EasingFunc = func(t float64) float64 {
		return t * (2.0 - t)
	}
)

// Ramp animates a single float value toward a target over a fixed duration.
// All methods are safe for concurrent use; effects read the value from their
// tick goroutine while the orchestrator retargets it from board operations.
type Ramp struct {
	mu        sync.Mutex
	start     float64
	target    float64
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// NewRamp creates a ramp resting at the given initial value. A nil
// easing falls back to EaseSmoothstep.
func NewRamp(initial float64, duration time.Duration, easing EasingFunc) *Ramp {
	if easing == nil {
		easing = EaseSmoothstep
	}
	return &Ramp{
		start:    initial,
		target:   initial,
		duration: duration,
		easing:   easing,
	}
}

// RetargetAt starts animating from the current value toward target.
// A zero duration ramp jumps immediately.
func (r *Ramp) RetargetAt(target float64, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start = r.valueLocked(now)
	r.target = target
	r.startTime = now
}

// Retarget is RetargetAt with the current wall clock.
func (r *Ramp) Retarget(target float64) {
	r.RetargetAt(target, time.Now())
}

// Jump moves the ramp to value immediately, with no easing.
func (r *Ramp) Jump(value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start = value
	r.target = value
	r.startTime = time.Time{}
}

// Target returns the value the ramp is heading toward.
func (r *Ramp) Target() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

// ValueAt returns the eased value at the given time.
func (r *Ramp) ValueAt(now time.Time) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valueLocked(now)
}

// Value is ValueAt with the current wall clock.
func (r *Ramp) Value() float64 {
	return r.ValueAt(time.Now())
}

// Settled reports whether the ramp has reached its target at the given time.
func (r *Ramp) Settled(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valueLocked(now) == r.target
}

func (r *Ramp) valueLocked(now time.Time) float64 {
	if r.duration <= 0 || !now.Before(r.startTime.Add(r.duration)) {
		return r.target
	}
	if now.Before(r.startTime) {
		return r.start
	}
	progress := float64(now.Sub(r.startTime)) / float64(r.duration)
	easing := r.easing
	if easing == nil {
		easing = EaseSmoothstep
	}
	return r.start + (r.target-r.start)*easing(progress)
}
