package anim

import (
	"math"
	"testing"
	"time"
)

func TestRampRestsAtInitial(t *testing.T) {
	r := NewRamp(0.5, time.Second, nil)
	if got := r.Value(); got != 0.5 {
		t.Fatalf("fresh ramp value = %v, want 0.5", got)
	}
	if !r.Settled(time.Now()) {
		t.Fatalf("fresh ramp should be settled")
	}
}

func TestRampEasesTowardTarget(t *testing.T) {
	now := time.Now()
	r := NewRamp(0, time.Second, nil)
	r.RetargetAt(1, now)

	if got := r.ValueAt(now); got != 0 {
		t.Fatalf("value at retarget time = %v, want 0", got)
	}
	mid := r.ValueAt(now.Add(500 * time.Millisecond))
	if mid <= 0 || mid >= 1 {
		t.Fatalf("midpoint value = %v, want strictly between 0 and 1", mid)
	}
	// Smoothstep is symmetric, so the midpoint lands at exactly 0.5.
	if math.Abs(mid-0.5) > 1e-9 {
		t.Fatalf("smoothstep midpoint = %v, want 0.5", mid)
	}
	if got := r.ValueAt(now.Add(time.Second)); got != 1 {
		t.Fatalf("value at duration end = %v, want 1", got)
	}
	if got := r.ValueAt(now.Add(time.Hour)); got != 1 {
		t.Fatalf("value long after end = %v, want 1", got)
	}
}

func TestRampRetargetMidFlight(t *testing.T) {
	now := time.Now()
	r := NewRamp(0, time.Second, nil)
	r.RetargetAt(1, now)

	mid := now.Add(500 * time.Millisecond)
	from := r.ValueAt(mid)
	r.RetargetAt(0, mid)

	if got := r.ValueAt(mid); got != from {
		t.Fatalf("retarget moved the current value: %v -> %v", from, got)
	}
	later := r.ValueAt(mid.Add(250 * time.Millisecond))
	if later >= from || later <= 0 {
		t.Fatalf("value after reversal = %v, want between 0 and %v", later, from)
	}
	if got := r.ValueAt(mid.Add(time.Second)); got != 0 {
		t.Fatalf("reversed ramp did not settle at 0: %v", got)
	}
}

func TestRampJumpIsInstant(t *testing.T) {
	r := NewRamp(0, time.Second, nil)
	r.Jump(1)
	if got := r.Value(); got != 1 {
		t.Fatalf("value after Jump = %v, want 1", got)
	}
	// A retarget right after a jump ramps down from the full value.
	now := time.Now()
	r.RetargetAt(0, now)
	if got := r.ValueAt(now); got != 1 {
		t.Fatalf("value at retarget after Jump = %v, want 1", got)
	}
	if got := r.Target(); got != 0 {
		t.Fatalf("target = %v, want 0", got)
	}
}

func TestRampZeroDurationJumps(t *testing.T) {
	r := NewRamp(0, 0, nil)
	r.Retarget(1)
	if got := r.Value(); got != 1 {
		t.Fatalf("zero duration ramp value = %v, want 1", got)
	}
}

func TestRampHonorsEasing(t *testing.T) {
	now := time.Now()
	mid := now.Add(500 * time.Millisecond)

	linear := NewRamp(0, time.Second, EaseLinear)
	linear.RetargetAt(1, now)
	if got := linear.ValueAt(mid); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("linear midpoint = %v, want 0.5", got)
	}

	// Out-quad front-loads the rise: t*(2-t) puts the midpoint at 0.75.
	flash := NewRamp(0, time.Second, EaseOutQuad)
	flash.RetargetAt(1, now)
	if got := flash.ValueAt(mid); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("out-quad midpoint = %v, want 0.75", got)
	}
}

func TestEasingEndpoints(t *testing.T) {
	for name, fn := range map[string]EasingFunc{
		"linear":     EaseLinear,
		"smoothstep": EaseSmoothstep,
		"outquad":    EaseOutQuad,
	} {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}
