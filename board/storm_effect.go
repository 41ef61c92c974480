// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/storm_effect.go
// Summary: Heavy rain plus lightning flashes for thunderstorm weather codes.

package board

import (
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/stratuswx/stratus/internal/anim"
)

var flashTint = colorful.Color{R: 1.0, G: 1.0, B: 0.88}

type boltSegment struct {
	x, y  int
	glyph rune
}

// StormEffect layers lightning on top of dense rain: every few seconds a
// bolt strikes, the whole card flashes bright and decays back over a few
// hundred milliseconds.
type StormEffect struct {
	BaseEffect
	pmu       sync.Mutex
	drops     []raindrop
	bolt      []boltSegment
	flash     *anim.Ramp
	nextBolt  time.Duration
	sinceBolt time.Duration
}

// NewStormEffect creates a storm effect.
func NewStormEffect(invalidate func()) *StormEffect {
	e := &StormEffect{
		// Out-quad gives the flash its sharp pop and long decay tail.
		flash: anim.NewRamp(0, 350*time.Millisecond, anim.EaseOutQuad),
	}
	e.BaseEffect = newBaseEffect(invalidate)
	e.nextBolt = 2 * time.Second
	return e
}

func (e *StormEffect) Kind() EffectKind { return KindStorm }

func (e *StormEffect) Start() { e.start(e.step) }
func (e *StormEffect) Stop()  { e.stop() }

func (e *StormEffect) step(dt time.Duration) {
	w, h := e.size()
	if w == 0 || h == 0 {
		return
	}
	// Storm rain is denser than plain rain at the same intensity.
	want := dropCount(w, h, e.Intensity(), 4)

	e.pmu.Lock()
	defer e.pmu.Unlock()
	for len(e.drops) < want {
		e.drops = append(e.drops, raindrop{
			x:     e.rng.Intn(w),
			y:     -float64(e.rng.Intn(h + 1)),
			speed: 12.0 + e.rng.Float64()*10.0,
			glyph: rainGlyphs[e.rng.Intn(len(rainGlyphs))],
		})
	}
	if len(e.drops) > want {
		e.drops = e.drops[:want]
	}
	secs := dt.Seconds()
	for i := range e.drops {
		d := &e.drops[i]
		d.y += d.speed * secs
		if d.y >= float64(h) {
			d.x = e.rng.Intn(w)
			d.y = 0
		}
	}

	e.sinceBolt += dt
	if e.sinceBolt >= e.nextBolt {
		e.strike(w, h)
		e.sinceBolt = 0
		e.nextBolt = 2*time.Second + time.Duration(e.rng.Int63n(int64(4*time.Second)))
	}
}

// strike builds a fresh bolt polyline and kicks the flash ramp. Called with
// pmu held.
func (e *StormEffect) strike(w, h int) {
	e.bolt = e.bolt[:0]
	x := e.rng.Intn(w)
	for y := 0; y < h; y++ {
		glyph := '│'
		switch e.rng.Intn(3) {
		case 0:
			x++
			glyph = '╲'
		case 1:
			x--
			glyph = '╱'
		}
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		e.bolt = append(e.bolt, boltSegment{x: x, y: y, glyph: glyph})
	}
	// Snap to full brightness, then let the ramp ease the falloff.
	e.flash.Jump(1)
	e.flash.Retarget(0)
}

func (e *StormEffect) Apply(buffer [][]Cell) {
	if !e.running() {
		return
	}
	intensity := e.Intensity()
	mix := 0.4 + 0.6*intensity
	flash := e.flash.Value()

	e.pmu.Lock()
	defer e.pmu.Unlock()
	for _, d := range e.drops {
		y := int(d.y)
		if y < 0 || y >= len(buffer) || d.x < 0 || d.x >= len(buffer[y]) {
			continue
		}
		cell := &buffer[y][d.x]
		if cell.Ch == ' ' {
			cell.Ch = d.glyph
		}
		tintFg(cell, rainTint, mix)
	}

	if flash <= 0.01 {
		return
	}
	for _, seg := range e.bolt {
		if seg.y < 0 || seg.y >= len(buffer) || seg.x < 0 || seg.x >= len(buffer[seg.y]) {
			continue
		}
		cell := &buffer[seg.y][seg.x]
		cell.Ch = seg.glyph
		tintFg(cell, flashTint, flash)
	}
	// Whole-card brightening while the flash decays.
	for y := range buffer {
		for x := range buffer[y] {
			tintFg(&buffer[y][x], flashTint, flash*0.35*intensity)
		}
	}
}
