// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/rain_effect.go
// Summary: Falling rain overlay for rain and drizzle weather codes.

package board

import (
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var rainTint = colorful.Color{R: 0.29, G: 0.56, B: 0.85}

var rainGlyphs = []rune{'│', '╵', '·'}

type raindrop struct {
	x     int
	y     float64
	speed float64
	glyph rune
}

// RainEffect animates falling raindrops over the card buffer. Drop density
// scales with intensity.
type RainEffect struct {
	BaseEffect
	pmu   sync.Mutex
	drops []raindrop
}

// NewRainEffect creates a rain effect.
func NewRainEffect(invalidate func()) *RainEffect {
	e := &RainEffect{}
	e.BaseEffect = newBaseEffect(invalidate)
	return e
}

func (e *RainEffect) Kind() EffectKind { return KindRain }

func (e *RainEffect) Start() { e.start(e.step) }
func (e *RainEffect) Stop()  { e.stop() }

func (e *RainEffect) step(dt time.Duration) {
	w, h := e.size()
	if w == 0 || h == 0 {
		return
	}
	want := dropCount(w, h, e.Intensity(), 6)

	e.pmu.Lock()
	defer e.pmu.Unlock()
	for len(e.drops) < want {
		e.drops = append(e.drops, raindrop{
			x:     e.rng.Intn(w),
			y:     -float64(e.rng.Intn(h + 1)),
			speed: 8.0 + e.rng.Float64()*8.0,
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
			d.speed = 8.0 + e.rng.Float64()*8.0
			d.glyph = rainGlyphs[e.rng.Intn(len(rainGlyphs))]
		}
	}
}

func (e *RainEffect) Apply(buffer [][]Cell) {
	if !e.running() {
		return
	}
	mix := 0.4 + 0.6*e.Intensity()

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
}

// dropCount sizes a particle population for a card area, one particle per
// divisor cells at full intensity.
func dropCount(w, h int, intensity float64, divisor int) int {
	if intensity <= 0 {
		return 0
	}
	n := int(float64(w*h) / float64(divisor) * intensity)
	if n < 1 {
		n = 1
	}
	return n
}
