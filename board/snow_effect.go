// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/snow_effect.go
// Summary: Drifting snowfall overlay for snow weather codes.

package board

import (
	"math"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var snowTint = colorful.Color{R: 0.92, G: 0.95, B: 1.0}

var snowGlyphs = []rune{'❄', '*', '·'}

type snowflake struct {
	x     float64
	y     float64
	speed float64
	phase float64
	sway  float64
	glyph rune
}

// SnowEffect animates slowly drifting snowflakes. Flakes sway sideways on a
// sine path while they fall.
type SnowEffect struct {
	BaseEffect
	pmu    sync.Mutex
	flakes []snowflake
}

// NewSnowEffect creates a snow effect.
func NewSnowEffect(invalidate func()) *SnowEffect {
	e := &SnowEffect{}
	e.BaseEffect = newBaseEffect(invalidate)
	return e
}

func (e *SnowEffect) Kind() EffectKind { return KindSnow }

func (e *SnowEffect) Start() { e.start(e.step) }
func (e *SnowEffect) Stop()  { e.stop() }

func (e *SnowEffect) step(dt time.Duration) {
	w, h := e.size()
	if w == 0 || h == 0 {
		return
	}
	want := dropCount(w, h, e.Intensity(), 8)

	e.pmu.Lock()
	defer e.pmu.Unlock()
	for len(e.flakes) < want {
		e.flakes = append(e.flakes, e.spawn(w, h))
	}
	if len(e.flakes) > want {
		e.flakes = e.flakes[:want]
	}
	secs := dt.Seconds()
	for i := range e.flakes {
		f := &e.flakes[i]
		f.y += f.speed * secs
		f.phase += secs * 2.0
		if f.y >= float64(h) {
			*f = e.spawn(w, h)
			f.y = 0
		}
	}
}

func (e *SnowEffect) spawn(w, h int) snowflake {
	return snowflake{
		x:     float64(e.rng.Intn(w)),
		y:     -float64(e.rng.Intn(h + 1)),
		speed: 1.5 + e.rng.Float64()*2.5,
		phase: e.rng.Float64() * 2 * math.Pi,
		sway:  0.5 + e.rng.Float64()*1.5,
		glyph: snowGlyphs[e.rng.Intn(len(snowGlyphs))],
	}
}

func (e *SnowEffect) Apply(buffer [][]Cell) {
	if !e.running() {
		return
	}
	mix := 0.5 + 0.5*e.Intensity()

	e.pmu.Lock()
	defer e.pmu.Unlock()
	for _, f := range e.flakes {
		y := int(f.y)
		x := int(f.x + math.Sin(f.phase)*f.sway)
		if y < 0 || y >= len(buffer) || x < 0 || x >= len(buffer[y]) {
			continue
		}
		cell := &buffer[y][x]
		if cell.Ch == ' ' {
			cell.Ch = f.glyph
		}
		tintFg(cell, snowTint, mix)
	}
}
