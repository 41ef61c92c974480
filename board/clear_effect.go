// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/clear_effect.go
// Summary: Sun shimmer overlay for clear-sky weather codes.

package board

import (
	"math"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var sunTint = colorful.Color{R: 1.0, G: 0.83, B: 0.35}

// ClearEffect pulses a warm shimmer from the top-right corner of the card,
// with occasional sparkle glyphs. The gentlest of the five effects.
type ClearEffect struct {
	BaseEffect
	pmu      sync.Mutex
	phase    float64
	sparkles []struct{ x, y int }
}

// NewClearEffect creates a clear-sky effect.
func NewClearEffect(invalidate func()) *ClearEffect {
	e := &ClearEffect{}
	e.BaseEffect = newBaseEffect(invalidate)
	return e
}

func (e *ClearEffect) Kind() EffectKind { return KindClear }

func (e *ClearEffect) Start() { e.start(e.step) }
func (e *ClearEffect) Stop()  { e.stop() }

func (e *ClearEffect) step(dt time.Duration) {
	w, h := e.size()
	if w == 0 || h == 0 {
		return
	}

	e.pmu.Lock()
	defer e.pmu.Unlock()
	e.phase = math.Mod(e.phase+dt.Seconds()*1.2, 2*math.Pi)

	// A couple of slowly relocating sparkles near the top.
	want := 1 + int(e.Intensity()*2)
	for len(e.sparkles) < want {
		e.sparkles = append(e.sparkles, struct{ x, y int }{e.rng.Intn(w), e.rng.Intn(maxInt(1, h/2))})
	}
	if len(e.sparkles) > want {
		e.sparkles = e.sparkles[:want]
	}
	if e.rng.Float64() < 0.15 {
		i := e.rng.Intn(len(e.sparkles))
		e.sparkles[i] = struct{ x, y int }{e.rng.Intn(w), e.rng.Intn(maxInt(1, h/2))}
	}
}

func (e *ClearEffect) Apply(buffer [][]Cell) {
	if !e.running() {
		return
	}
	e.pmu.Lock()
	phase := e.phase
	sparkles := append([]struct{ x, y int }(nil), e.sparkles...)
	e.pmu.Unlock()

	pulse := (math.Sin(phase) + 1) / 2
	mix := (0.2 + 0.4*pulse) * e.Intensity()
	if len(buffer) == 0 {
		return
	}

	// The sun sits in the top-right corner; the shimmer falls off with
	// distance from it.
	w := len(buffer[0])
	for y := 0; y < len(buffer) && y < 3; y++ {
		row := buffer[y]
		for x := len(row) - 1; x >= 0 && x > len(row)-1-6; x-- {
			dist := float64((len(row)-1-x)+y) / 8.0
			tintFg(&row[x], sunTint, mix*(1.0-dist))
		}
	}
	if w > 0 {
		cell := &buffer[0][w-1]
		if cell.Ch == ' ' {
			cell.Ch = '☀'
		}
		tintFg(cell, sunTint, 0.5+0.5*mix)
	}
	for _, s := range sparkles {
		if s.y < 0 || s.y >= len(buffer) || s.x < 0 || s.x >= len(buffer[s.y]) {
			continue
		}
		cell := &buffer[s.y][s.x]
		if cell.Ch == ' ' {
			cell.Ch = '·'
		}
		tintFg(cell, sunTint, mix)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
