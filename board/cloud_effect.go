// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/cloud_effect.go
// Summary: Drifting cloud bank overlay for overcast and fog weather codes.

package board

import (
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var cloudTint = colorful.Color{R: 0.62, G: 0.66, B: 0.72}

type cloudPuff struct {
	x     float64
	y     int
	width int
	speed float64
}

// CloudEffect drifts translucent cloud banks across the upper rows of the
// card. Clouds wrap around the right edge.
type CloudEffect struct {
	BaseEffect
	pmu   sync.Mutex
	puffs []cloudPuff
}

// NewCloudEffect creates a cloud effect.
func NewCloudEffect(invalidate func()) *CloudEffect {
	e := &CloudEffect{}
	e.BaseEffect = newBaseEffect(invalidate)
	return e
}

func (e *CloudEffect) Kind() EffectKind { return KindCloud }

func (e *CloudEffect) Start() { e.start(e.step) }
func (e *CloudEffect) Stop()  { e.stop() }

func (e *CloudEffect) step(dt time.Duration) {
	w, h := e.size()
	if w == 0 || h == 0 {
		return
	}
	rows := h / 2
	if rows < 1 {
		rows = 1
	}
	want := 1 + int(e.Intensity()*float64(rows))

	e.pmu.Lock()
	defer e.pmu.Unlock()
	for len(e.puffs) < want {
		e.puffs = append(e.puffs, cloudPuff{
			x:     float64(e.rng.Intn(w)),
			y:     e.rng.Intn(rows),
			width: 3 + e.rng.Intn(5),
			speed: 0.8 + e.rng.Float64()*1.2,
		})
	}
	if len(e.puffs) > want {
		e.puffs = e.puffs[:want]
	}
	secs := dt.Seconds()
	for i := range e.puffs {
		p := &e.puffs[i]
		p.x += p.speed * secs
		if p.x > float64(w) {
			p.x = -float64(p.width)
			p.y = e.rng.Intn(rows)
		}
	}
}

func (e *CloudEffect) Apply(buffer [][]Cell) {
	if !e.running() {
		return
	}
	mix := 0.3 + 0.5*e.Intensity()

	e.pmu.Lock()
	defer e.pmu.Unlock()
	for _, p := range e.puffs {
		if p.y < 0 || p.y >= len(buffer) {
			continue
		}
		row := buffer[p.y]
		for i := 0; i < p.width; i++ {
			x := int(p.x) + i
			if x < 0 || x >= len(row) {
				continue
			}
			cell := &row[x]
			if cell.Ch == ' ' {
				if i == 0 || i == p.width-1 {
					cell.Ch = '░'
				} else {
					cell.Ch = '▒'
				}
			}
			tintFg(cell, cloudTint, mix)
		}
	}
}
