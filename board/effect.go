// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/effect.go
// Summary: The animated weather effect contract and effect kinds.
// Usage: Concrete effects live in the *_effect.go files of this package.

package board

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// EffectKind is the category of animated visual treatment bound to a card.
type EffectKind int

const (
	KindNone EffectKind = iota
	KindClear
	KindCloud
	KindRain
	KindSnow
	KindStorm
)

func (k EffectKind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindCloud:
		return "cloud"
	case KindRain:
		return "rain"
	case KindSnow:
		return "snow"
	case KindStorm:
		return "storm"
	default:
		return "none"
	}
}

// Effect is a self-contained animated visual bound to one weather kind.
// Between Start and Stop the effect owns a tick goroutine; Stop is
// idempotent and does not return until the goroutine has exited, so no
// tick can fire after Stop. Apply overpaints the card's cell buffer and
// is safe to call from the render thread at any time.
type Effect interface {
	Kind() EffectKind
	Start()
	Stop()
	SetIntensity(intensity float64)
	Resize(w, h int)
	Apply(buffer [][]Cell)
}

// EffectFactory builds a concrete effect for a kind. invalidate is called
// by the effect whenever it has a new frame to show. Returns nil for
// KindNone.
type EffectFactory func(kind EffectKind, invalidate func()) Effect

// NewEffect is the default factory dispatching on kind.
func NewEffect(kind EffectKind, invalidate func()) Effect {
	switch kind {
	case KindClear:
		return NewClearEffect(invalidate)
	case KindCloud:
		return NewCloudEffect(invalidate)
	case KindRain:
		return NewRainEffect(invalidate)
	case KindSnow:
		return NewSnowEffect(invalidate)
	case KindStorm:
		return NewStormEffect(invalidate)
	default:
		return nil
	}
}

// tintFg blends the cell's foreground toward tint, leaving the glyph alone.
func tintFg(cell *Cell, tint colorful.Color, mix float64) {
	if mix <= 0 {
		return
	}
	if mix > 1 {
		mix = 1
	}
	fg, _, _ := cell.Style.Decompose()
	base := toColorful(fg)
	blended := base.BlendRgb(tint, mix).Clamped()
	cell.Style = cell.Style.Foreground(fromColorful(blended))
}

func toColorful(c tcell.Color) colorful.Color {
	if !c.Valid() {
		// Default terminal foreground; assume a light grey.
		return colorful.Color{R: 0.78, G: 0.78, B: 0.78}
	}
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
