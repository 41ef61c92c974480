// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/card.go
// Summary: The Card type, one visible weather tile on the board.

package board

import "strings"

// CardData is the per-card payload supplied by the weather collaborator.
// MeasuredHeight is the rendered content height reported by the rendering
// surface; the board never measures content itself.
type CardData struct {
	City           string
	Country        string
	WeatherCode    int
	Intensity      float64
	MeasuredHeight int
}

// Card is one visible weather tile. Position fields are owned exclusively
// by the layout pass; nothing else writes them. The effect fields are owned
// by the orchestrator and always hold either no effect or exactly one
// running effect.
type Card struct {
	ID          string
	City        string
	Country     string
	WeatherCode int
	Intensity   float64

	// Layout inputs. Width is uniform and configuration-driven,
	// MeasuredHeight comes from the rendering surface.
	Width          int
	MeasuredHeight int

	// Layout outputs, written only by the board's layout pass.
	X, Y, Column int

	effect     Effect
	effectKind EffectKind
}

// AttachedKind returns the kind of the currently attached effect, or KindNone.
func (c *Card) AttachedKind() EffectKind {
	if c.effect == nil {
		return KindNone
	}
	return c.effectKind
}

// NormalizeID derives the stable card id from a city name. Ids are
// case-insensitive; duplicate cities collapse to one card.
func NormalizeID(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
