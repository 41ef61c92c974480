// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: weather/observation.go
// Summary: Normalized weather observation model and the condition
//          intensity the animation layer consumes.

package weather

import (
	"context"
	"time"

	"github.com/stratuswx/stratus/board"
)

// Observation is one normalized weather reading for a city. Code is a
// WMO weather interpretation code (the open-meteo family).
type Observation struct {
	City      string
	Country   string
	Code      int
	TempC     float64
	WindKph   float64
	Humidity  float64
	PrecipMM  float64
	Timestamp time.Time
}

// Provider abstracts a weather data source.
type Provider interface {
	Observe(ctx context.Context, city string) (Observation, error)
}

// Intensity maps the observation onto the [0,1] animation intensity
// scale: precipitation strength for rain and snow, wind for storms,
// cloud cover class for cloudy codes.
func (o Observation) Intensity() float64 {
	var v float64
	switch board.KindForCode(o.Code) {
	case board.KindRain:
		v = o.PrecipMM / 8.0
	case board.KindSnow:
		v = o.PrecipMM / 5.0
	case board.KindStorm:
		v = 0.5 + o.WindKph/80.0
	case board.KindCloud:
		// 1 → mainly clear … 3 → overcast; fog codes sit at the top.
		switch {
		case o.Code == 1:
			v = 0.3
		case o.Code == 2:
			v = 0.6
		default:
			v = 0.9
		}
	case board.KindClear:
		v = 0.7
	default:
		return 0
	}
	if v < 0.1 {
		v = 0.1
	}
	if v > 1 {
		v = 1
	}
	return v
}

// CardData converts the observation into the board's card payload.
func (o Observation) CardData() board.CardData {
	return board.CardData{
		City:        o.City,
		Country:     o.Country,
		WeatherCode: o.Code,
		Intensity:   o.Intensity(),
	}
}
