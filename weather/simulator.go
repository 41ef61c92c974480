// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: weather/simulator.go
// Summary: Deterministic offline weather source. Derives a stable
//          pseudo-climate from the city name and evolves it over time.

package weather

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"time"
)

// simWindow is how long one simulated condition lasts before the
// simulator rolls the next one.
const simWindow = 30 * time.Minute

// Condition pool the simulator cycles through, weighted toward the
// benign end like real observations are.
var simCodes = []int{0, 0, 1, 2, 3, 3, 45, 51, 61, 63, 65, 71, 73, 80, 95}

// Simulator is a Provider producing plausible, fully deterministic
// observations. The same city at the same time always yields the same
// reading, which keeps the demo binary and tests reproducible.
type Simulator struct {
	// Now overrides the clock; nil means time.Now. Tests pin it.
	Now func() time.Time
}

func (s *Simulator) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Observe returns the simulated reading for city at the current time.
func (s *Simulator) Observe(_ context.Context, city string) (Observation, error) {
	now := s.now()
	seed := citySeed(city)
	window := uint64(now.Unix() / int64(simWindow/time.Second))

	code := simCodes[mix(seed, window)%uint64(len(simCodes))]

	// Stable per-city base temperature in roughly [-5, 30) °C with a
	// diurnal swing on top.
	base := float64(seed%35) - 5
	hour := float64(now.Hour()) + float64(now.Minute())/60
	diurnal := 5 * math.Sin((hour-9)/24*2*math.Pi)
	temp := base + diurnal

	wind := float64(mix(seed, window+1)%45) + 3
	humidity := float64(mix(seed, window+2)%60) + 35

	var precip float64
	switch {
	case code >= 95:
		precip = 6 + float64(mix(seed, window+3)%60)/10
	case code >= 71 && code <= 86:
		precip = 1 + float64(mix(seed, window+3)%40)/10
	case code >= 51:
		precip = 0.5 + float64(mix(seed, window+3)%70)/10
	}

	return Observation{
		City:      strings.TrimSpace(city),
		Country:   simCountry(seed),
		Code:      code,
		TempC:     math.Round(temp*10) / 10,
		WindKph:   wind,
		Humidity:  humidity,
		PrecipMM:  precip,
		Timestamp: now,
	}, nil
}

func citySeed(city string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(city))))
	return h.Sum64()
}

// mix folds a window counter into the seed, splitmix64 style.
func mix(seed, n uint64) uint64 {
	z := seed + n*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

var simCountries = []string{
	"Norway", "Portugal", "Japan", "Chile", "Canada", "Kenya", "India", "Iceland",
}

func simCountry(seed uint64) string {
	return simCountries[seed%uint64(len(simCountries))]
}
