// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/weathercode.go
// Summary: WMO weather interpretation code to effect kind mapping.
// Notes: The only place weather semantics touch the animation subsystem.

package board

// KindForCode maps a WMO weather interpretation code (the code family used
// by open-meteo style forecast APIs) to the effect kind that animates it.
// The mapping is total: every integer maps to exactly one kind, with
// unknown or non-animated codes mapping to KindNone.
func KindForCode(code int) EffectKind {
	switch {
	case code == 0:
		return KindClear
	case code >= 1 && code <= 3:
		return KindCloud
	case code == 45 || code == 48: // fog
		return KindCloud
	case code >= 51 && code <= 57: // drizzle
		return KindRain
	case code >= 61 && code <= 67: // rain
		return KindRain
	case code >= 71 && code <= 77: // snowfall, snow grains
		return KindSnow
	case code >= 80 && code <= 82: // rain showers
		return KindRain
	case code == 85 || code == 86: // snow showers
		return KindSnow
	case code >= 95 && code <= 99: // thunderstorm
		return KindStorm
	default:
		return KindNone
	}
}
