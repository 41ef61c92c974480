// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package board

import "testing"

func TestKindForCodeFamilies(t *testing.T) {
	cases := []struct {
		code int
		want EffectKind
	}{
		{0, KindClear},
		{1, KindCloud},
		{2, KindCloud},
		{3, KindCloud},
		{45, KindCloud},
		{48, KindCloud},
		{51, KindRain},
		{55, KindRain},
		{61, KindRain},
		{65, KindRain},
		{67, KindRain},
		{71, KindSnow},
		{75, KindSnow},
		{77, KindSnow},
		{80, KindRain},
		{82, KindRain},
		{85, KindSnow},
		{86, KindSnow},
		{95, KindStorm},
		{96, KindStorm},
		{99, KindStorm},
	}
	for _, c := range cases {
		if got := KindForCode(c.code); got != c.want {
			t.Fatalf("code %d: kind %v, want %v", c.code, got, c.want)
		}
	}
}

func TestKindForCodeIsTotal(t *testing.T) {
	// Every representable code maps to exactly one kind; unmapped ranges
	// (including negative and out-of-range values) are KindNone.
	for code := -10; code <= 200; code++ {
		kind := KindForCode(code)
		switch kind {
		case KindNone, KindClear, KindCloud, KindRain, KindSnow, KindStorm:
		default:
			t.Fatalf("code %d mapped outside the kind set: %v", code, kind)
		}
	}
	for _, code := range []int{-1, 4, 30, 44, 50, 60, 70, 79, 90, 100, 9999} {
		if got := KindForCode(code); got != KindNone {
			t.Fatalf("code %d: kind %v, want KindNone", code, got)
		}
	}
}
