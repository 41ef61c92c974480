// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package board

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestComputeLayoutDeterministic(t *testing.T) {
	heights := []int{300, 150, 450, 90, 720, 330}
	a := ComputeLayout(heights, 700, 320, 24)
	b := ComputeLayout(heights, 700, 320, 24)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("layout not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestComputeLayoutWorkedExample(t *testing.T) {
	// Two columns: card widths 320 with gap 24 in a 700 wide container.
	ls := ComputeLayout([]int{300, 150, 450}, 700, 320, 24)
	if ls.Columns != 2 {
		t.Fatalf("expected 2 columns, got %d", ls.Columns)
	}
	want := []CardPos{
		{Column: 0, X: ls.LeftOffset, Y: 0},
		{Column: 1, X: ls.LeftOffset + 344, Y: 0},
		{Column: 1, X: ls.LeftOffset + 344, Y: 174},
	}
	if !reflect.DeepEqual(ls.Positions, want) {
		t.Fatalf("positions mismatch:\ngot  %+v\nwant %+v", ls.Positions, want)
	}
}

func TestComputeLayoutCentering(t *testing.T) {
	for _, width := range []int{0, 50, 320, 700, 1044, 5000} {
		ls := ComputeLayout([]int{100, 100, 100}, width, 320, 24)
		if ls.LeftOffset < 0 {
			t.Fatalf("width %d: negative left offset %d", width, ls.LeftOffset)
		}
		for i, p := range ls.Positions {
			wantX := ls.LeftOffset + p.Column*(320+24)
			if p.X != wantX {
				t.Fatalf("width %d card %d: x=%d want %d", width, i, p.X, wantX)
			}
		}
	}
}

func TestComputeLayoutEmpty(t *testing.T) {
	ls := ComputeLayout(nil, 700, 320, 24)
	if ls.GridHeight != 0 {
		t.Fatalf("empty grid height = %d, want 0", ls.GridHeight)
	}
	if len(ls.Positions) != 0 {
		t.Fatalf("expected no positions, got %d", len(ls.Positions))
	}
}

func TestComputeLayoutDegenerateWidth(t *testing.T) {
	ls := ComputeLayout([]int{100, 200}, 0, 320, 24)
	if ls.Columns != 1 {
		t.Fatalf("zero-width container should still yield 1 column, got %d", ls.Columns)
	}
	if ls.Positions[1].Y != 100+24 {
		t.Fatalf("second card y = %d, want %d", ls.Positions[1].Y, 124)
	}
}

func TestComputeLayoutShortestColumnWins(t *testing.T) {
	// Adversarial heights: every placement must land on the currently
	// shortest column, ties to the lowest index.
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(30)
		heights := make([]int, n)
		for i := range heights {
			heights[i] = 10 + rng.Intn(500)
		}
		width := 200 + rng.Intn(2000)
		ls := ComputeLayout(heights, width, 320, 24)

		sim := make([]int, ls.Columns)
		for i, p := range ls.Positions {
			shortest := 0
			for c := 1; c < ls.Columns; c++ {
				if sim[c] < sim[shortest] {
					shortest = c
				}
			}
			if p.Column != shortest {
				t.Fatalf("trial %d card %d: column %d, want shortest %d (sim %v)",
					trial, i, p.Column, shortest, sim)
			}
			if p.Y != sim[shortest] {
				t.Fatalf("trial %d card %d: y=%d want %d", trial, i, p.Y, sim[shortest])
			}
			sim[shortest] += heights[i] + 24
		}
	}
}
