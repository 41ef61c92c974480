// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/layout.go
// Summary: Pure masonry layout engine for the card grid.
// Usage: Called by the board after any mutation; never holds state.

package board

// CardPos is the computed placement for one card, in traversal order.
type CardPos struct {
	Column int
	X, Y   int
}

// LayoutState is the full output of one layout pass. It is recomputed from
// scratch every pass rather than patched incrementally, which keeps arbitrary
// insert/remove/reorder sequences from accumulating drift.
type LayoutState struct {
	Columns       int
	LeftOffset    int
	ColumnHeights []int
	GridHeight    int
	Positions     []CardPos
}

// ComputeLayout packs cards into a centered multi-column grid using greedy
// shortest-column-first placement. The engine has no notion of card identity,
// only order: reordering the input is how drag-and-drop changes the grid.
//
// The function is pure: identical inputs always yield identical output.
func ComputeLayout(heights []int, containerWidth, cardWidth, gap int) LayoutState {
	if cardWidth < 1 {
		cardWidth = 1
	}
	if gap < 0 {
		gap = 0
	}

	columns := (containerWidth + gap) / (cardWidth + gap)
	if columns < 1 {
		columns = 1
	}

	gridWidth := columns*cardWidth + (columns-1)*gap
	leftOffset := (containerWidth - gridWidth) / 2
	if leftOffset < 0 {
		leftOffset = 0
	}

	ls := LayoutState{
		Columns:       columns,
		LeftOffset:    leftOffset,
		ColumnHeights: make([]int, columns),
		Positions:     make([]CardPos, 0, len(heights)),
	}

	for _, h := range heights {
		// Shortest column wins; ties go to the lowest index.
		col := 0
		for i := 1; i < columns; i++ {
			if ls.ColumnHeights[i] < ls.ColumnHeights[col] {
				col = i
			}
		}
		ls.Positions = append(ls.Positions, CardPos{
			Column: col,
			X:      leftOffset + col*(cardWidth+gap),
			Y:      ls.ColumnHeights[col],
		})
		ls.ColumnHeights[col] += h + gap
	}

	for _, ch := range ls.ColumnHeights {
		if ch > ls.GridHeight {
			ls.GridHeight = ch
		}
	}
	if len(heights) == 0 {
		ls.GridHeight = 0
	}
	return ls
}
