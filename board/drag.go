// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/drag.go
// Summary: Pointer drag to card reorder state machine.
// Notes: Reordering is optimistic; an abandoned drag keeps the new order.

package board

// DragState is the controller's state machine position.
type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// dragOps is the narrow mutation surface the Board grants the controller.
// The controller is the only component allowed to reorder the collection
// without going through add/remove, and it only does so through these
// closures, under the board lock.
type dragOps struct {
	indexOf func(id string) int
	// moveNextTo re-slots id immediately after target when after is true,
	// immediately before it otherwise.
	moveNextTo func(id, targetID string, after bool)
	dropped    func()
}

// DragReorderController translates drag gestures into live collection
// reordering. Every DragOver mutates the visible order immediately; Drop
// only signals "persist and re-layout now". There is deliberately no
// rollback for abandoned drags.
type DragReorderController struct {
	ops    dragOps
	state  DragState
	dragID string
}

func newDragReorderController(ops dragOps) *DragReorderController {
	return &DragReorderController{ops: ops}
}

// State returns the current state machine position.
func (d *DragReorderController) State() DragState { return d.state }

// DraggedID returns the id of the card being dragged, or "" when idle.
func (d *DragReorderController) DraggedID() string {
	if d.state != DragActive {
		return ""
	}
	return d.dragID
}

// beginDrag enters Dragging for the given card. A drag already in progress
// or an unknown card id leaves the controller untouched.
func (d *DragReorderController) beginDrag(id string) {
	if d.state != DragIdle {
		return
	}
	if d.ops.indexOf(id) < 0 {
		debugf("Drag: beginDrag for unknown card %q ignored", id)
		return
	}
	d.state = DragActive
	d.dragID = id
}

// dragOver reorders the collection so the dragged card lands next to
// target: after it when the card currently sits above the target, before
// it otherwise. Comparing current indices keeps every crossing a single
// slot move, so a drag that reverses direction walks back the same way it
// came.
func (d *DragReorderController) dragOver(targetID string) {
	if d.state != DragActive || targetID == d.dragID {
		return
	}
	targetIdx := d.ops.indexOf(targetID)
	if targetIdx < 0 {
		return
	}
	d.ops.moveNextTo(d.dragID, targetID, d.ops.indexOf(d.dragID) < targetIdx)
}

// drop finalizes the drag. The order was already mutated live; drop only
// returns the controller to Idle and signals persistence and relayout.
func (d *DragReorderController) drop() {
	if d.state != DragActive {
		return
	}
	d.state = DragIdle
	d.dragID = ""
	d.ops.dropped()
}

// cancel force-resets the controller (focus loss, teardown). The optimistic
// reorder already applied stands.
func (d *DragReorderController) cancel() {
	d.state = DragIdle
	d.dragID = ""
}
