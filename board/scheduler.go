// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: board/scheduler.go
// Summary: Single debounced relayout timer shared by every trigger.
// Notes: One pending timer is the source of truth; per-call-site ad hoc
//        delays are deliberately not allowed.

package board

import (
	"sync"
	"time"
)

// Urgency picks the debounce window for a relayout trigger. A drop lands
// near-immediately; a resize can wait out the burst of resize events.
type Urgency int

const (
	UrgencyDrop Urgency = iota
	UrgencyRefresh
	UrgencyResize
)

func (u Urgency) delay() time.Duration {
	switch u {
	case UrgencyDrop:
		return 50 * time.Millisecond
	case UrgencyResize:
		return 250 * time.Millisecond
	default:
		return 120 * time.Millisecond
	}
}

// RelayoutScheduler collapses bursts of layout triggers into one pass.
// Every trigger restarts the quiet window at its own urgency, except that a
// trigger never pushes out an already-pending earlier deadline: an urgent
// drop is not delayed by a lazy resize arriving right after it.
type RelayoutScheduler struct {
	mu       sync.Mutex
	timer    *time.Timer
	deadline time.Time
	urgency  Urgency
	fire     func()
	stopped  bool
}

// NewRelayoutScheduler creates a scheduler invoking fire after the debounce
// window closes. fire runs on a timer goroutine.
func NewRelayoutScheduler(fire func()) *RelayoutScheduler {
	return &RelayoutScheduler{fire: fire}
}

// Schedule requests a relayout with the given urgency.
func (s *RelayoutScheduler) Schedule(urgency Urgency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	deadline := time.Now().Add(urgency.delay())
	if s.timer != nil {
		// A pending more-urgent deadline is never pushed out by a lazier
		// trigger; everything else restarts the quiet window.
		if s.urgency < urgency && s.deadline.Before(deadline) {
			return
		}
		s.timer.Stop()
	}
	s.deadline = deadline
	s.urgency = urgency
	s.timer = time.AfterFunc(urgency.delay(), func() {
		s.mu.Lock()
		s.timer = nil
		stopped := s.stopped
		s.mu.Unlock()
		if !stopped {
			s.fire()
		}
	})
}

// Pending reports whether a relayout is currently scheduled.
func (s *RelayoutScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Stop cancels any pending relayout and refuses further scheduling.
func (s *RelayoutScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
