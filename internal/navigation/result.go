// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import "sync"

// ResultSlot holds at most one result returned to a screen by the screen it
// launched. A read consumes the value.
type ResultSlot struct {
	mu      sync.Mutex
	value   any
	pending bool
}

// NewResultSlot creates an empty slot.
func NewResultSlot() *ResultSlot {
	return &ResultSlot{}
}

// Deliver stores v, replacing any unread value. It returns
// ErrDuplicateResultDelivery when an unread value was replaced.
// Delivering nil does nothing.
func (s *ResultSlot) Deliver(v any) error {
	if v == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := s.pending
	s.value = v
	s.pending = true
	if replaced {
		return ErrDuplicateResultDelivery
	}
	return nil
}

// Take returns the pending value and clears the slot.
func (s *ResultSlot) Take() (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return nil, false
	}
	v := s.value
	s.value = nil
	s.pending = false
	return v, true
}

// Pending reports whether an unread value is waiting.
func (s *ResultSlot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// TakeResult returns the pending value if it is a T and clears the slot.
// A value of another type is left in place.
func TakeResult[T any](s *ResultSlot) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return zero, false
	}
	v, ok := s.value.(T)
	if !ok {
		return zero, false
	}
	s.value = nil
	s.pending = false
	return v, true
}

// ScreenContext is what a screen knows about its own back-stack entry.
type ScreenContext struct {
	entryID string
	route   Route
	results *ResultSlot
}

// NewScreenContext creates the context of a screen that is not on a stack yet.
func NewScreenContext(entryID string, route Route) *ScreenContext {
	return &ScreenContext{
		entryID: entryID,
		route:   route,
		results: NewResultSlot(),
	}
}

// EntryID returns the ID of the back-stack entry.
func (sc *ScreenContext) EntryID() string { return sc.entryID }

// Route returns the route the screen was opened with.
func (sc *ScreenContext) Route() Route { return sc.route }

// Results returns the slot receiving results from screens this one opens.
func (sc *ScreenContext) Results() *ResultSlot { return sc.results }
