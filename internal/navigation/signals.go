// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

// Signals carries "open screen" requests from outside the event loop.
// Each kind has its own channel of capacity one, so repeated notifications
// before a drain collapse into one. The set of kinds is fixed at construction,
// which makes Notify and Drain safe to call from different goroutines.
type Signals[K comparable] struct {
	kinds []K
	chans map[K]chan struct{}
}

// NewSignals creates a channel for each kind. Drain reports kinds in this order.
func NewSignals[K comparable](kinds ...K) *Signals[K] {
	s := &Signals[K]{
		chans: make(map[K]chan struct{}, len(kinds)),
	}
	for _, k := range kinds {
		if _, dup := s.chans[k]; dup {
			continue
		}
		s.kinds = append(s.kinds, k)
		s.chans[k] = make(chan struct{}, 1)
	}
	return s
}

// Notify queues kind without blocking. It returns false for an unknown kind.
func (s *Signals[K]) Notify(kind K) bool {
	ch, ok := s.chans[kind]
	if !ok {
		return false
	}
	select {
	case ch <- struct{}{}:
	default:
	}
	return true
}

// Drain returns the pending kinds and clears them. It never blocks.
func (s *Signals[K]) Drain() []K {
	var pending []K
	for _, k := range s.kinds {
		select {
		case <-s.chans[k]:
			pending = append(pending, k)
		default:
		}
	}
	return pending
}

// Pending reports whether any kind is queued.
func (s *Signals[K]) Pending() bool {
	for _, k := range s.kinds {
		if len(s.chans[k]) > 0 {
			return true
		}
	}
	return false
}

// Kinds returns the registered kinds.
func (s *Signals[K]) Kinds() []K {
	out := make([]K, len(s.kinds))
	copy(out, s.kinds)
	return out
}
