// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"bytes"
	"context"
	"sync"

	"github.com/samber/lo"
)

// StateStore persists back stacks. A session names one independent stack.
type StateStore interface {
	// SaveBackStack replaces the stored stack of session.
	SaveBackStack(ctx context.Context, session string, entries []Entry) error
	// LoadBackStack returns the stored stack of session, bottom first.
	// A session never saved has an empty stack.
	LoadBackStack(ctx context.Context, session string) ([]Entry, error)
}

// MemoryStore is a StateStore that lives as long as the process.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]Entry
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]Entry),
	}
}

func (m *MemoryStore) SaveBackStack(_ context.Context, session string, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session] = cloneEntries(entries)
	return nil
}

func (m *MemoryStore) LoadBackStack(_ context.Context, session string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneEntries(m.sessions[session]), nil
}

func cloneEntries(entries []Entry) []Entry {
	return lo.Map(entries, func(e Entry, _ int) Entry {
		e.Args = bytes.Clone(e.Args)
		return e
	})
}
