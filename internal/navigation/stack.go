// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"encoding/json"
	"slices"
)

// Entry is the persisted form of one back-stack position: which route, with
// which encoded arguments. ID stays stable for the lifetime of the entry.
type Entry struct {
	ID    string          `json:"id" yaml:"id"`
	Route Route           `json:"route" yaml:"route"`
	Args  json.RawMessage `json:"args" yaml:"-"`
}

// Stack is a LIFO of back-stack items. Index 0 is the bottom.
type Stack[T any] struct {
	items []T
}

// NewStack creates an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0),
	}
}

// Push adds an item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
// Returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.At(len(s.items) - 1)
}

// At returns the item at position i, counted from the bottom.
func (s *Stack[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Truncate keeps the n bottom items.
func (s *Stack[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.items) {
		return
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}

// IsEmpty returns true if the stack has no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of items in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items, bottom first.
func (s *Stack[T]) Items() []T {
	return slices.Clone(s.items)
}

// Clear removes all items from the stack.
func (s *Stack[T]) Clear() {
	s.Truncate(0)
}
