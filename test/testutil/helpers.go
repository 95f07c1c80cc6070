// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// SendMessage simulates sending a message to a Bubble Tea model
// Returns the updated model and any commands generated
func SendMessage(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	return model.Update(msg)
}

// ExecuteCommand executes a tea.Cmd and returns the resulting message
func ExecuteCommand(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// CollectMessages runs cmd and every command batched inside it, returning
// the leaf messages in order. tea.Quit and similar commands are included.
func CollectMessages(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCommand(cmd)
	if msg == nil {
		return nil
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, CollectMessages(c)...)
	}
	return msgs
}

// AssertViewContains checks if view output contains expected string
func AssertViewContains(t *testing.T, model tea.Model, expected string) {
	t.Helper()
	assert.Contains(t, model.View(), expected)
}

// KeyPress creates a tea.KeyMsg for testing keyboard input
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

// SpecialKey creates special key messages (Enter, Esc, etc.)
func SpecialKey(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// WindowSizeMsg creates a window size message for testing
func WindowSizeMsg(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  width,
		Height: height,
	}
}
