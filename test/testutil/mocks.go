// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/tui/layout"
)

// MockScreen records what the main model sends it
type MockScreen struct {
	Name        string
	Context     *navigation.ScreenContext
	InitCalled  bool
	Messages    []tea.Msg
	NextCommand tea.Cmd
	Width       int
	Height      int
}

// NewMockScreen creates a mock screen whose view is its name
func NewMockScreen(name string, sc *navigation.ScreenContext) *MockScreen {
	return &MockScreen{Name: name, Context: sc}
}

func (m *MockScreen) Init() tea.Cmd {
	m.InitCalled = true
	return nil
}

func (m *MockScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.Messages = append(m.Messages, msg)
	cmd := m.NextCommand
	m.NextCommand = nil
	return m, cmd
}

func (m *MockScreen) View() string {
	return m.Name
}

func (m *MockScreen) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

func (m *MockScreen) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{Title: m.Name}
}

// LastMessage returns the most recent message, or nil if none
func (m *MockScreen) LastMessage() tea.Msg {
	if len(m.Messages) == 0 {
		return nil
	}
	return m.Messages[len(m.Messages)-1]
}
