// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/navigation"
)

// Navigation messages for screen transitions within the TUI.
// The main model applies them to the navigator one at a time.

// NavigateMsg pushes the screen of Destination.
type NavigateMsg struct {
	Destination navigation.Destination
}

// GoBackMsg pops the current screen. A non-nil Result is handed to the
// screen below, which reads it when it receives ResumedMsg.
type GoBackMsg struct {
	Result any
}

// PopToRootMsg drops every screen above the root.
type PopToRootMsg struct{}

// SignalMsg wakes the main model to drain pending open-screen signals.
type SignalMsg struct{}

// CloseAppMsg quits without touching the back stack.
type CloseAppMsg struct{}

// ResumedMsg is sent to a screen when it becomes the top of the stack again.
type ResumedMsg struct{}

// Navigate returns a command that emits NavigateMsg.
func Navigate(dest navigation.Destination) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Destination: dest}
	}
}

// GoBack returns a command that emits GoBackMsg carrying result.
func GoBack(result any) tea.Cmd {
	return func() tea.Msg {
		return GoBackMsg{Result: result}
	}
}

// CloseApp returns a command that emits CloseAppMsg.
func CloseApp() tea.Cmd {
	return func() tea.Msg {
		return CloseAppMsg{}
	}
}

// PopToRoot returns a command that emits PopToRootMsg.
func PopToRoot() tea.Cmd {
	return func() tea.Msg {
		return PopToRootMsg{}
	}
}
