// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
		case "down", "j":
			if m.selectedIndex < len(m.options)-1 {
				m.selectedIndex++
			}
		case "enter":
			if dest := m.options[m.selectedIndex].dest; dest != nil {
				return m, messages.Navigate(dest)
			}
		case "esc", "backspace":
			return m, messages.GoBack(nil)
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case messages.ResumedMsg:
		return m, m.consumeResults()
	}

	return m, nil
}

// consumeResults handles onboarding replayed from this screen the same way
// the home screen handles the first run.
func (m *Model) consumeResults() tea.Cmd {
	if m.sc == nil {
		return nil
	}
	outcome, ok := navigation.TakeResult[screens.OnboardingResult](m.sc.Results())
	if !ok {
		return nil
	}
	switch outcome {
	case screens.OnboardingCompleted:
		m.status = "Onboarding completed"
	case screens.OnboardingNotCompleted:
		return messages.CloseApp()
	}
	return nil
}
