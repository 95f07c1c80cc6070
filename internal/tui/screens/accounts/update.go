// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package accounts

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.accounts)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			return m, messages.GoBack(screens.AccountSelected{Account: m.Highlighted()})
		case key.Matches(msg, m.keys.Manage):
			if online, ok := m.Highlighted().(budget.OnlineAccount); ok {
				return m, messages.Navigate(routes.ManageAccountDestination{Account: online})
			}
		case key.Matches(msg, m.keys.Create):
			return m, messages.Navigate(routes.CreateAccountDestination{})
		case key.Matches(msg, m.keys.Login):
			return m, messages.Navigate(routes.LoginDestination{ShouldDismissAfterAuth: true})
		case key.Matches(msg, m.keys.Back):
			return m, messages.GoBack(nil)
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		m.keys.Manage.SetEnabled(m.highlightedOnline())

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}
