// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package expense

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, messages.GoBack(nil)
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		e, err := m.Build()
		if err != nil {
			m.log.Warn().Err(err).Msg("Expense form completed with invalid values")
			m.initForm()
			return m, m.form.Init()
		}
		return m, messages.GoBack(screens.ExpenseSaved{Expense: e, Edited: m.mode.editing()})
	}

	return m, cmd
}
