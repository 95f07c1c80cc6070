// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package accounts

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/tui/layout"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Manage key.Binding
	Create key.Binding
	Login  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// Model lists the offline account followed by the online ones.
type Model struct {
	keys     keyMap
	accounts []budget.SelectedAccount
	cursor   int
	width    int
	height   int
}

// New creates the accounts screen with the cursor on selected.
func New(deps screens.Deps, selected budget.SelectedAccount) *Model {
	m := &Model{
		keys: keyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "switch")),
			Manage: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "manage")),
			Create: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new account")),
			Login:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "log in")),
			Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
			Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		accounts: []budget.SelectedAccount{budget.OfflineAccount{}},
		width:    80,
		height:   24,
	}
	if deps.Accounts != nil {
		for _, a := range deps.Accounts.OnlineAccounts() {
			m.accounts = append(m.accounts, a)
		}
	}
	for i, a := range m.accounts {
		if sameAccount(a, selected) {
			m.cursor = i
		}
	}
	m.keys.Manage.SetEnabled(m.highlightedOnline())
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// GetLayoutInfo returns layout information for the accounts screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       "Accounts",
		Breadcrumbs: []string{"Budget", "Accounts"},
		HelpItems: layout.HelpFromBindings(
			m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Manage,
			m.keys.Create, m.keys.Login, m.keys.Back,
		),
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Highlighted returns the account under the cursor.
func (m *Model) Highlighted() budget.SelectedAccount {
	return m.accounts[m.cursor]
}

func (m *Model) highlightedOnline() bool {
	_, ok := m.Highlighted().(budget.OnlineAccount)
	return ok
}

func sameAccount(a, b budget.SelectedAccount) bool {
	switch a := a.(type) {
	case budget.OfflineAccount:
		_, ok := b.(budget.OfflineAccount)
		return ok
	case budget.OnlineAccount:
		other, ok := b.(budget.OnlineAccount)
		return ok && other.ID == a.ID
	}
	return false
}
