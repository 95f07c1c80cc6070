// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package home

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/logger"
	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/tui/layout"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

type keyMap struct {
	PrevMonth    key.Binding
	NextMonth    key.Binding
	AddExpense   key.Binding
	AddRecurring key.Binding
	Report       key.Binding
	Export       key.Binding
	Accounts     key.Binding
	Settings     key.Binding
	Premium      key.Binding
	Back         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevMonth:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		NextMonth:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		AddExpense:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add expense")),
		AddRecurring: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "add recurring")),
		Report:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "monthly report")),
		Export:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export month")),
		Accounts:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "accounts")),
		Settings:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Premium:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "premium")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the budget overview, the root of the back stack.
type Model struct {
	deps    screens.Deps
	sc      *navigation.ScreenContext
	keys    keyMap
	month   budget.YearMonth
	account budget.SelectedAccount
	saved   []budget.Expense
	status  string
	width   int
	height  int
	log     zerolog.Logger
}

// New creates the home screen showing the current month.
func New(deps screens.Deps, sc *navigation.ScreenContext) *Model {
	m := &Model{
		deps:    deps,
		sc:      sc,
		keys:    defaultKeyMap(),
		month:   deps.Today().YearMonth(),
		account: budget.SelectedAccount(budget.OfflineAccount{}),
		width:   80,
		height:  24,
		log:     logger.GetTUILogger(),
	}
	if deps.Preferences != nil {
		m.account = deps.Preferences.SelectedAccount()
	}
	return m
}

// Init opens onboarding on first launch.
func (m *Model) Init() tea.Cmd {
	return m.onboardingIfNeeded()
}

// GetLayoutInfo returns layout information for the home screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       m.title(),
		Breadcrumbs: []string{"Budget"},
		Status:      m.status,
		HelpItems: layout.HelpFromBindings(
			m.keys.PrevMonth, m.keys.NextMonth, m.keys.AddExpense, m.keys.AddRecurring,
			m.keys.Report, m.keys.Export, m.keys.Accounts, m.keys.Settings,
			m.keys.Premium, m.keys.Quit,
		),
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Month returns the month on screen.
func (m *Model) Month() budget.YearMonth {
	return m.month
}

// Account returns the account on screen.
func (m *Model) Account() budget.SelectedAccount {
	return m.account
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) title() string {
	switch m.deps.Flavor {
	case "financetracker":
		return "Finance Tracker"
	default:
		return "EasyBudget"
	}
}
