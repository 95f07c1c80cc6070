// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/layout"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// option is one settings line. Lines without a destination are informational.
type option struct {
	label string
	dest  navigation.Destination
}

// Model is the model for the settings screen.
type Model struct {
	sc            *navigation.ScreenContext
	selectedIndex int
	options       []option
	status        string
	width         int
	height        int
}

// NewModel creates a new settings model
func NewModel(deps screens.Deps, sc *navigation.ScreenContext) *Model {
	return &Model{
		sc: sc,
		options: []option{
			{label: "Currency: " + deps.Currency},
			{label: "Cloud backup", dest: routes.BackupSettingsDestination{}},
			{label: "Log in", dest: routes.LoginDestination{ShouldDismissAfterAuth: false}},
			{label: "Upgrade to Pro", dest: routes.PremiumDestination{StartOnPro: true}},
			{label: "Show onboarding again", dest: routes.OnboardingDestination{}},
		},
		width:  50,
		height: 10,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// GetLayoutInfo returns layout information for the settings screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	helpItems := []layout.HelpItem{
		{Key: "↑/k", Description: "up"},
		{Key: "↓/j", Description: "down"},
		{Key: "enter", Description: "open"},
		{Key: "esc", Description: "back"},
		{Key: "q", Description: "quit"},
	}

	return layout.LayoutInfo{
		Title:       "Settings",
		Breadcrumbs: []string{"Budget", "Settings"},
		Status:      m.status,
		HelpItems:   helpItems,
	}
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
