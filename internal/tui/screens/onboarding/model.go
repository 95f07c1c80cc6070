// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package onboarding

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/tui/layout"
	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

var pages = []string{
	"Track every expense and revenue day by day.",
	"Recurring entries are added for you: rent, salary, subscriptions.",
	"Check the monthly report to see where the money went.",
}

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Skip key.Binding
	Quit key.Binding
}

// Model walks a first-time user through the app. Finishing returns
// OnboardingCompleted, leaving returns OnboardingNotCompleted.
type Model struct {
	deps   screens.Deps
	keys   keyMap
	page   int
	width  int
	height int
}

// New creates the onboarding screen on its first page.
func New(deps screens.Deps) *Model {
	return &Model{
		deps: deps,
		keys: keyMap{
			Next: key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "next")),
			Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
			Skip: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
			Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		},
		width:  80,
		height: 24,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// GetLayoutInfo returns layout information for the onboarding screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       "Welcome",
		Breadcrumbs: []string{"Welcome"},
		Status:      fmt.Sprintf("Step %d of %d", m.page+1, len(pages)),
		HelpItems:   layout.HelpFromBindings(m.keys.Next, m.keys.Prev, m.keys.Skip),
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			if m.page < len(pages)-1 {
				m.page++
				return m, nil
			}
			if m.deps.Preferences != nil {
				m.deps.Preferences.SetOnboardingCompleted(true)
			}
			return m, messages.GoBack(screens.OnboardingCompleted)
		case key.Matches(msg, m.keys.Prev):
			if m.page > 0 {
				m.page--
			}
		case key.Matches(msg, m.keys.Skip):
			return m, messages.GoBack(screens.OnboardingNotCompleted)
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the onboarding screen
func (m *Model) View() string {
	var content strings.Builder
	content.WriteString(layout.TitleStyle.Render(pages[m.page]))
	content.WriteString("\n\n")
	for i := range pages {
		if i == m.page {
			content.WriteString(layout.SelectedStyle.Render("●"))
		} else {
			content.WriteString(layout.StatsStyle.Render("○"))
		}
		content.WriteString(" ")
	}
	if m.page == len(pages)-1 {
		content.WriteString("\n\n")
		content.WriteString(layout.StatusStyle.Render("Press enter to start budgeting"))
	}
	return layout.RenderLayout(content.String(), m.GetLayoutInfo(), m.width, m.height)
}
