// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package info is a read-only screen with a few key actions. It backs the
// screens whose real content lives behind a remote service: premium, the
// monthly report and its export, cloud backup, login and account management.
package info

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/tui/layout"
	"github.com/easybudget/easybudget/internal/tui/messages"
)

// Action is a key the page reacts to. Run may set the status line.
type Action struct {
	Binding key.Binding
	Run     func(m *Model) tea.Cmd
}

// Page is what an info screen shows.
type Page struct {
	Title       string
	Breadcrumbs []string
	Lines       []string
	Status      string
	Actions     []Action
}

// Model renders a Page.
type Model struct {
	page   Page
	back   key.Binding
	quit   key.Binding
	status string
	width  int
	height int
}

// New creates an info screen for page.
func New(page Page) *Model {
	return &Model{
		page:   page,
		back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		status: page.Status,
		width:  80,
		height: 24,
	}
}

// NewAction builds an Action bound to keys with a help entry.
func NewAction(keys []string, help, desc string, run func(m *Model) tea.Cmd) Action {
	return Action{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		Run:     run,
	}
}

// Open returns an Action runner that navigates to dest.
func Open(dest navigation.Destination) func(*Model) tea.Cmd {
	return func(*Model) tea.Cmd {
		return messages.Navigate(dest)
	}
}

// Back returns an Action runner that pops the page with result.
func Back(result any) func(*Model) tea.Cmd {
	return func(*Model) tea.Cmd {
		return messages.GoBack(result)
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetStatus replaces the status line.
func (m *Model) SetStatus(status string) {
	m.status = status
}

// Status returns the status line.
func (m *Model) Status() string {
	return m.status
}

// Title returns the page title.
func (m *Model) Title() string {
	return m.page.Title
}

// GetLayoutInfo returns layout information for the page
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	bindings := make([]key.Binding, 0, len(m.page.Actions)+1)
	for _, a := range m.page.Actions {
		bindings = append(bindings, a.Binding)
	}
	bindings = append(bindings, m.back)

	breadcrumbs := m.page.Breadcrumbs
	if len(breadcrumbs) == 0 {
		breadcrumbs = []string{m.page.Title}
	}
	return layout.LayoutInfo{
		Title:       m.page.Title,
		Breadcrumbs: breadcrumbs,
		Status:      m.status,
		HelpItems:   layout.HelpFromBindings(bindings...),
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
		for _, a := range m.page.Actions {
			if key.Matches(msg, a.Binding) {
				return m, a.Run(m)
			}
		}
		switch {
		case key.Matches(msg, m.back):
			return m, messages.GoBack(nil)
		case key.Matches(msg, m.quit):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the page
func (m *Model) View() string {
	content := strings.Join(m.page.Lines, "\n")
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}
