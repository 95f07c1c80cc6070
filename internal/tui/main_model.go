// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/logger"
	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/layout"
	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Navigator is the back stack of the terminal UI.
type Navigator = navigation.Navigator[screens.Screen]

// MainModel hosts the screen on top of the navigator and turns navigation
// messages into navigator calls. The last line of the terminal is a status
// line for navigation errors.
type MainModel struct {
	ctx     context.Context
	nav     *Navigator
	signals *navigation.Signals[routes.Signal]
	now     func() time.Time
	log     zerolog.Logger

	// Global state
	width, height int
	status        string
}

// NewMainModel creates a MainModel over nav. signals may be nil.
func NewMainModel(ctx context.Context, nav *Navigator, signals *navigation.Signals[routes.Signal], now func() time.Time) MainModel {
	if now == nil {
		now = time.Now
	}
	return MainModel{
		ctx:     ctx,
		nav:     nav,
		signals: signals,
		now:     now,
		log:     logger.GetTUILogger().With().Str("component", "main_model").Logger(),
	}
}

func (m MainModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if screen, ok := m.current(); ok {
		cmds = append(cmds, screen.Init())
	}
	if m.signals != nil && m.signals.Pending() {
		cmds = append(cmds, func() tea.Msg { return messages.SignalMsg{} })
	}
	return tea.Batch(cmds...)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Navigation Messages First (these return early to avoid screen delegation)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeCurrent()
		return m, nil

	case messages.NavigateMsg:
		return m, m.navigate(msg.Destination)

	case messages.GoBackMsg:
		err := m.nav.NavigateBack(m.ctx, msg.Result)
		if m.nav.Exited() {
			if err != nil {
				m.log.Error().Err(err).Msg("Failed to save the empty back stack")
			}
			return m, tea.Quit
		}
		return m, m.resume(err)

	case messages.PopToRootMsg:
		return m, m.resume(m.nav.PopToRoot(m.ctx))

	case messages.SignalMsg:
		return m, m.drainSignals()

	case messages.CloseAppMsg:
		m.log.Info().Msg("Closing at the request of a screen")
		return m, tea.Quit
	}

	// Delegate to the current screen
	screen, ok := m.current()
	if !ok {
		return m, nil
	}
	updated, cmd := screen.Update(msg)
	if next, ok := updated.(screens.Screen); ok {
		m.nav.ReplaceCurrent(next)
	}
	return m, cmd
}

func (m MainModel) View() string {
	screen, ok := m.current()
	body := ""
	if ok {
		body = screen.View()
	}
	if m.status == "" {
		return body + "\n"
	}
	return body + "\n" + layout.ErrorStyle.Render(m.status)
}

// Status returns the last navigation error shown to the user.
func (m MainModel) Status() string {
	return m.status
}

func (m MainModel) current() (screens.Screen, bool) {
	screen, _, ok := m.nav.Current()
	if !ok || screen == nil {
		return nil, false
	}
	return screen, true
}

// resizeCurrent gives the top screen everything but the status line.
func (m *MainModel) resizeCurrent() {
	if m.width == 0 || m.height == 0 {
		return
	}
	if screen, ok := m.current(); ok {
		screen.SetSize(m.width, max(m.height-1, 1))
	}
}

// navigate pushes dest and starts its screen. A persistence failure still
// leaves the new screen on top, so only the depth tells whether it was pushed.
func (m *MainModel) navigate(dest navigation.Destination) tea.Cmd {
	depth := m.nav.Len()
	err := m.nav.Navigate(m.ctx, dest)
	m.report(err, dest.Route())
	if m.nav.Len() == depth {
		return nil
	}
	m.resizeCurrent()
	screen, ok := m.current()
	if !ok {
		return nil
	}
	return screen.Init()
}

// resume tells the new top screen that it is visible again, so it can read
// the result the popped screen left for it.
func (m *MainModel) resume(err error) tea.Cmd {
	top := navigation.Route("")
	if stack := m.nav.Routes(); len(stack) > 0 {
		top = stack[len(stack)-1]
	}
	m.report(err, top)

	screen, ok := m.current()
	if !ok {
		return nil
	}
	m.resizeCurrent()
	updated, cmd := screen.Update(messages.ResumedMsg{})
	if next, ok := updated.(screens.Screen); ok {
		m.nav.ReplaceCurrent(next)
	}
	return cmd
}

func (m *MainModel) drainSignals() tea.Cmd {
	if m.signals == nil {
		return nil
	}
	today := budget.DateFromTime(m.now())
	var cmds []tea.Cmd
	for _, kind := range m.signals.Drain() {
		dest, ok := routes.SignalDestination(kind, today)
		if !ok {
			m.log.Warn().Str("signal", string(kind)).Msg("Signal has no destination")
			continue
		}
		m.log.Debug().Str("signal", string(kind)).Str("route", string(dest.Route())).Msg("Opening screen for signal")
		cmds = append(cmds, m.navigate(dest))
	}
	return tea.Batch(cmds...)
}

func (m *MainModel) report(err error, route navigation.Route) {
	if err == nil {
		m.status = ""
		return
	}
	m.log.Error().Err(err).Str("route", string(route)).Msg("Navigation failed")
	m.status = "Navigation failed: " + err.Error()
}
