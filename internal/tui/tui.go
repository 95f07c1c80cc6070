// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/logger"
	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/messages"
)

// SignalSource produces open-screen signals until ctx is done.
type SignalSource func(ctx context.Context, notify func(routes.Signal))

// Options configures StartTUI.
type Options struct {
	// Closer quits the program when the navigator pops its root.
	Closer *AppCloser
	// Sources run in their own goroutines for the lifetime of the program.
	Sources []SignalSource
	// Now is the clock used to date signal destinations. Defaults to time.Now.
	Now func() time.Time
	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool
}

// AppCloser is the navigator's close action. It quits the program once one
// is attached; closing before that is remembered.
type AppCloser struct {
	mu      sync.Mutex
	program *tea.Program
	closed  bool
}

// NewAppCloser creates a closer with no program attached.
func NewAppCloser() *AppCloser {
	return &AppCloser{}
}

// Close quits the attached program. It is called from the event loop, so the
// quit message is sent from another goroutine.
func (c *AppCloser) Close() {
	c.mu.Lock()
	c.closed = true
	p := c.program
	c.mu.Unlock()

	if p != nil {
		go p.Quit()
	}
}

// Closed reports whether Close was called.
func (c *AppCloser) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *AppCloser) attach(p *tea.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.program = p
}

// StartTUI initializes and runs the TUI application
func StartTUI(ctx context.Context, nav *Navigator, signals *navigation.Signals[routes.Signal], opts Options) error {
	log := logger.GetTUILogger()
	if nav.Exited() {
		return navigation.ErrNavigatorClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mainModel := NewMainModel(ctx, nav, signals, opts.Now)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(mainModel, programOpts...)
	if opts.Closer != nil {
		opts.Closer.attach(p)
	}

	// Signals are queued first and the loop is woken afterwards, so a
	// burst of notifications is drained in one pass.
	notify := func(kind routes.Signal) {
		if signals == nil || !signals.Notify(kind) {
			log.Warn().Str("signal", string(kind)).Msg("Dropping unknown signal")
			return
		}
		p.Send(messages.SignalMsg{})
	}
	var wg sync.WaitGroup
	for _, source := range opts.Sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			source(ctx, notify)
		}()
	}

	log.Info().Str("session", nav.Session()).Int("depth", nav.Len()).Msg("Starting TUI")
	_, err := p.Run()
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// MonthlyReminder signals OpenMonthlyReport each time the month changes,
// checking the clock every interval.
func MonthlyReminder(now func() time.Time, interval time.Duration) SignalSource {
	return func(ctx context.Context, notify func(routes.Signal)) {
		last := budget.DateFromTime(now()).YearMonth()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current := budget.DateFromTime(now()).YearMonth()
				if current != last {
					last = current
					notify(routes.OpenMonthlyReport)
				}
			}
		}
	}
}

// PrintCriticalError prints a red error message for failures that stop the UI
func PrintCriticalError(w io.Writer, err error) {
	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")). // Red color
		Render

	fmt.Fprintf(w, "\n%s\n\n", errorStyle("CRITICAL ERROR: "+err.Error()))
}
