// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package home

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ResumedMsg:
		return m, m.consumeResults()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.month = m.month.Previous()
		case key.Matches(msg, m.keys.NextMonth):
			m.month = m.month.Next()
		case key.Matches(msg, m.keys.AddExpense):
			return m, messages.Navigate(routes.ExpenseAddDestination{Date: m.deps.Today()})
		case key.Matches(msg, m.keys.AddRecurring):
			return m, messages.Navigate(routes.RecurringExpenseAddDestination{Date: m.deps.Today()})
		case key.Matches(msg, m.keys.Report):
			return m, messages.Navigate(routes.MonthlyReportDestination{FromNotification: false})
		case key.Matches(msg, m.keys.Export):
			return m, messages.Navigate(routes.MonthlyReportExportDestination{Month: m.month})
		case key.Matches(msg, m.keys.Accounts):
			return m, messages.Navigate(routes.AccountsDestination{Selected: m.account})
		case key.Matches(msg, m.keys.Settings):
			return m, messages.Navigate(routes.SettingsDestination{})
		case key.Matches(msg, m.keys.Premium):
			return m, messages.Navigate(routes.PremiumDestination{StartOnPro: false})
		case key.Matches(msg, m.keys.Back):
			return m, messages.GoBack(nil)
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// consumeResults reads whatever the screen above handed back. Each result
// is read once.
func (m *Model) consumeResults() tea.Cmd {
	results := m.sc.Results()

	if outcome, ok := navigation.TakeResult[screens.OnboardingResult](results); ok {
		m.log.Debug().Stringer("result", outcome).Msg("Onboarding finished")
		switch outcome {
		case screens.OnboardingCompleted:
			m.status = "Welcome! Your budget is ready."
		case screens.OnboardingNotCompleted:
			return messages.CloseApp()
		}
		return nil
	}

	if selected, ok := navigation.TakeResult[screens.AccountSelected](results); ok {
		m.account = selected.Account
		if m.deps.Preferences != nil {
			m.deps.Preferences.SetSelectedAccount(selected.Account)
		}
		m.status = "Switched to " + selected.Account.DisplayName()
		return nil
	}

	if saved, ok := navigation.TakeResult[screens.ExpenseSaved](results); ok {
		m.saved = append(m.saved, saved.Expense)
		verb := "Added"
		if saved.Edited {
			verb = "Updated"
		}
		m.status = fmt.Sprintf("%s %q", verb, saved.Expense.Title)
		m.month = saved.Expense.Date.YearMonth()
		return nil
	}

	return m.onboardingIfNeeded()
}

func (m *Model) onboardingIfNeeded() tea.Cmd {
	if m.deps.Preferences == nil || m.deps.Preferences.OnboardingCompleted() {
		return nil
	}
	return messages.Navigate(routes.OnboardingDestination{})
}
