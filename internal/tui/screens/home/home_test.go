// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package home

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
	"github.com/easybudget/easybudget/test/testutil"
)

func newHome(onboarded bool) (*Model, *navigation.ScreenContext) {
	sc := navigation.NewScreenContext("root", routes.Main)
	return New(testutil.SampleDeps(onboarded), sc), sc
}

func TestNew(t *testing.T) {
	m, _ := newHome(true)

	assert.Equal(t, budget.YearMonthOf(2025, time.March), m.Month())
	assert.Equal(t, budget.OfflineAccount{}, m.Account())
	assert.Empty(t, m.Status())
}

func TestInit(t *testing.T) {
	t.Run("first launch opens onboarding", func(t *testing.T) {
		m, _ := newHome(false)
		testutil.AssertNavigateTo(t, m.Init(), routes.OnboardingDestination{})
	})

	t.Run("onboarded user stays home", func(t *testing.T) {
		m, _ := newHome(true)
		testutil.AssertNoCommand(t, m.Init())
	})
}

func TestUpdate_Keys(t *testing.T) {
	today := budget.DateOf(2025, time.March, 14)

	tests := []struct {
		name string
		key  tea.KeyMsg
		want navigation.Destination
	}{
		{"add expense", testutil.KeyPress("a"), routes.ExpenseAddDestination{Date: today}},
		{"add recurring", testutil.KeyPress("r"), routes.RecurringExpenseAddDestination{Date: today}},
		{"monthly report", testutil.KeyPress("m"), routes.MonthlyReportDestination{}},
		{"export", testutil.KeyPress("x"), routes.MonthlyReportExportDestination{Month: today.YearMonth()}},
		{"accounts", testutil.KeyPress("c"), routes.AccountsDestination{Selected: budget.OfflineAccount{}}},
		{"settings", testutil.KeyPress("s"), routes.SettingsDestination{}},
		{"premium", testutil.KeyPress("p"), routes.PremiumDestination{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newHome(true)
			_, cmd := testutil.SendMessage(m, tt.key)
			testutil.AssertNavigateTo(t, cmd, tt.want)
		})
	}

	t.Run("month switching", func(t *testing.T) {
		m, _ := newHome(true)
		testutil.SendMessage(m, testutil.SpecialKey(tea.KeyLeft))
		assert.Equal(t, budget.YearMonthOf(2025, time.February), m.Month())

		testutil.SendMessage(m, testutil.KeyPress("l"))
		testutil.SendMessage(m, testutil.KeyPress("l"))
		assert.Equal(t, budget.YearMonthOf(2025, time.April), m.Month())

		_, cmd := testutil.SendMessage(m, testutil.KeyPress("x"))
		testutil.AssertNavigateTo(t, cmd, routes.MonthlyReportExportDestination{
			Month: budget.YearMonthOf(2025, time.April),
		})
	})

	t.Run("esc pops the root", func(t *testing.T) {
		m, _ := newHome(true)
		_, cmd := testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEsc))
		assert.Nil(t, testutil.AssertGoBack(t, cmd))
	})

	t.Run("q quits", func(t *testing.T) {
		m, _ := newHome(true)
		_, cmd := testutil.SendMessage(m, testutil.KeyPress("q"))
		testutil.AssertQuitMessage(t, cmd)
	})
}

func TestResumed_OnboardingResult(t *testing.T) {
	t.Run("completed shows the welcome status once", func(t *testing.T) {
		m, sc := newHome(true)
		require.NoError(t, sc.Results().Deliver(screens.OnboardingCompleted))

		_, cmd := testutil.SendMessage(m, messages.ResumedMsg{})
		testutil.AssertNoCommand(t, cmd)
		assert.Equal(t, "Welcome! Your budget is ready.", m.Status())
		assert.False(t, sc.Results().Pending())

		_, cmd = testutil.SendMessage(m, messages.ResumedMsg{})
		testutil.AssertNoCommand(t, cmd)
	})

	t.Run("not completed closes the app", func(t *testing.T) {
		m, sc := newHome(false)
		require.NoError(t, sc.Results().Deliver(screens.OnboardingNotCompleted))

		_, cmd := testutil.SendMessage(m, messages.ResumedMsg{})
		require.NotNil(t, cmd)
		assert.IsType(t, messages.CloseAppMsg{}, testutil.ExecuteCommand(cmd))
	})

	t.Run("resume without a result reopens onboarding when still needed", func(t *testing.T) {
		m, _ := newHome(false)
		_, cmd := testutil.SendMessage(m, messages.ResumedMsg{})
		testutil.AssertNavigateTo(t, cmd, routes.OnboardingDestination{})
	})
}

func TestResumed_OtherResults(t *testing.T) {
	t.Run("account selection is applied and saved", func(t *testing.T) {
		m, sc := newHome(true)
		shared := testutil.SharedAccount()
		require.NoError(t, sc.Results().Deliver(screens.AccountSelected{Account: shared}))

		testutil.SendMessage(m, messages.ResumedMsg{})
		assert.Equal(t, shared, m.Account())
		assert.Equal(t, "Switched to Shared (online)", m.Status())
		assert.Equal(t, shared, m.deps.Preferences.SelectedAccount())
	})

	t.Run("saved expense is listed in its month", func(t *testing.T) {
		m, sc := newHome(true)
		testutil.SendMessage(m, testutil.WindowSizeMsg(100, 30))
		expense := budget.Expense{
			ID:     1,
			Title:  "Groceries",
			Amount: 4250,
			Date:   budget.DateOf(2025, time.January, 3),
		}
		require.NoError(t, sc.Results().Deliver(screens.ExpenseSaved{Expense: expense}))

		testutil.SendMessage(m, messages.ResumedMsg{})
		assert.Equal(t, `Added "Groceries"`, m.Status())
		assert.Equal(t, budget.YearMonthOf(2025, time.January), m.Month())

		view := m.View()
		assert.Contains(t, view, "Groceries")
		assert.Contains(t, view, "$42.50")
		assert.Contains(t, view, "Balance: -$42.50")
	})

	t.Run("edited expense reports an update", func(t *testing.T) {
		m, sc := newHome(true)
		require.NoError(t, sc.Results().Deliver(screens.ExpenseSaved{Expense: testutil.SampleExpense(), Edited: true}))

		testutil.SendMessage(m, messages.ResumedMsg{})
		assert.Equal(t, `Updated "Rent"`, m.Status())
	})
}

func TestView(t *testing.T) {
	m, _ := newHome(true)
	testutil.SendMessage(m, testutil.WindowSizeMsg(100, 30))

	view := m.View()
	assert.Contains(t, view, "EasyBudget")
	assert.Contains(t, view, "March 2025")
	assert.Contains(t, view, "No entries this month")
	assert.Contains(t, view, "Default (offline)")
}
