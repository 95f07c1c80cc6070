// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/screens"
	"github.com/easybudget/easybudget/internal/tui/screens/accounts"
	"github.com/easybudget/easybudget/internal/tui/screens/expense"
	"github.com/easybudget/easybudget/internal/tui/screens/home"
	"github.com/easybudget/easybudget/internal/tui/screens/info"
	"github.com/easybudget/easybudget/internal/tui/screens/onboarding"
	"github.com/easybudget/easybudget/internal/tui/screens/settings"
	"github.com/easybudget/easybudget/test/testutil"
)

func TestBuildRouteTable_CoversEveryRoute(t *testing.T) {
	table, err := BuildRouteTable(testutil.SampleDeps(true))
	require.NoError(t, err)

	assert.ElementsMatch(t, routes.AllRoutes(), table.Routes())
	assert.NoError(t, table.Validate(routes.AllRoutes()...))
}

func TestBuildRouteTable_BuildsScreens(t *testing.T) {
	deps := testutil.SampleDeps(true)
	table, err := BuildRouteTable(deps)
	require.NoError(t, err)

	today := deps.Today()
	rent := testutil.SampleExpense()

	tests := []struct {
		dest navigation.Destination
		want screens.Screen
	}{
		{routes.OnboardingDestination{}, &onboarding.Model{}},
		{routes.PremiumDestination{StartOnPro: true}, &info.Model{}},
		{routes.MonthlyReportDestination{FromNotification: true}, &info.Model{}},
		{routes.MonthlyReportExportDestination{Month: budget.YearMonthOf(2025, time.January)}, &info.Model{}},
		{routes.ManageAccountDestination{Account: testutil.SharedAccount()}, &info.Model{}},
		{routes.AccountsDestination{Selected: testutil.FamilyAccount()}, &accounts.Model{}},
		{routes.SettingsDestination{}, &settings.Model{}},
		{routes.BackupSettingsDestination{}, &info.Model{}},
		{routes.LoginDestination{ShouldDismissAfterAuth: true}, &info.Model{}},
		{routes.CreateAccountDestination{}, &info.Model{}},
		{routes.ExpenseAddDestination{Date: today}, &expense.Model{}},
		{routes.ExpenseEditDestination{Date: today, Expense: rent}, &expense.Model{}},
		{routes.RecurringExpenseAddDestination{Date: today}, &expense.Model{}},
		{routes.RecurringExpenseEditDestination{Date: today, Expense: rent}, &expense.Model{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dest.Route()), func(t *testing.T) {
			nav, err := navigation.New(table, routes.MainDestination{})
			require.NoError(t, err)

			root, _, ok := nav.Current()
			require.True(t, ok)
			assert.IsType(t, &home.Model{}, root)

			require.NoError(t, nav.Navigate(context.Background(), tt.dest))
			screen, sc, ok := nav.Current()
			require.True(t, ok)
			assert.IsType(t, tt.want, screen)
			assert.Equal(t, tt.dest.Route(), sc.Route())
		})
	}
}

func TestBuildRouteTable_ExpenseModes(t *testing.T) {
	deps := testutil.SampleDeps(true)
	table, err := BuildRouteTable(deps)
	require.NoError(t, err)
	rent := testutil.SampleExpense()

	tests := []struct {
		dest navigation.Destination
		mode expense.Mode
	}{
		{routes.ExpenseAddDestination{Date: deps.Today()}, expense.ModeAdd},
		{routes.ExpenseEditDestination{Date: rent.Date, Expense: rent}, expense.ModeEdit},
		{routes.RecurringExpenseAddDestination{Date: deps.Today()}, expense.ModeRecurringAdd},
		{routes.RecurringExpenseEditDestination{Date: rent.Date, Expense: rent}, expense.ModeRecurringEdit},
	}
	for _, tt := range tests {
		nav, err := navigation.New(table, routes.MainDestination{})
		require.NoError(t, err)
		require.NoError(t, nav.Navigate(context.Background(), tt.dest))

		screen, _, _ := nav.Current()
		form, ok := screen.(*expense.Model)
		require.True(t, ok)
		assert.Equal(t, tt.mode, form.Mode())
	}
}

func TestBuildRouteTable_RejectsOneOffRecurringEdit(t *testing.T) {
	table, err := BuildRouteTable(testutil.SampleDeps(true))
	require.NoError(t, err)
	nav, err := navigation.New(table, routes.MainDestination{})
	require.NoError(t, err)

	oneOff := testutil.SampleExpense()
	oneOff.Recurring = nil
	err = nav.Navigate(context.Background(), routes.RecurringExpenseEditDestination{Date: oneOff.Date, Expense: oneOff})

	var decodeErr *navigation.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "edited_expense.recurring", decodeErr.Field)
	assert.ErrorIs(t, err, navigation.ErrMissingField)
	assert.Equal(t, 1, nav.Len())
}
