// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/screens"
	"github.com/easybudget/easybudget/internal/tui/screens/accounts"
	"github.com/easybudget/easybudget/internal/tui/screens/expense"
	"github.com/easybudget/easybudget/internal/tui/screens/home"
	"github.com/easybudget/easybudget/internal/tui/screens/info"
	"github.com/easybudget/easybudget/internal/tui/screens/onboarding"
	"github.com/easybudget/easybudget/internal/tui/screens/settings"
)

// ScreenTable maps every route to the screen that renders it.
type ScreenTable = navigation.RouteTable[screens.Screen]

// BuildRouteTable registers a screen for every route and fails if any route
// of the application is left without one.
func BuildRouteTable(deps screens.Deps) (*ScreenTable, error) {
	t := navigation.NewRouteTable[screens.Screen]()

	navigation.Register(t, routes.MainCodec, func(_ routes.MainDestination, sc *navigation.ScreenContext) (screens.Screen, error) {
		return home.New(deps, sc), nil
	})
	navigation.Register(t, routes.OnboardingCodec, func(routes.OnboardingDestination, *navigation.ScreenContext) (screens.Screen, error) {
		return onboarding.New(deps), nil
	})
	navigation.Register(t, routes.PremiumCodec, func(d routes.PremiumDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return info.New(info.Premium(d)), nil
	})
	navigation.Register(t, routes.MonthlyReportCodec, func(d routes.MonthlyReportDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return info.New(info.MonthlyReport(deps, d)), nil
	})
	navigation.Register(t, routes.MonthlyReportExportCodec, func(d routes.MonthlyReportExportDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return info.New(info.MonthlyReportExport(d)), nil
	})
	navigation.Register(t, routes.ManageAccountCodec, func(d routes.ManageAccountDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return info.New(info.ManageAccount(d)), nil
	})
	navigation.Register(t, routes.AccountsCodec, func(d routes.AccountsDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return accounts.New(deps, d.Selected), nil
	})
	navigation.Register(t, routes.SettingsCodec, func(_ routes.SettingsDestination, sc *navigation.ScreenContext) (screens.Screen, error) {
		return settings.NewModel(deps, sc), nil
	})
	navigation.Register(t, routes.BackupSettingsCodec, func(routes.BackupSettingsDestination, *navigation.ScreenContext) (screens.Screen, error) {
		return info.New(info.BackupSettings()), nil
	})
	navigation.Register(t, routes.LoginCodec, func(d routes.LoginDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return info.New(info.Login(d)), nil
	})
	navigation.Register(t, routes.CreateAccountCodec, func(routes.CreateAccountDestination, *navigation.ScreenContext) (screens.Screen, error) {
		return info.New(info.CreateAccount()), nil
	})
	navigation.Register(t, routes.ExpenseAddCodec, func(d routes.ExpenseAddDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return expense.NewAdd(deps, d.Date, false), nil
	})
	navigation.Register(t, routes.ExpenseEditCodec, func(d routes.ExpenseEditDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return expense.NewEdit(deps, d.Date, d.Expense, false), nil
	})
	navigation.Register(t, routes.RecurringExpenseAddCodec, func(d routes.RecurringExpenseAddDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return expense.NewAdd(deps, d.Date, true), nil
	})
	// The codec rejects an edited expense without a recurrence.
	navigation.Register(t, routes.RecurringExpenseEditCodec, func(d routes.RecurringExpenseEditDestination, _ *navigation.ScreenContext) (screens.Screen, error) {
		return expense.NewEdit(deps, d.Date, d.Expense, true), nil
	})

	if err := t.Validate(routes.AllRoutes()...); err != nil {
		return nil, err
	}
	return t, nil
}
