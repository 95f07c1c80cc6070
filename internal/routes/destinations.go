// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package routes defines every screen the app can navigate to, together with
// the codec that persists its arguments on the back stack.
package routes

import (
	"slices"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/navigation"
)

const (
	Main                 navigation.Route = "main"
	Onboarding           navigation.Route = "onboarding"
	Premium              navigation.Route = "premium"
	MonthlyReport        navigation.Route = "monthly_report"
	MonthlyReportExport  navigation.Route = "monthly_report_export"
	ManageAccount        navigation.Route = "manage_account"
	Accounts             navigation.Route = "accounts"
	Settings             navigation.Route = "settings"
	BackupSettings       navigation.Route = "backup_settings"
	Login                navigation.Route = "login"
	CreateAccount        navigation.Route = "create_account"
	ExpenseAdd           navigation.Route = "expense_add"
	ExpenseEdit          navigation.Route = "expense_edit"
	RecurringExpenseAdd  navigation.Route = "recurring_expense_add"
	RecurringExpenseEdit navigation.Route = "recurring_expense_edit"
)

var allRoutes = []navigation.Route{
	Main,
	Onboarding,
	Premium,
	MonthlyReport,
	MonthlyReportExport,
	ManageAccount,
	Accounts,
	Settings,
	BackupSettings,
	Login,
	CreateAccount,
	ExpenseAdd,
	ExpenseEdit,
	RecurringExpenseAdd,
	RecurringExpenseEdit,
}

// AllRoutes returns every route a route table must register.
func AllRoutes() []navigation.Route {
	return slices.Clone(allRoutes)
}

// MainDestination is the budget calendar, the root of the back stack.
type MainDestination struct{}

func (MainDestination) Route() navigation.Route { return Main }

type OnboardingDestination struct{}

func (OnboardingDestination) Route() navigation.Route { return Onboarding }

type PremiumDestination struct {
	StartOnPro bool
}

func (PremiumDestination) Route() navigation.Route { return Premium }

type MonthlyReportDestination struct {
	FromNotification bool
}

func (MonthlyReportDestination) Route() navigation.Route { return MonthlyReport }

type MonthlyReportExportDestination struct {
	Month budget.YearMonth
}

func (MonthlyReportExportDestination) Route() navigation.Route { return MonthlyReportExport }

type ManageAccountDestination struct {
	Account budget.OnlineAccount
}

func (ManageAccountDestination) Route() navigation.Route { return ManageAccount }

// AccountsDestination lists the accounts, highlighting Selected.
type AccountsDestination struct {
	Selected budget.SelectedAccount
}

func (AccountsDestination) Route() navigation.Route { return Accounts }

type SettingsDestination struct{}

func (SettingsDestination) Route() navigation.Route { return Settings }

type BackupSettingsDestination struct{}

func (BackupSettingsDestination) Route() navigation.Route { return BackupSettings }

type LoginDestination struct {
	ShouldDismissAfterAuth bool
}

func (LoginDestination) Route() navigation.Route { return Login }

type CreateAccountDestination struct{}

func (CreateAccountDestination) Route() navigation.Route { return CreateAccount }

type ExpenseAddDestination struct {
	Date budget.Date
}

func (ExpenseAddDestination) Route() navigation.Route { return ExpenseAdd }

type ExpenseEditDestination struct {
	Date    budget.Date
	Expense budget.Expense
}

func (ExpenseEditDestination) Route() navigation.Route { return ExpenseEdit }

type RecurringExpenseAddDestination struct {
	Date budget.Date
}

func (RecurringExpenseAddDestination) Route() navigation.Route { return RecurringExpenseAdd }

type RecurringExpenseEditDestination struct {
	Date    budget.Date
	Expense budget.Expense
}

func (RecurringExpenseEditDestination) Route() navigation.Route { return RecurringExpenseEdit }
