// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package routes

import (
	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/navigation"
)

type premiumWire struct {
	StartOnPro *bool `json:"start_on_pro"`
}

type monthlyReportWire struct {
	FromNotification *bool `json:"from_notification"`
}

type monthlyReportExportWire struct {
	Month *yearMonthWire `json:"month"`
}

type manageAccountWire struct {
	Account *onlineAccountWire `json:"account"`
}

type accountsWire struct {
	Selected *selectedAccountWire `json:"selected"`
}

type loginWire struct {
	ShouldDismissAfterAuth *bool `json:"should_dismiss_after_auth"`
}

type dateArgsWire struct {
	DateEpochDay *int64 `json:"date_epoch_day"`
}

type expenseArgsWire struct {
	DateEpochDay  *int64       `json:"date_epoch_day"`
	EditedExpense *expenseWire `json:"edited_expense"`
}

var (
	MainCodec           = navigation.EmptyCodec[MainDestination]()
	OnboardingCodec     = navigation.EmptyCodec[OnboardingDestination]()
	SettingsCodec       = navigation.EmptyCodec[SettingsDestination]()
	BackupSettingsCodec = navigation.EmptyCodec[BackupSettingsDestination]()
	CreateAccountCodec  = navigation.EmptyCodec[CreateAccountDestination]()

	PremiumCodec = navigation.JSONCodec(
		func(d PremiumDestination) premiumWire {
			return premiumWire{StartOnPro: &d.StartOnPro}
		},
		func(w premiumWire) (PremiumDestination, error) {
			startOnPro, err := navigation.Required("start_on_pro", w.StartOnPro)
			return PremiumDestination{StartOnPro: startOnPro}, err
		},
	)

	MonthlyReportCodec = navigation.JSONCodec(
		func(d MonthlyReportDestination) monthlyReportWire {
			return monthlyReportWire{FromNotification: &d.FromNotification}
		},
		func(w monthlyReportWire) (MonthlyReportDestination, error) {
			fromNotification, err := navigation.Required("from_notification", w.FromNotification)
			return MonthlyReportDestination{FromNotification: fromNotification}, err
		},
	)

	MonthlyReportExportCodec = navigation.JSONCodec(
		func(d MonthlyReportExportDestination) monthlyReportExportWire {
			month := yearMonthToWire(d.Month)
			return monthlyReportExportWire{Month: &month}
		},
		func(w monthlyReportExportWire) (MonthlyReportExportDestination, error) {
			wire, err := navigation.Required("month", w.Month)
			if err != nil {
				return MonthlyReportExportDestination{}, err
			}
			month, err := yearMonthFromWire(wire)
			if err != nil {
				return MonthlyReportExportDestination{}, navigation.Nested("month", err)
			}
			return MonthlyReportExportDestination{Month: month}, nil
		},
	)

	ManageAccountCodec = navigation.JSONCodec(
		func(d ManageAccountDestination) manageAccountWire {
			return manageAccountWire{Account: onlineAccountToWire(d.Account)}
		},
		func(w manageAccountWire) (ManageAccountDestination, error) {
			wire, err := navigation.Required("account", w.Account)
			if err != nil {
				return ManageAccountDestination{}, err
			}
			account, err := onlineAccountFromWire(&wire)
			if err != nil {
				return ManageAccountDestination{}, navigation.Nested("account", err)
			}
			return ManageAccountDestination{Account: account}, nil
		},
	)

	AccountsCodec = navigation.JSONCodec(
		func(d AccountsDestination) accountsWire {
			selected := selectedAccountToWire(d.Selected)
			return accountsWire{Selected: &selected}
		},
		func(w accountsWire) (AccountsDestination, error) {
			wire, err := navigation.Required("selected", w.Selected)
			if err != nil {
				return AccountsDestination{}, err
			}
			selected, err := selectedAccountFromWire(wire)
			if err != nil {
				return AccountsDestination{}, navigation.Nested("selected", err)
			}
			return AccountsDestination{Selected: selected}, nil
		},
	)

	LoginCodec = navigation.JSONCodec(
		func(d LoginDestination) loginWire {
			return loginWire{ShouldDismissAfterAuth: &d.ShouldDismissAfterAuth}
		},
		func(w loginWire) (LoginDestination, error) {
			dismiss, err := navigation.Required("should_dismiss_after_auth", w.ShouldDismissAfterAuth)
			return LoginDestination{ShouldDismissAfterAuth: dismiss}, err
		},
	)

	ExpenseAddCodec = navigation.JSONCodec(
		func(d ExpenseAddDestination) dateArgsWire { return dateArgsToWire(d.Date) },
		func(w dateArgsWire) (ExpenseAddDestination, error) {
			date, err := dateArgsFromWire(w)
			return ExpenseAddDestination{Date: date}, err
		},
	)

	ExpenseEditCodec = navigation.JSONCodec(
		func(d ExpenseEditDestination) expenseArgsWire { return expenseArgsToWire(d.Date, d.Expense) },
		func(w expenseArgsWire) (ExpenseEditDestination, error) {
			date, expense, err := expenseArgsFromWire(w)
			return ExpenseEditDestination{Date: date, Expense: expense}, err
		},
	)

	RecurringExpenseAddCodec = navigation.JSONCodec(
		func(d RecurringExpenseAddDestination) dateArgsWire { return dateArgsToWire(d.Date) },
		func(w dateArgsWire) (RecurringExpenseAddDestination, error) {
			date, err := dateArgsFromWire(w)
			return RecurringExpenseAddDestination{Date: date}, err
		},
	)

	RecurringExpenseEditCodec = navigation.JSONCodec(
		func(d RecurringExpenseEditDestination) expenseArgsWire {
			return expenseArgsToWire(d.Date, d.Expense)
		},
		func(w expenseArgsWire) (RecurringExpenseEditDestination, error) {
			date, expense, err := expenseArgsFromWire(w)
			if err == nil {
				if _, missing := navigation.Required("recurring", w.EditedExpense.Recurring); missing != nil {
					err = navigation.Nested("edited_expense", missing)
				}
			}
			return RecurringExpenseEditDestination{Date: date, Expense: expense}, err
		},
	)
)

func dateArgsToWire(d budget.Date) dateArgsWire {
	day := d.EpochDay()
	return dateArgsWire{DateEpochDay: &day}
}

func dateArgsFromWire(w dateArgsWire) (budget.Date, error) {
	day, err := navigation.Required("date_epoch_day", w.DateEpochDay)
	if err != nil {
		return budget.Date{}, err
	}
	return budget.DateFromEpochDay(day), nil
}

func expenseArgsToWire(d budget.Date, e budget.Expense) expenseArgsWire {
	day := d.EpochDay()
	expense := expenseToWire(e)
	return expenseArgsWire{DateEpochDay: &day, EditedExpense: &expense}
}

func expenseArgsFromWire(w expenseArgsWire) (budget.Date, budget.Expense, error) {
	date, err := dateArgsFromWire(dateArgsWire{DateEpochDay: w.DateEpochDay})
	if err != nil {
		return budget.Date{}, budget.Expense{}, err
	}
	wire, err := navigation.Required("edited_expense", w.EditedExpense)
	if err != nil {
		return budget.Date{}, budget.Expense{}, err
	}
	expense, err := expenseFromWire(wire)
	if err != nil {
		return budget.Date{}, budget.Expense{}, navigation.Nested("edited_expense", err)
	}
	return date, expense, nil
}
