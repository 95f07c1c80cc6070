// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package routes

import (
	"fmt"
	"slices"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/navigation"
)

// Signal is an asynchronous request to open a screen, raised by deep links
// and notifications.
type Signal string

const (
	OpenPremium             Signal = "open_premium"
	OpenAddExpense          Signal = "open_add_expense"
	OpenAddRecurringExpense Signal = "open_add_recurring_expense"
	OpenMonthlyReport       Signal = "open_monthly_report"
)

var allSignals = []Signal{
	OpenPremium,
	OpenAddExpense,
	OpenAddRecurringExpense,
	OpenMonthlyReport,
}

// AllSignals returns the signal kinds in the order they are drained.
func AllSignals() []Signal {
	return slices.Clone(allSignals)
}

// NewSignals creates the signal channels for every kind.
func NewSignals() *navigation.Signals[Signal] {
	return navigation.NewSignals(allSignals...)
}

// ParseSignal returns the Signal named s.
func ParseSignal(s string) (Signal, error) {
	if slices.Contains(allSignals, Signal(s)) {
		return Signal(s), nil
	}
	return "", fmt.Errorf("unknown signal %q", s)
}

// SignalDestination returns the screen a signal opens. today is the date
// new expenses default to.
func SignalDestination(kind Signal, today budget.Date) (navigation.Destination, bool) {
	switch kind {
	case OpenPremium:
		return PremiumDestination{StartOnPro: false}, true
	case OpenAddExpense:
		return ExpenseAddDestination{Date: today}, true
	case OpenAddRecurringExpense:
		return RecurringExpenseAddDestination{Date: today}, true
	case OpenMonthlyReport:
		return MonthlyReportDestination{FromNotification: true}, true
	default:
		return nil, false
	}
}
