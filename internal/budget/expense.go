// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package budget

import (
	"fmt"
	"slices"
	"strings"
)

// Money is an amount in cents.
type Money int64

// Format renders the amount with two decimals and the given currency symbol.
func (m Money) Format(symbol string) string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, cents/100, cents%100)
}

// RecurringType is how often a recurring expense repeats.
type RecurringType string

const (
	RecurringDaily          RecurringType = "daily"
	RecurringWeekly         RecurringType = "weekly"
	RecurringBiWeekly       RecurringType = "bi_weekly"
	RecurringTernaryWeekly  RecurringType = "ternary_weekly"
	RecurringMonthly        RecurringType = "monthly"
	RecurringBiMonthly      RecurringType = "bi_monthly"
	RecurringTernaryMonthly RecurringType = "ternary_monthly"
	RecurringSixMonthly     RecurringType = "six_monthly"
	RecurringYearly         RecurringType = "yearly"
)

var recurringTypes = []RecurringType{
	RecurringDaily, RecurringWeekly, RecurringBiWeekly, RecurringTernaryWeekly,
	RecurringMonthly, RecurringBiMonthly, RecurringTernaryMonthly, RecurringSixMonthly,
	RecurringYearly,
}

// RecurringTypes lists every recurrence, shortest period first.
func RecurringTypes() []RecurringType {
	return slices.Clone(recurringTypes)
}

// ParseRecurringType returns the RecurringType named s.
func ParseRecurringType(s string) (RecurringType, bool) {
	for _, t := range recurringTypes {
		if string(t) == strings.ToLower(s) {
			return t, true
		}
	}
	return "", false
}

// Recurrence links an expense occurrence to the recurring expense it belongs to.
type Recurrence struct {
	ID   int64
	Type RecurringType
}

// Expense is one budget entry. A negative amount is a revenue.
type Expense struct {
	ID        int64
	Title     string
	Amount    Money
	Date      Date
	Checked   bool
	Recurring *Recurrence
}

// IsRevenue reports whether the entry adds money to the budget.
func (e Expense) IsRevenue() bool {
	return e.Amount < 0
}

// IsRecurring reports whether the entry is an occurrence of a recurring expense.
func (e Expense) IsRecurring() bool {
	return e.Recurring != nil
}
