// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"time"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Sample data creators for consistent testing

// FixedNow is the clock every screen test runs at: 2025-03-14 09:30 UTC.
func FixedNow() time.Time {
	return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
}

// SharedAccount returns an online account owned by someone else
func SharedAccount() budget.OnlineAccount {
	return budget.OnlineAccount{
		ID:          "acc-shared",
		Name:        "Shared",
		OwnerEmail:  "alex@example.com",
		IsUserOwner: false,
		Secret:      "s3cr3t",
	}
}

// FamilyAccount returns an online account owned by the user
func FamilyAccount() budget.OnlineAccount {
	return budget.OnlineAccount{
		ID:          "acc-family",
		Name:        "Family",
		OwnerEmail:  "me@example.com",
		IsUserOwner: true,
		Secret:      "f4m1ly",
	}
}

// SampleExpense returns a recurring expense dated on the fixed clock
func SampleExpense() budget.Expense {
	return budget.Expense{
		ID:      7,
		Title:   "Rent",
		Amount:  95000,
		Date:    budget.DateFromTime(FixedNow()),
		Checked: false,
		Recurring: &budget.Recurrence{
			ID:   2,
			Type: budget.RecurringMonthly,
		},
	}
}

// SampleDeps returns screen dependencies on the fixed clock with two online accounts
func SampleDeps(onboarded bool) screens.Deps {
	return screens.Deps{
		Now:         FixedNow,
		Currency:    "$",
		Flavor:      "easybudget",
		Accounts:    screens.StaticAccounts{SharedAccount(), FamilyAccount()},
		Preferences: screens.NewMemoryPreferences(onboarded),
	}
}
