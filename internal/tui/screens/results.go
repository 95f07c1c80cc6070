// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import "github.com/easybudget/easybudget/internal/budget"

// OnboardingResult is what the onboarding flow returns to the screen that opened it.
type OnboardingResult int

const (
	OnboardingCompleted OnboardingResult = iota + 1
	OnboardingNotCompleted
)

func (r OnboardingResult) String() string {
	switch r {
	case OnboardingCompleted:
		return "completed"
	case OnboardingNotCompleted:
		return "not_completed"
	default:
		return "unknown"
	}
}

// AccountSelected is returned by the accounts screen when the user picks one.
type AccountSelected struct {
	Account budget.SelectedAccount
}

// ExpenseSaved is returned by the expense screens after a valid submit.
type ExpenseSaved struct {
	Expense budget.Expense
	Edited  bool
}
