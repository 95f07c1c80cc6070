// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package screens holds what every screen shares: the Screen contract, the
// injected collaborators and the results screens hand back to each other.
package screens

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/tui/layout"
)

// Screen is a bubbletea model that lives on the back stack.
type Screen interface {
	tea.Model
	SetSize(width, height int)
	GetLayoutInfo() layout.LayoutInfo
}

// Deps are the collaborators screens are built with.
type Deps struct {
	Now         func() time.Time
	Currency    string
	Flavor      string
	Accounts    AccountDirectory
	Preferences Preferences
}

// Today returns the current civil date.
func (d Deps) Today() budget.Date {
	if d.Now == nil {
		return budget.DateFromTime(time.Now())
	}
	return budget.DateFromTime(d.Now())
}

// AccountDirectory lists the online accounts the user can switch to.
type AccountDirectory interface {
	OnlineAccounts() []budget.OnlineAccount
}

// StaticAccounts is an AccountDirectory backed by a fixed list.
type StaticAccounts []budget.OnlineAccount

func (s StaticAccounts) OnlineAccounts() []budget.OnlineAccount {
	return s
}

// Preferences holds the per-user flags screens consult.
type Preferences interface {
	OnboardingCompleted() bool
	SetOnboardingCompleted(bool)
	SelectedAccount() budget.SelectedAccount
	SetSelectedAccount(budget.SelectedAccount)
}

// MemoryPreferences keeps preferences for the lifetime of the process.
type MemoryPreferences struct {
	mu        sync.Mutex
	onboarded bool
	selected  budget.SelectedAccount
}

// NewMemoryPreferences starts on the offline account.
func NewMemoryPreferences(onboarded bool) *MemoryPreferences {
	return &MemoryPreferences{onboarded: onboarded, selected: budget.OfflineAccount{}}
}

func (p *MemoryPreferences) OnboardingCompleted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.onboarded
}

func (p *MemoryPreferences) SetOnboardingCompleted(done bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onboarded = done
}

func (p *MemoryPreferences) SelectedAccount() budget.SelectedAccount {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

// SetSelectedAccount stores account. nil stands for the offline account.
func (p *MemoryPreferences) SetSelectedAccount(account budget.SelectedAccount) {
	if account == nil {
		account = budget.OfflineAccount{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = account
}
