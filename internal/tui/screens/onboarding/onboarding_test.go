// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package onboarding

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/easybudget/easybudget/internal/tui/screens"
	"github.com/easybudget/easybudget/test/testutil"
)

func TestModel_Pages(t *testing.T) {
	m := New(testutil.SampleDeps(false))
	assert.Equal(t, "Step 1 of 3", m.GetLayoutInfo().Status)

	testutil.SendMessage(m, testutil.SpecialKey(tea.KeyLeft))
	assert.Equal(t, 0, m.page)

	testutil.SendMessage(m, testutil.SpecialKey(tea.KeyRight))
	assert.Equal(t, "Step 2 of 3", m.GetLayoutInfo().Status)

	testutil.SendMessage(m, testutil.KeyPress("h"))
	assert.Equal(t, 0, m.page)
}

func TestModel_Complete(t *testing.T) {
	deps := testutil.SampleDeps(false)
	m := New(deps)

	for range len(pages) - 1 {
		_, cmd := testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEnter))
		testutil.AssertNoCommand(t, cmd)
	}
	assert.False(t, deps.Preferences.OnboardingCompleted())

	_, cmd := testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEnter))
	assert.Equal(t, screens.OnboardingCompleted, testutil.AssertGoBack(t, cmd))
	assert.True(t, deps.Preferences.OnboardingCompleted())
}

func TestModel_Leave(t *testing.T) {
	deps := testutil.SampleDeps(false)
	m := New(deps)
	testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEnter))

	_, cmd := testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEsc))
	assert.Equal(t, screens.OnboardingNotCompleted, testutil.AssertGoBack(t, cmd))
	assert.False(t, deps.Preferences.OnboardingCompleted())
}

func TestModel_Quit(t *testing.T) {
	m := New(testutil.SampleDeps(false))
	_, cmd := testutil.SendMessage(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	testutil.AssertQuitMessage(t, cmd)
}

func TestModel_View(t *testing.T) {
	m := New(testutil.SampleDeps(false))
	testutil.SendMessage(m, testutil.WindowSizeMsg(100, 30))
	testutil.AssertViewContains(t, m, "Track every expense")

	testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEnter))
	testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEnter))
	testutil.AssertViewContains(t, m, "Press enter to start budgeting")
}

func TestOnboardingResult_String(t *testing.T) {
	assert.Equal(t, "completed", screens.OnboardingCompleted.String())
	assert.Equal(t, "not_completed", screens.OnboardingNotCompleted.String())
	assert.Equal(t, "unknown", screens.OnboardingResult(0).String())
}
