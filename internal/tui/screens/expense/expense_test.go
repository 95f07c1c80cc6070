// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package expense

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/test/testutil"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    budget.Money
		wantErr string
	}{
		{input: "12.50", want: 1250},
		{input: "12,5", want: 1250},
		{input: " 7 ", want: 700},
		{input: "0.01", want: 1},
		{input: "1999.99", want: 199999},
		{input: "", wantErr: "amount is required"},
		{input: "abc", wantErr: "is not an amount"},
		{input: "0", wantErr: "amount must be positive"},
		{input: "-3", wantErr: "amount must be positive"},
		{input: "1.234", wantErr: "more than two decimals"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAdd(t *testing.T) {
	date := budget.DateOf(2025, time.March, 14)

	m := NewAdd(testutil.SampleDeps(true), date, false)
	assert.Equal(t, ModeAdd, m.Mode())
	assert.Equal(t, "Add expense", m.GetLayoutInfo().Title)
	assert.Equal(t, "2025-03-14", m.GetLayoutInfo().Status)

	recurring := NewAdd(testutil.SampleDeps(true), date, true)
	assert.Equal(t, ModeRecurringAdd, recurring.Mode())
	assert.Equal(t, "Add recurring expense", recurring.GetLayoutInfo().Title)
}

func TestNewEdit(t *testing.T) {
	e := testutil.SampleExpense()
	e.Amount = -120000

	m := NewEdit(testutil.SampleDeps(true), e.Date, e, true)
	assert.Equal(t, ModeRecurringEdit, m.Mode())
	assert.Equal(t, "Edit recurring expense", m.GetLayoutInfo().Title)
	assert.Equal(t, "Rent", m.title)
	assert.Equal(t, "1200.00", m.amount)
	assert.True(t, m.revenue)
	assert.Equal(t, "monthly", m.recurring)
}

func TestBuild(t *testing.T) {
	date := budget.DateOf(2025, time.March, 14)

	t.Run("one-off expense", func(t *testing.T) {
		m := NewAdd(testutil.SampleDeps(true), date, false)
		m.title = "  Coffee "
		m.amount = "3,20"

		e, err := m.Build()
		require.NoError(t, err)
		assert.Equal(t, "Coffee", e.Title)
		assert.Equal(t, budget.Money(320), e.Amount)
		assert.Equal(t, date, e.Date)
		assert.Nil(t, e.Recurring)
	})

	t.Run("revenue is stored negative", func(t *testing.T) {
		m := NewAdd(testutil.SampleDeps(true), date, false)
		m.title = "Salary"
		m.amount = "2500"
		m.revenue = true

		e, err := m.Build()
		require.NoError(t, err)
		assert.Equal(t, budget.Money(-250000), e.Amount)
		assert.True(t, e.IsRevenue())
	})

	t.Run("editing a recurring expense keeps its ids", func(t *testing.T) {
		original := testutil.SampleExpense()
		m := NewEdit(testutil.SampleDeps(true), original.Date, original, true)
		m.recurring = string(budget.RecurringYearly)

		e, err := m.Build()
		require.NoError(t, err)
		assert.Equal(t, original.ID, e.ID)
		require.NotNil(t, e.Recurring)
		assert.Equal(t, int64(2), e.Recurring.ID)
		assert.Equal(t, budget.RecurringYearly, e.Recurring.Type)
		assert.Equal(t, budget.RecurringMonthly, original.Recurring.Type)
	})

	t.Run("invalid values", func(t *testing.T) {
		m := NewAdd(testutil.SampleDeps(true), date, true)
		_, err := m.Build()
		assert.EqualError(t, err, "title is required")

		m.title = "Gym"
		m.amount = "x"
		_, err = m.Build()
		assert.Error(t, err)

		m.amount = "30"
		m.recurring = "hourly"
		_, err = m.Build()
		assert.EqualError(t, err, `unknown recurrence "hourly"`)
	})
}

func TestUpdate_Keys(t *testing.T) {
	date := budget.DateOf(2025, time.March, 14)

	t.Run("esc cancels without a result", func(t *testing.T) {
		m := NewAdd(testutil.SampleDeps(true), date, false)
		_, cmd := testutil.SendMessage(m, testutil.SpecialKey(tea.KeyEsc))
		assert.Nil(t, testutil.AssertGoBack(t, cmd))
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		m := NewAdd(testutil.SampleDeps(true), date, false)
		_, cmd := testutil.SendMessage(m, tea.KeyMsg{Type: tea.KeyCtrlC})
		testutil.AssertQuitMessage(t, cmd)
	})

	t.Run("window size is applied", func(t *testing.T) {
		m := NewAdd(testutil.SampleDeps(true), date, false)
		_, cmd := testutil.SendMessage(m, testutil.WindowSizeMsg(120, 40))
		testutil.AssertNoCommand(t, cmd)
		assert.Equal(t, 120, m.width)
		assert.Equal(t, 40, m.height)
	})
}
