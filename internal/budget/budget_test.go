// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	t.Run("epoch day of known dates", func(t *testing.T) {
		assert.Equal(t, int64(0), DateOf(1970, time.January, 1).EpochDay())
		assert.Equal(t, int64(-1), DateOf(1969, time.December, 31).EpochDay())
		assert.Equal(t, int64(19723), DateOf(2024, time.January, 1).EpochDay())
	})

	t.Run("epoch day round trip", func(t *testing.T) {
		for _, n := range []int64{-400, -1, 0, 1, 19723, 20000} {
			assert.Equal(t, n, DateFromEpochDay(n).EpochDay())
		}
	})

	t.Run("from time ignores time of day", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*60*60)
		tm := time.Date(2025, time.March, 3, 23, 30, 0, 0, loc)
		assert.Equal(t, DateOf(2025, time.March, 3), DateFromTime(tm))
	})

	t.Run("string and month", func(t *testing.T) {
		d := DateOf(2025, time.February, 28)
		assert.Equal(t, "2025-02-28", d.String())
		assert.Equal(t, YearMonthOf(2025, time.February), d.YearMonth())
		assert.Equal(t, "2025-03-01", d.AddDays(1).String())
		assert.True(t, d.Before(d.AddDays(1)))
	})
}

func TestYearMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantYear  int
		wantMonth time.Month
	}{
		{"plain", 2025, time.June, 2025, time.June},
		{"overflow", 2025, 13, 2026, time.January},
		{"underflow", 2025, 0, 2024, time.December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ym := YearMonthOf(tt.year, tt.month)
			assert.Equal(t, tt.wantYear, ym.Year())
			assert.Equal(t, tt.wantMonth, ym.Month())
		})
	}

	t.Run("next and previous cross years", func(t *testing.T) {
		dec := YearMonthOf(2024, time.December)
		assert.Equal(t, YearMonthOf(2025, time.January), dec.Next())
		assert.Equal(t, dec, dec.Next().Previous())
		assert.Equal(t, "2024-12", dec.String())
		assert.Equal(t, DateOf(2024, time.December, 1), dec.FirstDay())
	})

	t.Run("zero value is January of year 0", func(t *testing.T) {
		var zero YearMonth
		assert.Equal(t, time.January, zero.Month())
		assert.Equal(t, YearMonthOf(0, time.January), zero)
		assert.Equal(t, "0000-01", zero.String())
	})
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "$12.34", Money(1234).Format("$"))
	assert.Equal(t, "-€0.05", Money(-5).Format("€"))
	assert.Equal(t, "₹0.00", Money(0).Format("₹"))
}

func TestExpense(t *testing.T) {
	e := Expense{Title: "Salary", Amount: -250000}
	assert.True(t, e.IsRevenue())
	assert.False(t, e.IsRecurring())

	e.Recurring = &Recurrence{ID: 3, Type: RecurringMonthly}
	assert.True(t, e.IsRecurring())

	rt, ok := ParseRecurringType("BI_WEEKLY")
	assert.True(t, ok)
	assert.Equal(t, RecurringBiWeekly, rt)

	_, ok = ParseRecurringType("fortnightly")
	assert.False(t, ok)
}

func TestSelectedAccount(t *testing.T) {
	var selected SelectedAccount = OnlineAccount{Name: "Shared"}
	assert.Equal(t, "Shared (online)", selected.DisplayName())

	selected = OfflineAccount{}
	assert.Equal(t, "Default (offline)", selected.DisplayName())
}
