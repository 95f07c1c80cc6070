// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package budget holds the immutable values screens hand to each other:
// dates, months, accounts and expenses.
package budget

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date without time of day or location.
// It is stored as the number of days since 1970-01-01.
type Date struct {
	epochDay int64
}

// DateOf returns the date for the given year, month and day.
// Out-of-range values are normalized the way time.Date does.
func DateOf(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{epochDay: floorDiv(t.Unix(), secondsPerDay)}
}

// DateFromEpochDay returns the date n days after 1970-01-01.
func DateFromEpochDay(n int64) Date {
	return Date{epochDay: n}
}

// DateFromTime returns the calendar date of t in t's location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return DateOf(y, m, d)
}

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 {
	return d.epochDay
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Unix(d.epochDay*secondsPerDay, 0).UTC()
}

// YearMonth returns the month the date falls in.
func (d Date) YearMonth() YearMonth {
	t := d.Time()
	return YearMonthOf(t.Year(), t.Month())
}

// AddDays returns the date n days later (or earlier when n is negative).
func (d Date) AddDays(n int) Date {
	return Date{epochDay: d.epochDay + int64(n)}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.epochDay < other.epochDay
}

func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}

// YearMonth identifies a calendar month. The month is kept zero-based, so
// the zero value is January of year 0 and every value names a real month.
type YearMonth struct {
	year       int
	monthIndex int
}

// YearMonthOf returns the month for year/month. Months outside 1..12 roll over
// into the neighbouring years.
func YearMonthOf(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{year: t.Year(), monthIndex: int(t.Month()) - 1}
}

// Year returns the year.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month.
func (ym YearMonth) Month() time.Month {
	return time.Month(ym.monthIndex + 1)
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	return YearMonthOf(ym.year, ym.Month()+1)
}

// Previous returns the preceding month.
func (ym YearMonth) Previous() YearMonth {
	return YearMonthOf(ym.year, ym.Month()-1)
}

// FirstDay returns the first date of the month.
func (ym YearMonth) FirstDay() Date {
	return DateOf(ym.year, ym.Month(), 1)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, int(ym.Month()))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
