// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package routes

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/navigation"
)

// Wire shapes of the argument types. Every field is a pointer so a missing
// field can be told apart from a zero value.

type yearMonthWire struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
}

type dateWire struct {
	EpochDay *int64 `json:"epoch_day"`
}

// Account discriminants.
const (
	accountTypeOffline = "offline"
	accountTypeOnline  = "online"
)

type onlineAccountWire struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	OwnerEmail  *string `json:"owner_email"`
	IsUserOwner *bool   `json:"is_user_owner"`
	Secret      *string `json:"secret"`
}

type selectedAccountWire struct {
	Type        *string `json:"type"`
	ID          *string `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	OwnerEmail  *string `json:"owner_email,omitempty"`
	IsUserOwner *bool   `json:"is_user_owner,omitempty"`
	Secret      *string `json:"secret,omitempty"`
}

type recurrenceWire struct {
	ID   *int64  `json:"id"`
	Type *string `json:"type"`
}

type expenseWire struct {
	ID           *int64          `json:"id"`
	Title        *string         `json:"title"`
	AmountCents  *int64          `json:"amount_cents"`
	DateEpochDay *int64          `json:"date_epoch_day"`
	Checked      *bool           `json:"checked"`
	Recurring    *recurrenceWire `json:"recurring,omitempty"`
}

// EncodeYearMonth returns {"year":Y,"month":M}.
func EncodeYearMonth(ym budget.YearMonth) json.RawMessage {
	return navigation.MustMarshal(yearMonthToWire(ym))
}

// DecodeYearMonth parses the output of EncodeYearMonth.
func DecodeYearMonth(raw json.RawMessage) (budget.YearMonth, error) {
	var w yearMonthWire
	if err := navigation.Unmarshal("", raw, &w); err != nil {
		return budget.YearMonth{}, err
	}
	return yearMonthFromWire(w)
}

// EncodeDate returns {"epoch_day":N}.
func EncodeDate(d budget.Date) json.RawMessage {
	n := d.EpochDay()
	return navigation.MustMarshal(dateWire{EpochDay: &n})
}

// DecodeDate parses the output of EncodeDate.
func DecodeDate(raw json.RawMessage) (budget.Date, error) {
	var w dateWire
	if err := navigation.Unmarshal("", raw, &w); err != nil {
		return budget.Date{}, err
	}
	n, err := navigation.Required("epoch_day", w.EpochDay)
	if err != nil {
		return budget.Date{}, err
	}
	return budget.DateFromEpochDay(n), nil
}

// EncodeSelectedAccount writes the variant name under "type", followed by
// the online account fields when there are any. A nil account panics.
func EncodeSelectedAccount(account budget.SelectedAccount) json.RawMessage {
	return navigation.MustMarshal(selectedAccountToWire(account))
}

// DecodeSelectedAccount parses the output of EncodeSelectedAccount.
func DecodeSelectedAccount(raw json.RawMessage) (budget.SelectedAccount, error) {
	var w selectedAccountWire
	if err := navigation.Unmarshal("", raw, &w); err != nil {
		return nil, err
	}
	return selectedAccountFromWire(w)
}

// EncodeExpense returns the field-named form of e.
func EncodeExpense(e budget.Expense) json.RawMessage {
	return navigation.MustMarshal(expenseToWire(e))
}

// DecodeExpense parses the output of EncodeExpense.
func DecodeExpense(raw json.RawMessage) (budget.Expense, error) {
	var w expenseWire
	if err := navigation.Unmarshal("", raw, &w); err != nil {
		return budget.Expense{}, err
	}
	return expenseFromWire(w)
}

func yearMonthToWire(ym budget.YearMonth) yearMonthWire {
	year, month := ym.Year(), int(ym.Month())
	return yearMonthWire{Year: &year, Month: &month}
}

func yearMonthFromWire(w yearMonthWire) (budget.YearMonth, error) {
	year, err := navigation.Required("year", w.Year)
	if err != nil {
		return budget.YearMonth{}, err
	}
	month, err := navigation.Required("month", w.Month)
	if err != nil {
		return budget.YearMonth{}, err
	}
	if month < 1 || month > 12 {
		return budget.YearMonth{}, navigation.Invalid("month", "%d is not a month", month)
	}
	return budget.YearMonthOf(year, time.Month(month)), nil
}

func onlineAccountToWire(a budget.OnlineAccount) *onlineAccountWire {
	return &onlineAccountWire{
		ID:          &a.ID,
		Name:        &a.Name,
		OwnerEmail:  &a.OwnerEmail,
		IsUserOwner: &a.IsUserOwner,
		Secret:      &a.Secret,
	}
}

func onlineAccountFromWire(w *onlineAccountWire) (budget.OnlineAccount, error) {
	var (
		a   budget.OnlineAccount
		err error
	)
	if a.ID, err = navigation.Required("id", w.ID); err != nil {
		return a, err
	}
	if a.Name, err = navigation.Required("name", w.Name); err != nil {
		return a, err
	}
	if a.OwnerEmail, err = navigation.Required("owner_email", w.OwnerEmail); err != nil {
		return a, err
	}
	if a.IsUserOwner, err = navigation.Required("is_user_owner", w.IsUserOwner); err != nil {
		return a, err
	}
	if a.Secret, err = navigation.Required("secret", w.Secret); err != nil {
		return a, err
	}
	if a.ID == "" {
		return a, navigation.Invalid("id", "empty account id")
	}
	return a, nil
}

func selectedAccountToWire(account budget.SelectedAccount) selectedAccountWire {
	switch a := account.(type) {
	case budget.OnlineAccount:
		kind := accountTypeOnline
		return selectedAccountWire{
			Type:        &kind,
			ID:          &a.ID,
			Name:        &a.Name,
			OwnerEmail:  &a.OwnerEmail,
			IsUserOwner: &a.IsUserOwner,
			Secret:      &a.Secret,
		}
	case budget.OfflineAccount:
		kind := accountTypeOffline
		return selectedAccountWire{Type: &kind}
	case nil:
		panic("routes: encode nil SelectedAccount")
	default:
		panic(fmt.Sprintf("routes: encode unknown SelectedAccount %T", account))
	}
}

func selectedAccountFromWire(w selectedAccountWire) (budget.SelectedAccount, error) {
	kind, err := navigation.Required("type", w.Type)
	if err != nil {
		return nil, err
	}
	switch kind {
	case accountTypeOffline:
		return budget.OfflineAccount{}, nil
	case accountTypeOnline:
		return onlineAccountFromWire(&onlineAccountWire{
			ID:          w.ID,
			Name:        w.Name,
			OwnerEmail:  w.OwnerEmail,
			IsUserOwner: w.IsUserOwner,
			Secret:      w.Secret,
		})
	default:
		return nil, navigation.Invalid("type", "unknown account type %q", kind)
	}
}

func expenseToWire(e budget.Expense) expenseWire {
	amount := int64(e.Amount)
	day := e.Date.EpochDay()
	w := expenseWire{
		ID:           &e.ID,
		Title:        &e.Title,
		AmountCents:  &amount,
		DateEpochDay: &day,
		Checked:      &e.Checked,
	}
	if e.Recurring != nil {
		kind := string(e.Recurring.Type)
		w.Recurring = &recurrenceWire{ID: &e.Recurring.ID, Type: &kind}
	}
	return w
}

func expenseFromWire(w expenseWire) (budget.Expense, error) {
	var (
		e   budget.Expense
		err error
	)
	if e.ID, err = navigation.Required("id", w.ID); err != nil {
		return e, err
	}
	if e.Title, err = navigation.Required("title", w.Title); err != nil {
		return e, err
	}
	amount, err := navigation.Required("amount_cents", w.AmountCents)
	if err != nil {
		return e, err
	}
	e.Amount = budget.Money(amount)
	day, err := navigation.Required("date_epoch_day", w.DateEpochDay)
	if err != nil {
		return e, err
	}
	e.Date = budget.DateFromEpochDay(day)
	if e.Checked, err = navigation.Required("checked", w.Checked); err != nil {
		return e, err
	}
	if w.Recurring != nil {
		recurrence, err := recurrenceFromWire(*w.Recurring)
		if err != nil {
			return e, navigation.Nested("recurring", err)
		}
		e.Recurring = &recurrence
	}
	return e, nil
}

func recurrenceFromWire(w recurrenceWire) (budget.Recurrence, error) {
	id, err := navigation.Required("id", w.ID)
	if err != nil {
		return budget.Recurrence{}, err
	}
	name, err := navigation.Required("type", w.Type)
	if err != nil {
		return budget.Recurrence{}, err
	}
	kind, ok := budget.ParseRecurringType(name)
	if !ok {
		return budget.Recurrence{}, navigation.Invalid("type", "unknown recurring type %q", name)
	}
	return budget.Recurrence{ID: id, Type: kind}, nil
}
