// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package expense

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/logger"
	"github.com/easybudget/easybudget/internal/tui/layout"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Mode selects which of the four expense routes the screen serves.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
	ModeRecurringAdd
	ModeRecurringEdit
)

func (m Mode) recurring() bool {
	return m == ModeRecurringAdd || m == ModeRecurringEdit
}

func (m Mode) editing() bool {
	return m == ModeEdit || m == ModeRecurringEdit
}

// Model is the add/edit form for one-off and recurring entries.
type Model struct {
	deps      screens.Deps
	mode      Mode
	date      budget.Date
	original  budget.Expense
	form      *huh.Form
	title     string
	amount    string
	revenue   bool
	recurring string
	width     int
	height    int
	log       zerolog.Logger
}

// NewAdd creates an empty form for date.
func NewAdd(deps screens.Deps, date budget.Date, recurring bool) *Model {
	mode := ModeAdd
	if recurring {
		mode = ModeRecurringAdd
	}
	m := &Model{
		deps:      deps,
		mode:      mode,
		date:      date,
		original:  budget.Expense{Date: date},
		recurring: string(budget.RecurringMonthly),
		width:     80,
		height:    24,
		log:       logger.GetTUILogger(),
	}
	m.initForm()
	return m
}

// NewEdit creates a form prefilled with e.
func NewEdit(deps screens.Deps, date budget.Date, e budget.Expense, recurring bool) *Model {
	mode := ModeEdit
	if recurring {
		mode = ModeRecurringEdit
	}
	amount := e.Amount
	if amount < 0 {
		amount = -amount
	}
	m := &Model{
		deps:      deps,
		mode:      mode,
		date:      date,
		original:  e,
		title:     e.Title,
		amount:    amount.Format(""),
		revenue:   e.IsRevenue(),
		recurring: string(budget.RecurringMonthly),
		width:     80,
		height:    24,
		log:       logger.GetTUILogger(),
	}
	if e.Recurring != nil {
		m.recurring = string(e.Recurring.Type)
	}
	m.initForm()
	return m
}

func (m *Model) initForm() {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Groceries").
			Value(&m.title).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("title is required")
				}
				return nil
			}),
		huh.NewInput().
			Key("amount").
			Title("Amount").
			Placeholder("12.50").
			Value(&m.amount).
			Validate(func(s string) error {
				_, err := ParseAmount(s)
				return err
			}),
		huh.NewConfirm().
			Key("revenue").
			Title("Is this a revenue?").
			Value(&m.revenue),
	}
	if m.mode.recurring() {
		options := lo.Map(budget.RecurringTypes(), func(t budget.RecurringType, _ int) huh.Option[string] {
			return huh.NewOption(strings.ReplaceAll(string(t), "_", " "), string(t))
		})
		fields = append(fields, huh.NewSelect[string]().
			Key("recurring").
			Title("Repeats").
			Options(options...).
			Value(&m.recurring))
	}
	m.form = huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// GetLayoutInfo returns layout information for the expense screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	title := "Add expense"
	switch m.mode {
	case ModeEdit:
		title = "Edit expense"
	case ModeRecurringAdd:
		title = "Add recurring expense"
	case ModeRecurringEdit:
		title = "Edit recurring expense"
	}
	return layout.LayoutInfo{
		Title:       title,
		Breadcrumbs: []string{"Budget", title},
		Status:      m.date.String(),
		HelpItems: []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "save"},
			{Key: "esc", Description: "cancel"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	if dims.Valid {
		m.form = m.form.WithWidth(dims.Width).WithHeight(dims.Height)
	}
}

// Mode returns the route the screen serves.
func (m *Model) Mode() Mode {
	return m.mode
}

// Build validates the entered values and returns the resulting expense.
func (m *Model) Build() (budget.Expense, error) {
	title := strings.TrimSpace(m.title)
	if title == "" {
		return budget.Expense{}, errors.New("title is required")
	}
	amount, err := ParseAmount(m.amount)
	if err != nil {
		return budget.Expense{}, err
	}
	if m.revenue {
		amount = -amount
	}

	e := m.original
	e.Title = title
	e.Amount = amount
	e.Date = m.date
	if m.mode.recurring() {
		kind, ok := budget.ParseRecurringType(m.recurring)
		if !ok {
			return budget.Expense{}, fmt.Errorf("unknown recurrence %q", m.recurring)
		}
		recurrence := budget.Recurrence{Type: kind}
		if e.Recurring != nil {
			recurrence.ID = e.Recurring.ID
		}
		e.Recurring = &recurrence
	}
	return e, nil
}

// ParseAmount reads a positive decimal amount with at most two decimals.
func ParseAmount(s string) (budget.Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, errors.New("amount is required")
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an amount", s)
	}
	if value <= 0 {
		return 0, errors.New("amount must be positive")
	}
	cents := math.Round(value * 100)
	if math.Abs(value*100-cents) > 1e-6 {
		return 0, errors.New("amount has more than two decimals")
	}
	return budget.Money(cents), nil
}
