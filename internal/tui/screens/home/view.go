// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package home

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/tui/components/card"
	"github.com/easybudget/easybudget/internal/tui/layout"
)

// View renders the home screen
func (m *Model) View() string {
	var content strings.Builder

	content.WriteString(layout.HeaderStyle.Render(m.account.DisplayName()))
	content.WriteString("\n\n")

	inMonth := lo.Filter(m.saved, func(e budget.Expense, _ int) bool {
		return e.Date.YearMonth() == m.month
	})
	lines := lo.Map(inMonth, func(e budget.Expense, _ int) string {
		style := layout.ExpenseStyle
		if e.IsRevenue() {
			style = layout.RevenueStyle
		}
		return fmt.Sprintf("%s  %-24s %s", e.Date, e.Title, style.Render(e.Amount.Format(m.deps.Currency)))
	})
	if len(lines) == 0 {
		lines = []string{layout.StatsStyle.Render("No entries this month")}
	}

	balance := lo.SumBy(inMonth, func(e budget.Expense) budget.Money { return -e.Amount })
	content.WriteString(card.Render(card.Card{
		Title:  m.month.Month().String() + " " + fmt.Sprint(m.month.Year()),
		Lines:  lines,
		Footer: layout.StatusStyle.Render("Balance: " + balance.Format(m.deps.Currency)),
	}, card.DefaultStyle().WithWidth(m.width)))

	return layout.RenderLayout(content.String(), m.GetLayoutInfo(), m.width, m.height)
}
