// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package accounts

import (
	"github.com/samber/lo"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/tui/layout"
)

// View renders the accounts screen
func (m *Model) View() string {
	labels := lo.Map(m.accounts, func(a budget.SelectedAccount, _ int) string {
		if online, ok := a.(budget.OnlineAccount); ok && !online.IsUserOwner {
			return a.DisplayName() + "  shared by " + online.OwnerEmail
		}
		return a.DisplayName()
	})
	return layout.RenderLayout(layout.RenderMenu(labels, m.cursor), m.GetLayoutInfo(), m.width, m.height)
}
