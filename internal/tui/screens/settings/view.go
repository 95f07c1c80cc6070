// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	"github.com/samber/lo"

	"github.com/easybudget/easybudget/internal/tui/layout"
)

// View renders the settings screen
func (m *Model) View() string {
	labels := lo.Map(m.options, func(o option, _ int) string {
		return o.label
	})
	return layout.RenderLayout(layout.RenderMenu(labels, m.selectedIndex), m.GetLayoutInfo(), m.width, m.height)
}
