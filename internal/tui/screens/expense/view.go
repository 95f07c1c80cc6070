// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package expense

import (
	"github.com/easybudget/easybudget/internal/tui/layout"
)

// View renders the expense form
func (m *Model) View() string {
	return layout.RenderLayout(m.form.View(), m.GetLayoutInfo(), m.width, m.height)
}
