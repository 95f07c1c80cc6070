// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/samber/lo"
)

// HelpItem represents a single help entry
type HelpItem struct {
	Key         string
	Description string
}

// HelpFromBindings turns enabled key bindings into footer entries.
func HelpFromBindings(bindings ...key.Binding) []HelpItem {
	enabled := lo.Filter(bindings, func(b key.Binding, _ int) bool {
		return b.Enabled()
	})
	return lo.Map(enabled, func(b key.Binding, _ int) HelpItem {
		h := b.Help()
		return HelpItem{Key: h.Key, Description: h.Desc}
	})
}

// RenderHeader creates a header with title, breadcrumbs, and optional status
func RenderHeader(title string, breadcrumbs []string, status string, width int) string {
	var header strings.Builder

	titleLine := TitleStyle.Render(title)
	if len(breadcrumbs) > 1 {
		breadcrumbText := strings.Join(breadcrumbs, BreadcrumbSeparator.String())
		titleLine += "  " + BreadcrumbStyle.Render(breadcrumbText)
	}
	header.WriteString(titleLine)

	if status != "" {
		header.WriteString("\n")
		header.WriteString(StatsStyle.Render(status))
	}

	header.WriteString("\n")
	header.WriteString(GetDivider(width))

	return header.String()
}

// RenderFooter creates a footer with help items
func RenderFooter(helpItems []HelpItem, width int) string {
	if len(helpItems) == 0 {
		return ""
	}

	helpTexts := lo.Map(helpItems, func(item HelpItem, _ int) string {
		return fmt.Sprintf("[%s] %s", HelpKeyStyle.Render(item.Key), HelpTextStyle.Render(item.Description))
	})

	return GetDivider(width) + "\n" + FooterStyle.Width(width).Render(strings.Join(helpTexts, " • "))
}

// RenderMenu renders one line per item with a cursor on the selected one.
func RenderMenu(items []string, selected int) string {
	var b strings.Builder
	for i, item := range items {
		if i == selected {
			b.WriteString(SelectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	return b.String()
}
