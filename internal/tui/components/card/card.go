// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package card renders a bordered box with a title row and an optional footer row.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/easybudget/easybudget/internal/tui/layout"
)

// minWidth keeps the border from collapsing on tiny terminals.
const minWidth = 20

// Style controls how a card is drawn.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	// Width is the outer width including the border. Zero sizes the card to its content.
	Width int
}

// DefaultStyle returns the rounded card used across the screens.
func DefaultStyle() Style {
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: layout.BorderColor,
		TitleColor:  layout.PrimaryColor,
	}
}

// WithWidth returns a copy of s with the given outer width.
func (s Style) WithWidth(width int) Style {
	if width > 0 && width < minWidth {
		width = minWidth
	}
	s.Width = width
	return s
}

// Card is a titled block of lines with an optional footer separated by a blank line.
type Card struct {
	Title  string
	Lines  []string
	Footer string
}

// Render draws c with style.
func Render(c Card, style Style) string {
	var rows []string
	if c.Title != "" {
		rows = append(rows,
			lipgloss.NewStyle().Foreground(style.TitleColor).Bold(true).Render(c.Title),
			"",
		)
	}
	rows = append(rows, c.Lines...)
	if c.Footer != "" {
		rows = append(rows, "", c.Footer)
	}

	box := lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		Padding(0, 1)
	if style.Width > 0 {
		// lipgloss widths exclude the border
		box = box.Width(style.Width - 2)
	}
	return box.Render(strings.Join(rows, "\n"))
}
