// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the minimum terminal width required
	MinimumWidth = 40
	// MinimumHeight fits the header, the footer and a few content lines
	MinimumHeight = 10
)

// LayoutInfo contains all the information needed to render a layout
type LayoutInfo struct {
	Title       string
	Breadcrumbs []string
	Status      string
	HelpItems   []HelpItem
}

// Dimensions represents the available space for content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks if the terminal has enough space to render properly
func ValidateSpace(width, height int) Dimensions {
	dims := Dimensions{Width: width, Height: height, Valid: true}
	switch {
	case width < MinimumWidth:
		dims.Valid = false
		dims.Error = fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth)
	case height < MinimumHeight:
		dims.Valid = false
		dims.Error = fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight)
	}
	return dims
}

// RenderLayout combines header, content, and footer into a complete screen.
// A terminal below the minimum size gets an explanation instead.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(dims.Error, width, height)
	}

	header := RenderHeader(info.Title, info.Breadcrumbs, info.Status, width)
	footer := RenderFooter(info.HelpItems, width)
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	// MaxHeight cuts overflowing content, Height pads short content.
	body := lipgloss.NewStyle().
		Width(width).
		MaxHeight(contentHeight).
		Height(contentHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// GetContentArea returns the space left for content once the header and
// footer of info are drawn.
func GetContentArea(info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	header := RenderHeader(info.Title, info.Breadcrumbs, info.Status, totalWidth)
	footer := RenderFooter(info.HelpItems, totalWidth)
	dims.Height = max(totalHeight-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	return dims
}

func renderSpaceError(message string, width, height int) string {
	lines := []string{
		"Terminal too small",
		"",
		message,
		"",
		fmt.Sprintf("Current: %dx%d", width, height),
		fmt.Sprintf("Minimum: %dx%d", MinimumWidth, MinimumHeight),
	}
	return ErrorStyle.
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}
