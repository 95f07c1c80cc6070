// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/tui/messages"
)

// AssertNavigateTo verifies that cmd requests navigation to want
func AssertNavigateTo(t *testing.T, cmd tea.Cmd, want navigation.Destination) {
	t.Helper()
	require.NotNil(t, cmd, "Expected a navigation command")
	msg, ok := ExecuteCommand(cmd).(messages.NavigateMsg)
	require.True(t, ok, "Expected messages.NavigateMsg")
	assert.Equal(t, want, msg.Destination)
}

// AssertGoBack verifies that cmd pops the screen and returns the result it carries
func AssertGoBack(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd, "Expected a back command")
	msg, ok := ExecuteCommand(cmd).(messages.GoBackMsg)
	require.True(t, ok, "Expected messages.GoBackMsg")
	return msg.Result
}

// AssertQuitMessage verifies that a quit message was generated
func AssertQuitMessage(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	assert.NotNil(t, cmd, "Expected a command to be generated")
	assert.IsType(t, tea.QuitMsg{}, ExecuteCommand(cmd), "Expected quit message")
}

// AssertNoCommand verifies that no command was generated
func AssertNoCommand(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	assert.Nil(t, cmd, "Expected no command to be generated")
}

// AssertViewNotEmpty verifies that the view produces non-empty output
func AssertViewNotEmpty(t *testing.T, model tea.Model) {
	t.Helper()
	assert.NotEmpty(t, model.View(), "View should not be empty")
}
