// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noldarim/welcome/internal/tui/messages"
	"github.com/noldarim/welcome/internal/tui/navigation"
)

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

// AssertResetTo verifies that cmd requests a navigation reset to routes.
func AssertResetTo(t *testing.T, cmd tea.Cmd, routes ...navigation.Route) {
	t.Helper()
	require.NotNil(t, cmd, "Expected a navigation command")

	var reset *messages.ResetNavigationMsg
	for _, msg := range CollectMessages(cmd) {
		if m, ok := msg.(messages.ResetNavigationMsg); ok {
			reset = &m
		}
	}
	require.NotNil(t, reset, "Expected ResetNavigationMsg")
	assert.Equal(t, routes, reset.Routes)
}
