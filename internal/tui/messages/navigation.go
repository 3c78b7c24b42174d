// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/welcome/internal/tui/navigation"
)

// Navigation requests. Screens return these from Update; the root model owns
// the route stack and applies them.

// GoBackMsg pops the current route if there is one to return to.
type GoBackMsg struct{}

// ResetNavigationMsg replaces the whole route stack with Routes.
type ResetNavigationMsg struct {
	Routes []navigation.Route
}

// ResetTo returns a command requesting a navigation reset.
func ResetTo(routes ...navigation.Route) tea.Cmd {
	return func() tea.Msg {
		return ResetNavigationMsg{Routes: routes}
	}
}

// GoBack returns a command requesting back navigation.
func GoBack() tea.Cmd {
	return func() tea.Msg {
		return GoBackMsg{}
	}
}
