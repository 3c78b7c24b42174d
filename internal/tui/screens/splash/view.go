// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package splash

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/welcome/internal/assets"
	"github.com/noldarim/welcome/internal/tui/components/fade"
	"github.com/noldarim/welcome/internal/tui/layout"
)

// View renders the splash screen
func (m Model) View() string {
	art := lipgloss.NewStyle().
		Foreground(fade.Blend(layout.BackgroundColor, layout.SandColor, m.fade.Opacity())).
		Render(assets.SplashArt())

	// Keep a blank line when loading ends so the button does not jump.
	loading := " "
	if m.isLoading {
		loading = m.spinner.View() + " Loading..."
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		art,
		"",
		loading,
		"",
		layout.Button("Start", true, layout.SandColor),
	)

	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}
