// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/welcome/internal/tui/layout"
)

// Style defines the visual appearance of a card
type Style struct {
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	PaddingV    int
	PaddingH    int
	Width       int // content width, 0 for auto
}

// DefaultStyle is a muted rounded box.
func DefaultStyle() Style {
	return Style{
		BorderColor: layout.BorderColor,
		TitleColor:  layout.AccentColor,
		PaddingV:    0,
		PaddingH:    1,
	}
}

// Focused returns s with the border highlighted.
func (s Style) Focused() Style {
	s.BorderColor = layout.AccentColor
	return s
}

// Render creates a bordered card with optional title
func Render(title, content string, style Style) string {
	body := content
	if title != "" {
		titleRendered := lipgloss.NewStyle().
			Foreground(style.TitleColor).
			Bold(true).
			Render(title)
		body = lipgloss.JoinVertical(lipgloss.Left, titleRendered, "", content)
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.BorderColor).
		Padding(style.PaddingV, style.PaddingH)
	if style.Width > 0 {
		boxStyle = boxStyle.Width(style.Width)
	}

	return boxStyle.Render(body)
}
