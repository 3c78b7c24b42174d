// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	SandColor       = lipgloss.Color("#EEC581") // splash background and primary buttons
	InkColor        = lipgloss.Color("#1F2937")
	TextColor       = lipgloss.Color("#F3F4F6")
	MutedColor      = lipgloss.Color("#9CA3AF")
	BorderColor     = lipgloss.Color("#4B5563")
	AccentColor     = lipgloss.Color("#F59E0B")
	SuccessColor    = lipgloss.Color("#22C55E")
	ErrorColor      = lipgloss.Color("#EF4444")
	GoogleColor     = lipgloss.Color("#4285F4")
	FacebookColor   = lipgloss.Color("#3B5998")
	BackgroundColor = lipgloss.Color("#111827")
)

var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(BorderColor).
			PaddingLeft(1).
			PaddingRight(1)

	HelpTextStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(SandColor).
			Bold(true)

	// Buttons. Focused buttons are rendered with FocusedButton.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(InkColor).
			Background(SandColor).
			Padding(0, 3).
			Align(lipgloss.Center)

	FocusedButtonStyle = ButtonStyle.
				Bold(true).
				Underline(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Underline(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true).
			Margin(1, 0, 0, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Button renders label as a button, highlighted when focused.
func Button(label string, focused bool, bg lipgloss.Color) string {
	style := ButtonStyle
	if focused {
		style = FocusedButtonStyle
	}
	label = style.Background(bg).Render(label)
	if focused {
		return "▸ " + label
	}
	return "  " + label
}
