// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/welcome/internal/assets"
	"github.com/noldarim/welcome/internal/tui/components/card"
	"github.com/noldarim/welcome/internal/tui/layout"
)

const formWidth = 40

var (
	artStyle = lipgloss.NewStyle().
			Foreground(layout.SandColor).
			MarginBottom(1)

	rightAligned = lipgloss.NewStyle().
			Width(formWidth + 4).
			Align(lipgloss.Right)
)

// View renders the login screen, or the notice on top of it when one is open.
func (m Model) View() string {
	if m.notice.Visible() {
		return layout.Overlay(m.notice.View(), m.width, m.height)
	}

	forgot := layout.LinkStyle.Render("Forgot Password")
	if m.focus == ForgotPasswordLink {
		forgot = "▸ " + forgot
	}

	rows := []string{
		m.renderInput(m.email.View(), EmailField),
		m.renderInput(m.password.View(), PasswordField),
		rightAligned.Render(forgot),
		"",
		layout.Button("Sign-In", m.focus == SignInButton, layout.SandColor),
	}

	if m.isLoggedIn {
		rows = append(rows, layout.SuccessStyle.Render(SuccessMessage))
	}

	rows = append(rows,
		"",
		layout.Button("Login with Gmail", m.focus == GoogleButton, layout.GoogleColor),
		layout.Button("Login with Facebook", m.focus == FacebookButton, layout.FacebookColor),
		"",
		layout.MutedStyle.Render("Don't have a account?"),
	)

	form := lipgloss.JoinVertical(lipgloss.Center, rows...)

	// The artwork is the first thing to go on short terminals.
	content := form
	info := m.GetLayoutInfo()
	art := artStyle.Render(assets.LoginArt())
	if area := layout.GetContentArea(info, m.width, m.height); area.Height >= lipgloss.Height(art)+lipgloss.Height(form) {
		content = lipgloss.JoinVertical(lipgloss.Center, art, form)
	}

	return layout.RenderLayout(content, info, m.width, m.height)
}

func (m Model) renderInput(view string, field Field) string {
	style := card.DefaultStyle()
	style.Width = formWidth
	if m.focus == field {
		style = style.Focused()
	}
	return card.Render("", view, style)
}
