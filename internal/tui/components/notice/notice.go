// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package notice

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/welcome/internal/tui/components/card"
	"github.com/noldarim/welcome/internal/tui/layout"
)

const boxWidth = 52

var messageStyle = lipgloss.NewStyle().
	Foreground(layout.TextColor).
	MarginBottom(1)

func boxStyle() card.Style {
	style := card.DefaultStyle().Focused()
	style.PaddingV = 1
	style.PaddingH = 2
	style.Width = boxWidth
	return style
}

// Model is a blocking notice. While visible the owning screen must route all
// key input here instead of handling it.
type Model struct {
	message string
	visible bool
	form    *huh.Form
}

// New returns a hidden notice.
func New() Model {
	return Model{}
}

// Show makes the notice visible with message, replacing any current one.
func (m Model) Show(message string) (Model, tea.Cmd) {
	m.message = message
	m.visible = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Next(true).
				NextLabel("OK"),
		),
	).WithShowHelp(false).WithTheme(huh.ThemeCharm())
	return m, m.form.Init()
}

// Dismiss hides the notice.
func (m Model) Dismiss() Model {
	m.visible = false
	m.form = nil
	return m
}

// Visible reports whether the notice is blocking input.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the current or last notice.
func (m Model) Message() string {
	return m.message
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", " ":
			return m.Dismiss(), nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateNormal {
		return m.Dismiss(), nil
	}
	return m, cmd
}

func (m Model) View() string {
	if !m.visible {
		return ""
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		messageStyle.Render(m.message),
		m.form.View(),
	)
	return card.Render("Notice", body, boxStyle())
}
