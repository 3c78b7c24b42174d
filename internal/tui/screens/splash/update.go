// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package splash

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/welcome/internal/logger"
	"github.com/noldarim/welcome/internal/tui/components/fade"
	"github.com/noldarim/welcome/internal/tui/messages"
	"github.com/noldarim/welcome/internal/tui/navigation"
	"github.com/noldarim/welcome/internal/tui/schedule"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "splash").Logger()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ", "s":
			return m.start()
		case "q", "ctrl+c":
			m.Teardown()
			return m, tea.Quit
		}

	case schedule.FiredMsg:
		if m.loadingTask.Owns(msg) {
			m.isLoading = false
			log.Debug().Dur("delay", m.loadingTask.Delay()).Msg("Loading finished")
		}

	case fade.FrameMsg:
		var cmd tea.Cmd
		m.fade, cmd = m.fade.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// start marks the screen started and asks for the login screen to replace
// the whole history. Repeated presses are ignored.
func (m Model) start() (tea.Model, tea.Cmd) {
	if m.isStarted {
		return m, nil
	}

	m.isStarted = true
	m.Teardown()

	log := logger.GetTUILogger()
	log.Info().
		Str("component", "splash").
		Bool("loading", m.isLoading).
		Msg("Start pressed")

	return m, messages.ResetTo(navigation.LoginRoute)
}
