// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command login runs the sign-in screen on its own against the stub provider.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/welcome/internal/auth"
	"github.com/noldarim/welcome/internal/config"
	"github.com/noldarim/welcome/internal/tui/messages"
	"github.com/noldarim/welcome/internal/tui/screens/login"
)

type demoModel struct {
	screen login.Model
}

func (m demoModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.GoBackMsg:
		// Nothing behind the login screen.
		return m, nil
	case tea.WindowSizeMsg:
		m.screen.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	model, cmd := m.screen.Update(msg)
	m.screen = model.(login.Model)
	return m, cmd
}

func (m demoModel) View() string {
	return m.screen.View()
}

func main() {
	provider, err := auth.NewProvider(config.Default().Auth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(demoModel{screen: login.NewModel(provider)}, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(demoModel); ok && m.screen.IsLoggedIn() {
		fmt.Printf("signed in as %s\n", m.screen.Username())
	}
}
