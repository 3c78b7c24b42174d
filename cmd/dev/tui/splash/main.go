// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command splash runs the splash screen on its own. Start prints the
// requested navigation instead of switching screens.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/welcome/internal/config"
	"github.com/noldarim/welcome/internal/tui/messages"
	"github.com/noldarim/welcome/internal/tui/screens/splash"
)

type demoModel struct {
	screen    splash.Model
	requested []string
}

func (m demoModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if reset, ok := msg.(messages.ResetNavigationMsg); ok {
		for _, r := range reset.Routes {
			m.requested = append(m.requested, string(r))
		}
		return m, tea.Quit
	}

	model, cmd := m.screen.Update(msg)
	m.screen = model.(splash.Model)
	return m, cmd
}

func (m demoModel) View() string {
	return m.screen.View()
}

func main() {
	fade := flag.Duration("fade", 2000*time.Millisecond, "fade-in duration")
	delay := flag.Duration("delay", 3000*time.Millisecond, "loading indicator delay")
	flag.Parse()

	cfg := config.Default().Splash
	cfg.FadeDuration = *fade
	cfg.LoadingDelay = *delay

	p := tea.NewProgram(demoModel{screen: splash.NewModel(cfg)}, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(demoModel); ok && len(m.requested) > 0 {
		fmt.Printf("navigation reset requested: %v\n", m.requested)
	}
}
