// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/welcome/internal/auth"
	"github.com/noldarim/welcome/internal/config"
	"github.com/noldarim/welcome/internal/logger"
)

// StartTUI initializes and runs the TUI application
func StartTUI(cfg *config.AppConfig, provider auth.Provider) error {
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewMainModel(cfg, provider), opts...)

	log := logger.GetTUILogger()
	log.Info().Bool("alt_screen", cfg.UI.AltScreen).Str("provider", provider.Name()).Msg("Starting TUI")

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}

	if mm, ok := final.(MainModel); ok {
		log.Info().Str("route", string(mm.Route())).Msg("TUI stopped")
	}
	return nil
}

// PrintCriticalError writes err in red to w. Used after the TUI has released the terminal.
func PrintCriticalError(w io.Writer, err error) {
	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")). // Red color
		Render

	fmt.Fprintf(w, "\n%s\n\n", errorStyle("CRITICAL ERROR: "+err.Error()))
}
