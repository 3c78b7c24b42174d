// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package splash

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/welcome/internal/config"
	"github.com/noldarim/welcome/internal/tui/components/fade"
	"github.com/noldarim/welcome/internal/tui/layout"
	"github.com/noldarim/welcome/internal/tui/schedule"
)

// Model is the welcome screen: fading artwork, a loading spinner that hides
// after a fixed delay, and a Start button.
type Model struct {
	fade        fade.Model
	spinner     spinner.Model
	loadingTask *schedule.Task

	isLoading bool
	isStarted bool

	width  int
	height int
}

// NewModel mounts the splash screen. The fade starts now and the loading task
// is armed; both run once Init's command is executed.
func NewModel(cfg config.SplashConfig) Model {
	return newModel(cfg, time.Now())
}

func newModel(cfg config.SplashConfig, now time.Time) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(layout.TextColor)),
	)

	return Model{
		fade:        fade.New(cfg.FadeDuration, cfg.FrameInterval).Start(now),
		spinner:     sp,
		loadingTask: schedule.New(cfg.LoadingDelay),
		isLoading:   true,
		width:       80,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fade.Init(),
		m.spinner.Tick,
		m.loadingTask.Cmd(),
	)
}

// Teardown cancels the pending loading task and stops the fade. Messages that
// arrive afterwards leave the model untouched.
func (m *Model) Teardown() {
	m.loadingTask.Cancel()
	m.fade = m.fade.Stop()
}

// IsLoading reports whether the loading indicator is shown.
func (m Model) IsLoading() bool {
	return m.isLoading
}

// IsStarted reports whether the user pressed Start.
func (m Model) IsStarted() bool {
	return m.isStarted
}

// Opacity is the current fade level of the artwork.
func (m Model) Opacity() float64 {
	return m.fade.Opacity()
}

// GetLayoutInfo returns layout information for the splash screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Centered: true,
		HelpItems: []layout.HelpItem{
			{Key: "enter", Description: "start"},
			{Key: "q", Description: "quit"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
