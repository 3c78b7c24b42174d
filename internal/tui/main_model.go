// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/welcome/internal/auth"
	"github.com/noldarim/welcome/internal/config"
	"github.com/noldarim/welcome/internal/logger"
	"github.com/noldarim/welcome/internal/tui/messages"
	"github.com/noldarim/welcome/internal/tui/navigation"
	"github.com/noldarim/welcome/internal/tui/screens/login"
	"github.com/noldarim/welcome/internal/tui/screens/splash"
)

// MainModel owns the navigation state and the screen mounted for the current route.
type MainModel struct {
	nav navigation.State

	// Individual screen models. Only the one for nav.Current() is live.
	splash splash.Model
	login  login.Model

	splashConfig config.SplashConfig
	provider     auth.Provider

	// Global state
	width, height int
}

// NewMainModel creates a new MainModel with the splash screen as the initial route
func NewMainModel(cfg *config.AppConfig, provider auth.Provider) MainModel {
	return MainModel{
		nav:          navigation.New(navigation.SplashRoute),
		splash:       splash.NewModel(cfg.Splash),
		splashConfig: cfg.Splash,
		provider:     provider,
		width:        80,
		height:       24,
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.splash.Init()
}

// Route is the route currently on top of the stack.
func (m MainModel) Route() navigation.Route {
	return m.nav.Current()
}

// History returns a copy of the navigation stack, bottom first.
func (m MainModel) History() []navigation.Route {
	return m.nav.History()
}

// setSize updates the size for the current screen
func (m *MainModel) setSize(width, height int) {
	m.width = width
	m.height = height
	switch m.nav.Current() {
	case navigation.SplashRoute:
		m.splash.SetSize(width, height)
	case navigation.LoginRoute:
		m.login.SetSize(width, height)
	}
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size messages at the top level
	if windowSize, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(windowSize.Width, windowSize.Height)
		return m, nil
	}

	// Handle Navigation Messages First (these return early to avoid screen delegation)
	switch msg := msg.(type) {
	case messages.ResetNavigationMsg:
		next, err := m.nav.Reset(msg.Routes...)
		if err != nil {
			log := logger.GetNavigationLogger()
			log.Warn().
				Err(err).
				Strs("routes", routeNames(msg.Routes)).
				Msg("Ignoring navigation reset")
			return m, nil
		}
		return m.transition(next, "reset")

	case messages.GoBackMsg:
		next, ok := m.nav.Back()
		if !ok {
			log := logger.GetNavigationLogger()
			log.Debug().
				Str("route", string(m.nav.Current())).
				Msg("Back ignored at root of stack")
			return m, nil
		}
		return m.transition(next, "back")
	}

	// Delegate to the current screen
	var screenCmd tea.Cmd
	switch m.nav.Current() {
	case navigation.SplashRoute:
		var model tea.Model
		model, screenCmd = m.splash.Update(msg)
		m.splash = model.(splash.Model)
	case navigation.LoginRoute:
		var model tea.Model
		model, screenCmd = m.login.Update(msg)
		m.login = model.(login.Model)
	}

	return m, screenCmd
}

// transition tears down the screen being left and mounts the one for next.Current().
func (m MainModel) transition(next navigation.State, kind string) (tea.Model, tea.Cmd) {
	from := m.nav.Current()
	m.unmount(from)
	m.nav = next

	log := logger.GetNavigationLogger()
	log.Info().
		Str("kind", kind).
		Str("from", string(from)).
		Str("to", string(next.Current())).
		Int("depth", next.Depth()).
		Msg("Route changed")

	return m, m.mount(next.Current())
}

func (m *MainModel) unmount(r navigation.Route) {
	switch r {
	case navigation.SplashRoute:
		m.splash.Teardown()
	case navigation.LoginRoute:
		m.login.Teardown()
	}
}

// mount creates fresh screen state; screens keep nothing across visits.
func (m *MainModel) mount(r navigation.Route) tea.Cmd {
	switch r {
	case navigation.SplashRoute:
		m.splash = splash.NewModel(m.splashConfig)
		m.splash.SetSize(m.width, m.height)
		return m.splash.Init()
	case navigation.LoginRoute:
		m.login = login.NewModel(m.provider)
		m.login.SetSize(m.width, m.height)
		return m.login.Init()
	}
	return nil
}

func (m MainModel) View() string {
	switch m.nav.Current() {
	case navigation.SplashRoute:
		return m.splash.View()
	case navigation.LoginRoute:
		return m.login.View()
	default:
		return "Unknown screen"
	}
}

func routeNames(routes []navigation.Route) []string {
	names := make([]string, len(routes))
	for i, r := range routes {
		names[i] = string(r)
	}
	return names
}
