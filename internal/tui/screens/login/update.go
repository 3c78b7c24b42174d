// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/welcome/internal/auth"
	"github.com/noldarim/welcome/internal/logger"
	"github.com/noldarim/welcome/internal/tui/messages"
)

// signInResultMsg carries the provider's answer to a sign-in.
type signInResultMsg struct {
	session *auth.Session
	err     error
}

// placeholderResultMsg carries the text a placeholder action wants shown.
type placeholderResultMsg struct {
	action string
	text   string
	err    error
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case signInResultMsg:
		return m.handleSignInResult(msg)

	case placeholderResultMsg:
		return m.handlePlaceholderResult(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	// A visible notice owns every other message, including its form's own.
	if m.notice.Visible() {
		var cmd tea.Cmd
		m.notice, cmd = m.notice.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	// Cursor blink and anything else the inputs care about.
	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, messages.GoBack()
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		return m.activate()
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case EmailField:
		m.email, cmd = m.email.Update(msg)
	case PasswordField:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// activate performs the action of the focused element.
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case EmailField:
		return m, m.setFocus(PasswordField)
	case PasswordField, SignInButton:
		return m.signIn()
	case ForgotPasswordLink:
		username := m.Username()
		return m, m.placeholder("reset_password", func(ctx context.Context) (string, error) {
			return m.provider.ResetPassword(ctx, username)
		})
	case GoogleButton:
		return m, m.placeholder("google", m.provider.LoginWithGoogle)
	case FacebookButton:
		return m, m.placeholder("facebook", m.provider.LoginWithFacebook)
	}
	return m, nil
}

// signIn succeeds iff both fields are non-empty at this moment. An empty field
// raises the blocking notice and leaves every other piece of state alone.
func (m Model) signIn() (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "login").Logger()

	creds := auth.Credentials{Username: m.Username(), Password: m.Password()}
	if !creds.Complete() {
		log.Debug().
			Bool("has_username", creds.Username != "").
			Bool("has_password", creds.Password != "").
			Msg("Sign-in blocked: missing credentials")
		var cmd tea.Cmd
		m.notice, cmd = m.notice.Show(auth.MsgMissingCredentials)
		return m, cmd
	}

	m.isLoggedIn = true
	log.Info().Str("username", creds.Username).Msg("Signed in")

	provider := m.provider
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), providerTimeout)
		defer cancel()
		session, err := provider.SignIn(ctx, creds)
		return signInResultMsg{session: session, err: err}
	}
}

func (m Model) handleSignInResult(msg signInResultMsg) (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "login").Logger()

	if msg.err != nil {
		log.Warn().Err(msg.err).Msg("Provider rejected sign-in")
		m.isLoggedIn = false
		var cmd tea.Cmd
		m.notice, cmd = m.notice.Show(msg.err.Error())
		return m, cmd
	}

	m.session = msg.session
	if msg.session != nil {
		log.Debug().Str("session", msg.session.ID).Str("provider", msg.session.Provider).Msg("Session received")
	}
	return m, nil
}

// placeholder runs a provider action that only produces text to show.
func (m Model) placeholder(action string, call func(context.Context) (string, error)) tea.Cmd {
	log := logger.GetTUILogger()
	log.Debug().Str("component", "login").Str("action", action).Msg("Action requested")

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), providerTimeout)
		defer cancel()
		text, err := call(ctx)
		return placeholderResultMsg{action: action, text: text, err: err}
	}
}

func (m Model) handlePlaceholderResult(msg placeholderResultMsg) (tea.Model, tea.Cmd) {
	text := msg.text
	if msg.err != nil {
		log := logger.GetTUILogger()
		log.Warn().Err(msg.err).Str("action", msg.action).Msg("Provider action failed")
		text = fmt.Sprintf("Something went wrong: %v", msg.err)
	}

	var cmd tea.Cmd
	m.notice, cmd = m.notice.Show(text)
	return m, cmd
}
