// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/welcome/internal/auth"
	"github.com/noldarim/welcome/internal/tui/components/notice"
	"github.com/noldarim/welcome/internal/tui/layout"
)

// SuccessMessage is shown under the Sign-In button once signed in.
const SuccessMessage = "Logged in successfully!"

// providerTimeout bounds every call into the auth provider.
const providerTimeout = 10 * time.Second

// Field is an element of the focus ring, in display order.
type Field int

const (
	EmailField Field = iota
	PasswordField
	ForgotPasswordLink
	SignInButton
	GoogleButton
	FacebookButton
	fieldCount
)

func (f Field) String() string {
	switch f {
	case EmailField:
		return "email"
	case PasswordField:
		return "password"
	case ForgotPasswordLink:
		return "forgot_password"
	case SignInButton:
		return "sign_in"
	case GoogleButton:
		return "google"
	case FacebookButton:
		return "facebook"
	default:
		return "unknown"
	}
}

// Model is the sign-in form.
type Model struct {
	provider auth.Provider

	email    textinput.Model
	password textinput.Model
	focus    Field
	notice   notice.Model

	isLoggedIn bool
	session    *auth.Session

	width  int
	height int
}

// NewModel creates the login screen backed by provider.
func NewModel(provider auth.Provider) Model {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.CharLimit = 254
	email.Width = 36
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 36

	return Model{
		provider: provider,
		email:    email,
		password: password,
		focus:    EmailField,
		notice:   notice.New(),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Username is the current email field value.
func (m Model) Username() string {
	return m.email.Value()
}

// Password is the current password field value.
func (m Model) Password() string {
	return m.password.Value()
}

// IsLoggedIn reports whether a sign-in succeeded.
func (m Model) IsLoggedIn() bool {
	return m.isLoggedIn
}

// Session is the session issued by the provider, if any.
func (m Model) Session() *auth.Session {
	return m.session
}

// Focus returns the focused element.
func (m Model) Focus() Field {
	return m.focus
}

// Notice returns the blocking notice component.
func (m Model) Notice() notice.Model {
	return m.notice
}

// Teardown has nothing to release; the login screen owns no timers.
func (m *Model) Teardown() {}

// GetLayoutInfo returns layout information for the login screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	helpItems := []layout.HelpItem{
		{Key: "tab/↓", Description: "next"},
		{Key: "shift+tab/↑", Description: "previous"},
		{Key: "enter", Description: "select"},
		{Key: "ctrl+c", Description: "quit"},
	}
	if m.notice.Visible() {
		helpItems = []layout.HelpItem{{Key: "enter/esc", Description: "dismiss"}}
	}

	return layout.LayoutInfo{
		Centered:  true,
		HelpItems: helpItems,
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// setFocus moves focus to f, keeping exactly one text input focused at most.
func (m *Model) setFocus(f Field) tea.Cmd {
	m.focus = f
	m.email.Blur()
	m.password.Blur()

	switch f {
	case EmailField:
		return m.email.Focus()
	case PasswordField:
		return m.password.Focus()
	}
	return nil
}
