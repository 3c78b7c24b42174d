// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noldarim/welcome/internal/auth"
	"github.com/noldarim/welcome/internal/tui/messages"
	"github.com/noldarim/welcome/test/testutil"
)

func newLogin(t *testing.T) (Model, *testutil.RecordingProvider) {
	t.Helper()
	provider := testutil.NewRecordingProvider()
	return NewModel(provider), provider
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := testutil.SendMessage(m, msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update should return a login Model")
	return out, cmd
}

func focusOn(t *testing.T, m Model, field Field) Model {
	t.Helper()
	for i := 0; m.Focus() != field; i++ {
		require.Less(t, i, int(fieldCount), "focus ring never reached %s", field)
		m, _ = update(t, m, testutil.SpecialKey(tea.KeyTab))
	}
	return m
}

func typeInto(t *testing.T, m Model, field Field, text string) Model {
	t.Helper()
	m = focusOn(t, m, field)
	out, ok := testutil.TypeText(m, text).(Model)
	require.True(t, ok)
	return out
}

// press activates field and runs the provider command it returns, feeding
// the result back into the model.
func press(t *testing.T, m Model, field Field) Model {
	t.Helper()
	m = focusOn(t, m, field)
	m, cmd := update(t, m, testutil.SpecialKey(tea.KeyEnter))
	if msg := testutil.ExecuteCommand(cmd); msg != nil {
		m, _ = update(t, m, msg)
	}
	return m
}

func TestNewModel(t *testing.T) {
	m, _ := newLogin(t)

	assert.Equal(t, EmailField, m.Focus())
	assert.Empty(t, m.Username())
	assert.Empty(t, m.Password())
	assert.False(t, m.IsLoggedIn())
	assert.False(t, m.Notice().Visible())
	assert.NotNil(t, m.Init())
}

func TestTypingFillsFocusedField(t *testing.T) {
	m, _ := newLogin(t)

	m = typeInto(t, m, EmailField, "a@b.com")
	m = typeInto(t, m, PasswordField, "pw123")

	assert.Equal(t, "a@b.com", m.Username())
	assert.Equal(t, "pw123", m.Password())
}

func TestPasswordIsMasked(t *testing.T) {
	m, _ := newLogin(t)
	m = typeInto(t, m, PasswordField, "pw123")

	view := m.View()
	assert.NotContains(t, view, "pw123")
	assert.Contains(t, view, "•••••")
}

func TestFocusRing(t *testing.T) {
	m, _ := newLogin(t)

	order := []Field{PasswordField, ForgotPasswordLink, SignInButton, GoogleButton, FacebookButton, EmailField}
	for _, want := range order {
		m, _ = update(t, m, testutil.SpecialKey(tea.KeyTab))
		assert.Equal(t, want, m.Focus())
	}

	m, _ = update(t, m, testutil.SpecialKey(tea.KeyShiftTab))
	assert.Equal(t, FacebookButton, m.Focus())
	m, _ = update(t, m, testutil.SpecialKey(tea.KeyUp))
	assert.Equal(t, GoogleButton, m.Focus())
	m, _ = update(t, m, testutil.SpecialKey(tea.KeyDown))
	assert.Equal(t, FacebookButton, m.Focus())
}

func TestEnterOnEmailMovesToPassword(t *testing.T) {
	m, provider := newLogin(t)

	m, _ = update(t, m, testutil.SpecialKey(tea.KeyEnter))

	assert.Equal(t, PasswordField, m.Focus())
	assert.Empty(t, provider.Calls())
}

func TestSignInSuccess(t *testing.T) {
	m, provider := newLogin(t)
	m = typeInto(t, m, EmailField, "a@b.com")
	m = typeInto(t, m, PasswordField, "pw123")

	m = press(t, m, SignInButton)

	assert.True(t, m.IsLoggedIn())
	assert.False(t, m.Notice().Visible())
	assert.Contains(t, m.View(), SuccessMessage)

	require.NotNil(t, m.Session())
	assert.Equal(t, "test-session", m.Session().ID)
	assert.Equal(t, []string{"sign_in"}, provider.Calls())
	assert.Equal(t, []auth.Credentials{{Username: "a@b.com", Password: "pw123"}}, provider.Credentials())
}

func TestSignInFromPasswordField(t *testing.T) {
	m, _ := newLogin(t)
	m = typeInto(t, m, EmailField, "a@b.com")
	m = typeInto(t, m, PasswordField, "pw123")

	m = press(t, m, PasswordField)

	assert.True(t, m.IsLoggedIn())
}

func TestSignInMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"both empty", "", ""},
		{"no password", "a@b.com", ""},
		{"no username", "", "pw123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, provider := newLogin(t)
			m = typeInto(t, m, EmailField, tt.username)
			m = typeInto(t, m, PasswordField, tt.password)

			m = press(t, m, SignInButton)

			assert.False(t, m.IsLoggedIn())
			assert.True(t, m.Notice().Visible())
			assert.Equal(t, auth.MsgMissingCredentials, m.Notice().Message())
			assert.Contains(t, m.View(), auth.MsgMissingCredentials)
			assert.NotContains(t, m.View(), SuccessMessage)
			assert.Empty(t, provider.Calls(), "provider must not see incomplete credentials")

			// Field contents survive the failed attempt.
			assert.Equal(t, tt.username, m.Username())
			assert.Equal(t, tt.password, m.Password())
		})
	}
}

func TestSignInAfterClearingFieldFails(t *testing.T) {
	m, _ := newLogin(t)
	m = typeInto(t, m, EmailField, "a@b.com")
	m = typeInto(t, m, PasswordField, "pw123")
	m = press(t, m, SignInButton)
	require.True(t, m.IsLoggedIn())

	// Clear the password and try again: the flag is not withdrawn, but the
	// notice shows because the fields are validated at press time.
	m = focusOn(t, m, PasswordField)
	for range "pw123" {
		m, _ = update(t, m, testutil.SpecialKey(tea.KeyBackspace))
	}
	require.Empty(t, m.Password())

	m = press(t, m, SignInButton)
	assert.True(t, m.Notice().Visible())
	assert.Equal(t, auth.MsgMissingCredentials, m.Notice().Message())
}

func TestSignInProviderError(t *testing.T) {
	m, provider := newLogin(t)
	provider.Err = errors.New("account locked")
	m = typeInto(t, m, EmailField, "a@b.com")
	m = typeInto(t, m, PasswordField, "pw123")

	m = press(t, m, SignInButton)

	assert.False(t, m.IsLoggedIn())
	assert.Nil(t, m.Session())
	assert.True(t, m.Notice().Visible())
	assert.Equal(t, "account locked", m.Notice().Message())
}

func TestPlaceholderActions(t *testing.T) {
	tests := []struct {
		field Field
		call  string
		text  string
	}{
		{ForgotPasswordLink, "reset_password", auth.MsgResetPassword},
		{GoogleButton, "google", auth.MsgGoogleLogin},
		{FacebookButton, "facebook", auth.MsgFacebookLogin},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			m, provider := newLogin(t)
			m = typeInto(t, m, EmailField, "a@b.com")

			m = press(t, m, tt.field)

			assert.True(t, m.Notice().Visible())
			assert.Equal(t, tt.text, m.Notice().Message())
			assert.Equal(t, []string{tt.call}, provider.Calls())

			// No other state changes.
			assert.False(t, m.IsLoggedIn())
			assert.Equal(t, "a@b.com", m.Username())
			assert.Empty(t, m.Password())
			assert.Equal(t, tt.field, m.Focus())
		})
	}
}

func TestPlaceholderActionError(t *testing.T) {
	m, provider := newLogin(t)
	provider.Err = errors.New("offline")

	m = press(t, m, GoogleButton)

	assert.True(t, m.Notice().Visible())
	assert.Contains(t, m.Notice().Message(), "offline")
}

func TestNoticeBlocksInput(t *testing.T) {
	m, provider := newLogin(t)
	m = press(t, m, SignInButton)
	require.True(t, m.Notice().Visible())
	focus := m.Focus()

	// Keys go to the notice, not the form.
	m, _ = update(t, m, testutil.SpecialKey(tea.KeyTab))
	assert.Equal(t, focus, m.Focus())
	assert.True(t, m.Notice().Visible())

	m, _ = update(t, m, testutil.SpecialKey(tea.KeyEnter))
	assert.False(t, m.Notice().Visible())
	assert.Equal(t, focus, m.Focus())
	assert.Empty(t, provider.Calls())
}

type unrelatedMsg struct{}

func TestNoticeOwnsAllMessagesWhileVisible(t *testing.T) {
	m, _ := newLogin(t)
	m = press(t, m, PasswordField)
	require.True(t, m.Notice().Visible())

	// Non-key messages go to the notice and leave it and the form untouched.
	m, _ = update(t, m, unrelatedMsg{})
	assert.True(t, m.Notice().Visible())
	assert.Equal(t, auth.MsgMissingCredentials, m.Notice().Message())
	assert.Equal(t, PasswordField, m.Focus())
	assert.Empty(t, m.Password())

	// Resizing still applies to the screen underneath.
	m, _ = update(t, m, testutil.WindowSizeMsg(100, 40))
	assert.True(t, m.Notice().Visible())
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)

	// Provider results are still handled and replace the notice text.
	m, _ = update(t, m, placeholderResultMsg{action: "google", text: auth.MsgGoogleLogin})
	assert.Equal(t, auth.MsgGoogleLogin, m.Notice().Message())
}

func TestWindowSizeWithoutNotice(t *testing.T) {
	m, _ := newLogin(t)
	m, cmd := update(t, m, testutil.WindowSizeMsg(120, 50))
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestEscRequestsBack(t *testing.T) {
	m, _ := newLogin(t)

	_, cmd := update(t, m, testutil.SpecialKey(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.IsType(t, messages.GoBackMsg{}, testutil.ExecuteCommand(cmd))
}

func TestEscDismissesNoticeFirst(t *testing.T) {
	m, _ := newLogin(t)
	m = press(t, m, GoogleButton)
	require.True(t, m.Notice().Visible())

	m, cmd := update(t, m, testutil.SpecialKey(tea.KeyEsc))

	assert.False(t, m.Notice().Visible())
	if cmd != nil {
		assert.NotEqual(t, messages.GoBackMsg{}, testutil.ExecuteCommand(cmd))
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newLogin(t)
	_, cmd := update(t, m, testutil.SpecialKey(tea.KeyCtrlC))
	testutil.AssertQuitMessage(t, cmd)

	// Even with a notice open.
	m = press(t, m, GoogleButton)
	_, cmd = update(t, m, testutil.SpecialKey(tea.KeyCtrlC))
	testutil.AssertQuitMessage(t, cmd)
}

func TestView(t *testing.T) {
	m, _ := newLogin(t)
	m, _ = update(t, m, testutil.WindowSizeMsg(100, 40))

	view := m.View()
	for _, want := range []string{
		"Email",
		"Password",
		"Forgot Password",
		"Sign-In",
		"Login with Gmail",
		"Login with Facebook",
		"Don't have a account?",
		"S I G N   I N",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, SuccessMessage)
}

func TestViewDropsArtOnShortTerminal(t *testing.T) {
	m, _ := newLogin(t)
	m, _ = update(t, m, testutil.WindowSizeMsg(80, 24))

	view := m.View()
	assert.NotContains(t, view, "S I G N   I N")
	assert.Contains(t, view, "Sign-In")
	assert.Contains(t, view, "Don't have a account?")
}

func TestViewMarksFocusedButton(t *testing.T) {
	m, _ := newLogin(t)
	m = focusOn(t, m, GoogleButton)

	view := m.View()
	assert.True(t, lineWith(view, "Login with Gmail", "▸"))
	assert.False(t, lineWith(view, "Sign-In", "▸"))
}

func lineWith(view, label, marker string) bool {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, label) {
			return strings.Contains(line, marker)
		}
	}
	return false
}

func TestLayoutInfo(t *testing.T) {
	m, _ := newLogin(t)
	info := m.GetLayoutInfo()
	assert.True(t, info.Centered)
	assert.NotEmpty(t, info.HelpItems)

	m = press(t, m, GoogleButton)
	info = m.GetLayoutInfo()
	require.Len(t, info.HelpItems, 1)
	assert.Equal(t, "dismiss", info.HelpItems[0].Description)
}
