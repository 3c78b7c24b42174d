// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package notice

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/noldarim/welcome/test/testutil"
)

func TestHiddenByDefault(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())

	m, cmd := m.Update(testutil.SpecialKey(tea.KeyEnter))
	assert.False(t, m.Visible())
	assert.Nil(t, cmd)
}

func TestShowRendersMessage(t *testing.T) {
	m, _ := New().Show("Login with Gmail clicked")

	assert.True(t, m.Visible())
	assert.Equal(t, "Login with Gmail clicked", m.Message())
	view := m.View()
	assert.Contains(t, view, "Notice")
	assert.Contains(t, view, "Login with Gmail clicked")
}

func TestDismissKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		testutil.SpecialKey(tea.KeyEnter),
		testutil.SpecialKey(tea.KeyEsc),
		testutil.SpecialKey(tea.KeySpace),
	} {
		t.Run(key.String(), func(t *testing.T) {
			m, _ := New().Show("Reset Password")
			m, _ = m.Update(key)
			assert.False(t, m.Visible())
			assert.Empty(t, m.View())
		})
	}
}

func TestOtherKeysKeepNoticeOpen(t *testing.T) {
	m, _ := New().Show("Reset Password")
	m, _ = m.Update(testutil.KeyPress("x"))
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Reset Password")
}

func TestShowReplacesMessage(t *testing.T) {
	m, _ := New().Show("first")
	m, _ = m.Show("second")
	assert.Equal(t, "second", m.Message())
	assert.NotContains(t, m.View(), "first")
}

func TestNonKeyMessagesKeepNoticeOpen(t *testing.T) {
	m, _ := New().Show("Reset Password")

	m, _ = m.Update(testutil.WindowSizeMsg(100, 40))
	m, _ = m.Update(struct{}{})

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Reset Password")
}
