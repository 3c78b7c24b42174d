// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(SplashRoute)
	assert.Equal(t, SplashRoute, s.Current())
	assert.Equal(t, []Route{SplashRoute}, s.History())
	assert.Equal(t, 1, s.Depth())
}

func TestRouteNames(t *testing.T) {
	assert.Equal(t, Route("App"), SplashRoute)
	assert.Equal(t, Route("Index2"), LoginRoute)
	assert.True(t, SplashRoute.Known())
	assert.False(t, Route("Settings").Known())
}

func TestPushAndBack(t *testing.T) {
	s, err := New(SplashRoute).Push(LoginRoute)
	require.NoError(t, err)
	assert.Equal(t, LoginRoute, s.Current())

	s, ok := s.Back()
	assert.True(t, ok)
	assert.Equal(t, SplashRoute, s.Current())

	s, ok = s.Back()
	assert.False(t, ok, "the last entry must not be popped")
	assert.Equal(t, []Route{SplashRoute}, s.History())
}

func TestPushUnknown(t *testing.T) {
	s := New(SplashRoute)
	next, err := s.Push("Nowhere")
	require.Error(t, err)
	assert.Equal(t, s, next)
}

func TestReset(t *testing.T) {
	s, err := New(SplashRoute).Push(LoginRoute)
	require.NoError(t, err)

	s, err = New(SplashRoute).Reset(LoginRoute)
	require.NoError(t, err)
	assert.Equal(t, []Route{LoginRoute}, s.History())

	_, ok := s.Back()
	assert.False(t, ok, "splash must be unreachable after a reset")
}

func TestResetErrors(t *testing.T) {
	s := New(SplashRoute)

	next, err := s.Reset()
	assert.ErrorIs(t, err, ErrEmptyReset)
	assert.Equal(t, s, next)

	next, err = s.Reset(LoginRoute, "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nowhere")
	assert.Equal(t, s, next)
}

func TestStateIsAValue(t *testing.T) {
	base := New(SplashRoute)
	pushed, err := base.Push(LoginRoute)
	require.NoError(t, err)

	assert.Equal(t, 1, base.Depth())
	assert.Equal(t, 2, pushed.Depth())

	history := pushed.History()
	history[0] = LoginRoute
	assert.Equal(t, SplashRoute, pushed.History()[0])
}
