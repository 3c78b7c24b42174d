// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package navigation holds the route stack owned by the root model.
//
// State is a value: every operation returns a new State and never mutates the
// receiver, so screens can be handed a snapshot without sharing the stack.
package navigation

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Route names a screen.
type Route string

const (
	// SplashRoute is the welcome screen and the initial route.
	SplashRoute Route = "App"
	// LoginRoute is the sign-in form.
	LoginRoute Route = "Index2"
)

// Routes lists every registered route.
var Routes = []Route{SplashRoute, LoginRoute}

// ErrEmptyReset is returned when Reset is given no routes.
var ErrEmptyReset = errors.New("reset requires at least one route")

// Known reports whether r is a registered route.
func (r Route) Known() bool {
	return lo.Contains(Routes, r)
}

// State is the navigation history. The last entry is the current route.
type State struct {
	history []Route
}

// New returns a State whose only entry is initial.
func New(initial Route) State {
	return State{history: []Route{initial}}
}

// Current returns the route on top of the stack.
func (s State) Current() Route {
	if len(s.history) == 0 {
		return ""
	}
	return s.history[len(s.history)-1]
}

// History returns a copy of the stack, oldest first.
func (s State) History() []Route {
	return append([]Route(nil), s.history...)
}

// Depth is the number of entries in the stack.
func (s State) Depth() int {
	return len(s.history)
}

// Push adds r on top of the stack.
func (s State) Push(r Route) (State, error) {
	if !r.Known() {
		return s, fmt.Errorf("unknown route %q", r)
	}
	return State{history: append(s.History(), r)}, nil
}

// Reset replaces the whole stack with routes. The previous entries become
// unreachable through Back.
func (s State) Reset(routes ...Route) (State, error) {
	if len(routes) == 0 {
		return s, ErrEmptyReset
	}
	if unknown, found := lo.Find(routes, func(r Route) bool { return !r.Known() }); found {
		return s, fmt.Errorf("unknown route %q", unknown)
	}
	return State{history: append([]Route(nil), routes...)}, nil
}

// Back pops the current route. The last remaining entry is never popped; ok
// is false in that case and s is returned unchanged.
func (s State) Back() (State, bool) {
	if len(s.history) <= 1 {
		return s, false
	}
	return State{history: s.History()[:len(s.history)-1]}, true
}
