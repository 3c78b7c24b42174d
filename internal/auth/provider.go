// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth defines the collaborators the login screen talks to.
//
// No real backend exists yet: every Provider in this package is a placeholder
// that answers with the text the screen should show. A production build swaps
// in a Provider that talks to an identity service and OAuth providers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/noldarim/welcome/internal/config"
)

// Notice texts shown by the login screen.
const (
	MsgMissingCredentials = "Please fill in both username and password"
	MsgResetPassword      = "Reset Password"
	MsgGoogleLogin        = "Login with Gmail clicked"
	MsgFacebookLogin      = "Login with Facebook clicked"
)

var (
	// ErrMissingCredentials is returned when the username or password is empty.
	ErrMissingCredentials = errors.New(MsgMissingCredentials)
	// ErrUnknownProvider is returned by NewProvider for unsupported names.
	ErrUnknownProvider = errors.New("unknown auth provider")
)

// Credentials is what the user typed into the login form.
type Credentials struct {
	Username string
	Password string
}

// Complete reports whether both fields are filled in. No format checks are made.
func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != ""
}

// Session is issued on a successful sign-in. It lives only in memory.
type Session struct {
	ID       string
	Username string
	Provider string
	IssuedAt time.Time
}

// Provider is the authentication backend seen by the login screen.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string
	// SignIn checks the credentials and opens a session.
	SignIn(ctx context.Context, creds Credentials) (*Session, error)
	// ResetPassword starts password recovery and returns the text to show.
	ResetPassword(ctx context.Context, username string) (string, error)
	// LoginWithGoogle starts the Google flow and returns the text to show.
	LoginWithGoogle(ctx context.Context) (string, error)
	// LoginWithFacebook starts the Facebook flow and returns the text to show.
	LoginWithFacebook(ctx context.Context) (string, error)
}

// NewProvider builds the provider named in cfg.
func NewProvider(cfg config.AuthConfig) (Provider, error) {
	switch cfg.Provider {
	case "stub":
		return NewStubProvider(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
