// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/noldarim/welcome/internal/logger"
)

// StubProvider accepts any complete pair of credentials and answers every
// other action with placeholder text.
type StubProvider struct {
	now   func() time.Time
	newID func() string
}

// NewStubProvider returns a StubProvider using the wall clock and random UUIDs.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (p *StubProvider) Name() string {
	return "stub"
}

func (p *StubProvider) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.GetAuthLogger().With().Str("provider", p.Name()).Logger()

	if !creds.Complete() {
		log.Debug().Msg("Sign-in rejected: missing credentials")
		return nil, ErrMissingCredentials
	}

	session := &Session{
		ID:       p.newID(),
		Username: creds.Username,
		Provider: p.Name(),
		IssuedAt: p.now(),
	}
	log.Info().Str("session", session.ID).Str("username", creds.Username).Msg("Session issued")
	return session, nil
}

func (p *StubProvider) ResetPassword(ctx context.Context, username string) (string, error) {
	return p.placeholder(ctx, "reset_password", MsgResetPassword)
}

func (p *StubProvider) LoginWithGoogle(ctx context.Context) (string, error) {
	return p.placeholder(ctx, "google", MsgGoogleLogin)
}

func (p *StubProvider) LoginWithFacebook(ctx context.Context) (string, error) {
	return p.placeholder(ctx, "facebook", MsgFacebookLogin)
}

func (p *StubProvider) placeholder(ctx context.Context, action, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log := logger.GetAuthLogger()
	log.Debug().
		Str("provider", p.Name()).
		Str("action", action).
		Msg("Placeholder action invoked")
	return text, nil
}
