// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/noldarim/welcome/internal/auth"
)

// RecordingProvider is an auth.Provider that records every call and answers
// like the stub provider unless Err is set.
type RecordingProvider struct {
	Err error

	mu    sync.Mutex
	calls []string
	creds []auth.Credentials
}

var _ auth.Provider = (*RecordingProvider)(nil)

// NewRecordingProvider returns a provider with no recorded calls.
func NewRecordingProvider() *RecordingProvider {
	return &RecordingProvider{}
}

func (p *RecordingProvider) Name() string {
	return "recording"
}

func (p *RecordingProvider) SignIn(_ context.Context, creds auth.Credentials) (*auth.Session, error) {
	p.record("sign_in")
	p.mu.Lock()
	p.creds = append(p.creds, creds)
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	if !creds.Complete() {
		return nil, auth.ErrMissingCredentials
	}
	return &auth.Session{
		ID:       "test-session",
		Username: creds.Username,
		Provider: p.Name(),
		IssuedAt: time.Unix(0, 0),
	}, nil
}

func (p *RecordingProvider) ResetPassword(_ context.Context, _ string) (string, error) {
	p.record("reset_password")
	return auth.MsgResetPassword, p.Err
}

func (p *RecordingProvider) LoginWithGoogle(_ context.Context) (string, error) {
	p.record("google")
	return auth.MsgGoogleLogin, p.Err
}

func (p *RecordingProvider) LoginWithFacebook(_ context.Context) (string, error) {
	p.record("facebook")
	return auth.MsgFacebookLogin, p.Err
}

func (p *RecordingProvider) record(call string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
}

// Calls returns the recorded call names in order.
func (p *RecordingProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

// Credentials returns every credential pair passed to SignIn.
func (p *RecordingProvider) Credentials() []auth.Credentials {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]auth.Credentials(nil), p.creds...)
}
