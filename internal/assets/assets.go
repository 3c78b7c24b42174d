// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assets embeds the artwork drawn by the screens.
package assets

import (
	_ "embed"
	"strings"
)

//go:embed splash.txt
var splashArt string

//go:embed login.txt
var loginArt string

// SplashArt is the image faded in on the welcome screen.
func SplashArt() string {
	return strings.TrimRight(splashArt, "\n")
}

// LoginArt is the image above the sign-in form.
func LoginArt() string {
	return strings.TrimRight(loginArt, "\n")
}
