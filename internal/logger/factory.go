// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Logger names match the keys of log.levels in config.yaml.

// GetTUILogger returns a logger for screens and components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetAuthLogger returns a logger for the authentication provider
func GetAuthLogger() zerolog.Logger {
	return GetLogger("auth")
}

// GetNavigationLogger returns a logger for route changes
func GetNavigationLogger() zerolog.Logger {
	return GetLogger("navigation")
}

// GetCLILogger returns a logger for the command line entrypoint
func GetCLILogger() zerolog.Logger {
	return GetLogger("cli")
}
