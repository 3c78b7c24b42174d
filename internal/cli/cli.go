// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noldarim/welcome/internal/auth"
	"github.com/noldarim/welcome/internal/config"
	"github.com/noldarim/welcome/internal/logger"
	"github.com/noldarim/welcome/internal/tui"
)

const appName = "welcome"

// BuildInfo is stamped by ldflags in release builds.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// runFunc starts the interactive UI. Replaced in tests.
type runFunc func(cfg *config.AppConfig, provider auth.Provider) error

type rootOptions struct {
	configPath  string
	noAltScreen bool
}

// NewRootCommand creates the welcome command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newRootCommand(info, tui.StartTUI)
}

func newRootCommand(info BuildInfo, run runFunc) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Splash and sign-in screens for the terminal",
		Long: `welcome shows a fading splash screen with a Start button, followed by a
sign-in form with email and password fields and social login buttons.

Configuration is read from config.yaml (or --config) and WELCOME_* environment
variables.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, run)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	rootCmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of on the alternate screen")

	rootCmd.AddCommand(newVersionCommand(info))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

func runTUI(cmd *cobra.Command, opts *rootOptions, run runFunc) error {
	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.noAltScreen {
		cfg.UI.AltScreen = false
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer logger.CloseGlobal()

	log := logger.GetCLILogger()
	log.Info().Str("config", opts.configPath).Msg("Starting welcome")

	provider, err := auth.NewProvider(cfg.Auth)
	if err != nil {
		log.Error().Err(err).Msg("Error creating auth provider")
		return fmt.Errorf("error creating auth provider: %w", err)
	}

	if err := run(cfg, provider); err != nil {
		log.Error().Err(err).Msg("TUI failed")
		tui.PrintCriticalError(cmd.ErrOrStderr(), err)
		return err
	}

	log.Info().Msg("Shut down cleanly")
	return nil
}
