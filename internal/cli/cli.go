// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli defines the easybudget command line.
//
// Commands
//
//   - run            Start the budget UI (the default)
//   - stack show     Print the saved back stack of a session
//   - stack reset    Delete the saved back stack of a session
//   - routes         List the screens and the signals that open them
//   - migrate        Create or update the database schema
//   - version        Print version information
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/easybudget/easybudget/internal/config"
	"github.com/easybudget/easybudget/internal/database"
	"github.com/easybudget/easybudget/internal/logger"
)

const (
	appName    = "easybudget"
	appVersion = "0.1.0"
)

type rootOptions struct {
	configPath string
	session    string
	cfg        *config.AppConfig
}

// Execute runs the CLI application
func Execute() error {
	defer logger.CloseGlobal()
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Running it without a subcommand starts the UI.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	run := &runOptions{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Day-by-day budget in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts, run)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./config.yaml or ~/.easybudget/config.yaml)")
	root.PersistentFlags().StringVar(&opts.session, "session", "", "back stack session (default from config)")
	addRunFlags(root, run)

	root.AddCommand(runCmd(opts), stackCmd(opts), routesCmd(opts), migrateCmd(opts), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
}

// load reads the configuration and starts logging. It runs once per process.
func (o *rootOptions) load() (*config.AppConfig, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}
	cfg, err := config.NewConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.session != "" {
		cfg.Navigation.Session = o.session
	}

	// Initialize logging (to file only, keep terminal clean)
	if err := logger.Initialize(&cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.cfg = cfg
	return cfg, nil
}

// openDatabase connects to the configured database and brings its schema up to date.
func openDatabase(cfg *config.AppConfig) (*database.GormDB, error) {
	if cfg.Database.Driver == "sqlite" && cfg.Database.Database != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Database), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := database.NewGormDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
