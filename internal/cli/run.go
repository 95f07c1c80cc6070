// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/easybudget/easybudget/internal/logger"
	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui"
)

type runOptions struct {
	open     []string // --open: signals queued before the first frame
	noAlt    bool     // --no-alt-screen: draw inline instead of the alternate screen
	fresh    bool     // --fresh: start at the root instead of the saved stack
	reminder time.Duration
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringSliceVar(&opts.open, "open", nil, "open a screen on start: open_premium, open_add_expense, open_add_recurring_expense, open_monthly_report")
	cmd.Flags().BoolVar(&opts.noAlt, "no-alt-screen", false, "draw inline instead of using the alternate screen")
	cmd.Flags().BoolVar(&opts.fresh, "fresh", false, "ignore the saved back stack")
	cmd.Flags().DurationVar(&opts.reminder, "reminder-interval", time.Minute, "how often to check for a new month")
}

func runCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the budget UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), root, opts)
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

// parseSignals checks the --open values before anything is started.
func parseSignals(values []string) ([]routes.Signal, error) {
	kinds := make([]routes.Signal, 0, len(values))
	for _, v := range values {
		kind, err := routes.ParseSignal(v)
		if err != nil {
			return nil, fmt.Errorf("--open: %w", err)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func runTUI(ctx context.Context, root *rootOptions, opts *runOptions) error {
	kinds, err := parseSignals(opts.open)
	if err != nil {
		return err
	}
	if opts.reminder <= 0 {
		return fmt.Errorf("--reminder-interval must be positive, got %s", opts.reminder)
	}

	cfg, err := root.load()
	if err != nil {
		return err
	}
	log := logger.GetCLILogger()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	table, err := tui.BuildRouteTable(screenDeps(cfg, db))
	if err != nil {
		return fmt.Errorf("failed to build route table: %w", err)
	}

	closer := tui.NewAppCloser()
	navOpts := []navigation.Option{
		navigation.WithCloseAction(closer.Close),
		navigation.WithLogger(logger.GetNavigationLogger()),
	}
	if cfg.Navigation.Persist {
		navOpts = append(navOpts, navigation.WithStore(db, cfg.Navigation.Session))
	}
	nav, err := navigation.New(table, routes.MainDestination{}, navOpts...)
	if err != nil {
		return fmt.Errorf("failed to create navigator: %w", err)
	}

	if cfg.Navigation.Restore && !opts.fresh {
		report, err := nav.Restore(ctx)
		if err != nil {
			// The navigator still holds the root screen, which is a usable start.
			log.Warn().Err(err).Msg("Could not restore the saved back stack")
		} else if report.Dropped > 0 || report.Reset {
			log.Warn().
				Int("loaded", report.Loaded).
				Int("dropped", report.Dropped).
				Bool("reset", report.Reset).
				Msg("Saved back stack was repaired")
		}
	}

	signals := routes.NewSignals()
	for _, kind := range kinds {
		signals.Notify(kind)
	}

	log.Info().
		Str("session", cfg.Navigation.Session).
		Strs("open", opts.open).
		Int("depth", nav.Len()).
		Msg("Starting easybudget")

	err = tui.StartTUI(ctx, nav, signals, tui.Options{
		Closer:    closer,
		Sources:   []tui.SignalSource{tui.MonthlyReminder(time.Now, opts.reminder)},
		AltScreen: !opts.noAlt,
	})
	if err != nil {
		log.Error().Err(err).Msg("Error running TUI")
		tui.PrintCriticalError(os.Stderr, err)
		return err
	}
	return nil
}
