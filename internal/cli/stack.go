// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/easybudget/easybudget/internal/navigation"
	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui"
)

// Entry states, matching what a restore would do with the entry.
const (
	entryOK      = "ok"
	entryInvalid = "invalid"
	entryDropped = "dropped"
)

// stackEntryView is one saved entry as printed by stack show.
type stackEntryView struct {
	Position int    `json:"position" yaml:"position"`
	ID       string `json:"id" yaml:"id"`
	Route    string `json:"route" yaml:"route"`
	Args     any    `json:"args" yaml:"args"`
	Status   string `json:"status" yaml:"status"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

type stackView struct {
	Session string           `json:"session" yaml:"session"`
	Entries []stackEntryView `json:"entries" yaml:"entries"`
}

func stackCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Inspect or clear the saved back stack",
	}
	cmd.AddCommand(stackShowCmd(root), stackResetCmd(root))
	return cmd
}

func stackShowCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved back stack, bottom first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("unsupported format %q (use yaml or json)", format)
			}
			cfg, err := root.load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			table, err := routeTable(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmdContext(cmd), 10*time.Second)
			defer cancel()
			entries, err := db.LoadBackStack(ctx, cfg.Navigation.Session)
			if err != nil {
				return fmt.Errorf("failed to load back stack: %w", err)
			}

			view := stackView{
				Session: cfg.Navigation.Session,
				Entries: describeStack(table, entries),
			}
			return writeStack(cmd.OutOrStdout(), format, view)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func stackResetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved back stack so the next start opens the home screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmdContext(cmd), 10*time.Second)
			defer cancel()
			deleted, err := db.DeleteBackStack(ctx, cfg.Navigation.Session)
			if err != nil {
				return fmt.Errorf("failed to delete back stack: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries from session %q\n", deleted, cfg.Navigation.Session)
			return nil
		},
	}
}

// describeStack decodes every entry through table. Once an entry fails, the
// entries above it are marked dropped, as restoring would discard them.
func describeStack(table *tui.ScreenTable, entries []navigation.Entry) []stackEntryView {
	views := make([]stackEntryView, 0, len(entries))
	broken := false
	for i, entry := range entries {
		view := stackEntryView{
			Position: i,
			ID:       entry.ID,
			Route:    string(entry.Route),
			Args:     argsValue(entry.Args),
			Status:   entryOK,
		}
		switch {
		case broken:
			view.Status = entryDropped
		case i == 0 && entry.Route != routes.Main:
			view.Status = entryInvalid
			view.Error = fmt.Sprintf("stack must start at %q", routes.Main)
			broken = true
		default:
			if _, err := table.Decode(entry.Route, entry.Args); err != nil {
				view.Status = entryInvalid
				view.Error = err.Error()
				broken = true
			}
		}
		views = append(views, view)
	}
	return views
}

// argsValue turns stored arguments into a value yaml can print as a mapping.
// Arguments that are not JSON are shown as they are stored.
func argsValue(raw json.RawMessage) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func writeStack(w io.Writer, format string, view stackView) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return err
	}
	return enc.Close()
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
