// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s (%s)\n", cfg.Database.Database, cfg.Database.Driver)

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			// Validate schema to confirm everything is correct
			if err := db.ValidateSchema(); err != nil {
				return fmt.Errorf("schema validation failed after migration: %w", err)
			}
			fmt.Fprintln(out, "Database migration completed, schema is valid")
			return nil
		},
	}
}
