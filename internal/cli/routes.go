// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/easybudget/easybudget/internal/routes"
)

func routesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the screens and the signals that open them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			table, err := routeTable(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ROUTES")
			for _, route := range table.Routes() {
				fmt.Fprintf(out, "  %s\n", route)
			}

			today := screenDeps(cfg, nil).Today()
			fmt.Fprintln(out, "\nSIGNALS")
			for _, kind := range routes.AllSignals() {
				dest, _ := routes.SignalDestination(kind, today)
				fmt.Fprintf(out, "  %-28s -> %s\n", kind, dest.Route())
			}
			return nil
		},
	}
}
