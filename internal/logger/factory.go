// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters that map directly to config.yaml log.levels

// GetNavigationLogger returns a logger for the back stack and route table
func GetNavigationLogger() zerolog.Logger {
	return GetLogger("navigation")
}

// GetDatabaseLogger returns a logger for database operations
func GetDatabaseLogger() zerolog.Logger {
	return GetLogger("database")
}

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetCLILogger returns a logger for command line handling
func GetCLILogger() zerolog.Logger {
	return GetLogger("cli")
}
