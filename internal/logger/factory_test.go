// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybudget/easybudget/internal/config"
)

func TestStaticLoggerGetters(t *testing.T) {
	cfg := &config.LogConfig{
		Level:  "info",
		Format: "json",
		Output: []config.LogOutputConfig{
			{Type: "file", Enabled: true, Path: filepath.Join(t.TempDir(), "getters.log")},
		},
		Levels: map[string]string{
			"navigation": "debug",
			"database":   "trace",
			"tui":        "error",
			"cli":        "warn",
		},
	}
	require.NoError(t, Initialize(cfg))
	t.Cleanup(func() { CloseGlobal() })

	tests := []struct {
		name   string
		getter func() zerolog.Logger
		level  zerolog.Level
	}{
		{"navigation", GetNavigationLogger, zerolog.DebugLevel},
		{"database", GetDatabaseLogger, zerolog.TraceLevel},
		{"tui", GetTUILogger, zerolog.ErrorLevel},
		{"cli", GetCLILogger, zerolog.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.level, tt.getter().GetLevel())
		})
	}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	require.NoError(t, CloseGlobal())

	log := GetNavigationLogger()
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}
