// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, FlavorEasyBudget, cfg.App.Flavor)
	assert.Equal(t, "$", cfg.App.Currency)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, filepath.IsAbs(cfg.Database.Database), "~ is expanded")
	assert.True(t, cfg.Navigation.Persist)
	assert.True(t, cfg.Navigation.Restore)
	assert.Equal(t, FlavorEasyBudget, cfg.Navigation.Session, "session defaults to the flavor")
	require.Len(t, cfg.Log.Output, 2)
	assert.False(t, cfg.Log.Output[1].Enabled, "console logging stays off under the TUI")
}

func TestNewConfig_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
app:
  flavor: financetracker
  currency: "€"
database:
  driver: sqlite
  database: ":memory:"
log:
  level: debug
  sampling:
    enabled: true
    tick: 5s
navigation:
  persist: false
  restore: false
`)
	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, FlavorFinanceTracker, cfg.App.Flavor)
	assert.Equal(t, "€", cfg.App.Currency)
	assert.Equal(t, ":memory:", cfg.Database.Database)
	assert.Equal(t, "file::memory:?cache=shared", cfg.Database.GetDSN())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "5s", cfg.Log.Sampling.Tick.String())
	assert.False(t, cfg.Navigation.Persist)
	assert.Equal(t, FlavorFinanceTracker, cfg.Navigation.Session)
}

func TestNewConfig_Accounts(t *testing.T) {
	path := writeConfig(t, `
app:
  accounts:
    - id: acc-1
      name: Shared
      owner_email: alex@example.com
      secret: s3cr3t
    - id: acc-2
      name: Family
      owner: true
`)
	cfg, err := NewConfig(path)
	require.NoError(t, err)

	require.Len(t, cfg.App.Accounts, 2)
	assert.Equal(t, AccountConfig{ID: "acc-1", Name: "Shared", OwnerEmail: "alex@example.com", Secret: "s3cr3t"}, cfg.App.Accounts[0])
	assert.True(t, cfg.App.Accounts[1].Owner)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("EASYBUDGET_NAVIGATION_SESSION", "work")
	t.Setenv("EASYBUDGET_APP_CURRENCY", "£")
	t.Setenv("EASYBUDGET_LOG_LEVEL", "warn")

	cfg, err := NewConfig(writeConfig(t, "app:\n  flavor: easybudget\n"))
	require.NoError(t, err)

	assert.Equal(t, "work", cfg.Navigation.Session)
	assert.Equal(t, "£", cfg.App.Currency)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown flavor", "app:\n  flavor: coinkeeper\n", "app.flavor"},
		{"unknown driver", "database:\n  driver: mysql\n", "unsupported database driver: mysql"},
		{"bad log level", "log:\n  level: loud\n", "invalid log level: loud"},
		{"account without id", "app:\n  accounts:\n    - name: Shared\n", "app.accounts[0] needs an id and a name"},
		{"restore without persist", "navigation:\n  persist: false\n  restore: true\n", "navigation.restore requires navigation.persist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewConfig_MissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestGetDSN(t *testing.T) {
	pg := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db",
		Port:     5432,
		Username: "budget",
		Password: "secret",
		Database: "easybudget",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=budget password=secret dbname=easybudget sslmode=disable", pg.GetDSN())

	sqlite := DatabaseConfig{Driver: "sqlite", Database: "/tmp/easybudget.db"}
	assert.Equal(t, "/tmp/easybudget.db", sqlite.GetDSN())
}
