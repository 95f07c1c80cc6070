// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Flavors the app ships as. The flavor names the default persistence session.
const (
	FlavorEasyBudget     = "easybudget"
	FlavorFinanceTracker = "financetracker"
)

// AppConfig holds all application configuration.
// It is instantiated by NewConfig() and passed to components that need it.
type AppConfig struct {
	App        AppSection       `mapstructure:"app"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	Navigation NavigationConfig `mapstructure:"navigation"`
}

// AppSection holds the product settings.
type AppSection struct {
	Flavor   string          `mapstructure:"flavor"`
	Currency string          `mapstructure:"currency"` // symbol amounts are printed with
	Accounts []AccountConfig `mapstructure:"accounts"`
}

// AccountConfig is an online account the user belongs to.
type AccountConfig struct {
	ID         string `mapstructure:"id"`
	Name       string `mapstructure:"name"`
	OwnerEmail string `mapstructure:"owner_email"`
	Owner      bool   `mapstructure:"owner"`
	Secret     string `mapstructure:"secret"`
}

// DatabaseConfig holds all database configuration.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// LogConfig holds comprehensive logging configuration
type LogConfig struct {
	Level    string            `mapstructure:"level"`
	Format   string            `mapstructure:"format"`
	Output   []LogOutputConfig `mapstructure:"output"`
	Levels   map[string]string `mapstructure:"levels"`
	Context  LogContextConfig  `mapstructure:"context"`
	Sampling LogSamplingConfig `mapstructure:"sampling"`
}

// LogOutputConfig defines where logs are written
type LogOutputConfig struct {
	Type    string          `mapstructure:"type"` // "file", "console", "syslog"
	Enabled bool            `mapstructure:"enabled"`
	Path    string          `mapstructure:"path"`   // For file output
	Rotate  LogRotateConfig `mapstructure:"rotate"` // For file output
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// LogContextConfig defines what context to include in logs
type LogContextConfig struct {
	IncludeCaller     bool   `mapstructure:"include_caller"`
	IncludeTimestamp  bool   `mapstructure:"include_timestamp"`
	IncludeLevel      bool   `mapstructure:"include_level"`
	IncludeStackTrace string `mapstructure:"include_stack_trace"` // Level at which to include stack trace
}

// LogSamplingConfig defines log sampling settings
type LogSamplingConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Initial    uint32        `mapstructure:"initial"`
	Thereafter uint32        `mapstructure:"thereafter"`
	Tick       time.Duration `mapstructure:"tick"`
}

// NavigationConfig controls back stack persistence.
type NavigationConfig struct {
	Persist bool   `mapstructure:"persist"` // save the back stack to the database after every change
	Restore bool   `mapstructure:"restore"` // reload the saved back stack at startup
	Session string `mapstructure:"session"` // defaults to the app flavor
}

// envKeys are bound explicitly so environment overrides work for keys
// absent from the config file.
var envKeys = []string{
	"app.flavor",
	"app.currency",
	"database.driver",
	"database.database",
	"database.host",
	"database.port",
	"database.username",
	"database.password",
	"database.ssl_mode",
	"log.level",
	"log.format",
	"navigation.persist",
	"navigation.restore",
	"navigation.session",
}

// NewConfig creates a new AppConfig by reading from a file, environment variables,
// and applying defaults.
func NewConfig(configPath string) (*AppConfig, error) {
	cfg := defaultConfig()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.easybudget")
	}

	v.SetEnvPrefix("EASYBUDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Read the config file. It's okay if it doesn't exist.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Values from the file and the environment overwrite the defaults.
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Navigation.Session == "" {
		cfg.Navigation.Session = cfg.App.Flavor
	}

	cfg.expandPaths()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// defaultConfig returns an AppConfig with default values.
// This is more type-safe than using viper.SetDefault().
func defaultConfig() AppConfig {
	return AppConfig{
		App: AppSection{
			Flavor:   FlavorEasyBudget,
			Currency: "$",
		},
		Database: DatabaseConfig{
			Driver:   "sqlite",
			Database: "~/.easybudget/easybudget.db",
			Host:     "localhost",
			Port:     5432,
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			Output: []LogOutputConfig{
				{
					Type:    "file",
					Enabled: true,
					Path:    "~/.easybudget/logs/easybudget.log",
					Rotate: LogRotateConfig{
						MaxSizeMB:  20,
						MaxBackups: 3,
						MaxAgeDays: 30,
						Compress:   true,
					},
				},
				{
					Type:    "console",
					Enabled: false, // the TUI owns the terminal
				},
			},
			Levels: map[string]string{
				"navigation": "INFO",
				"database":   "INFO",
				"tui":        "WARN",
				"cli":        "INFO",
			},
			Context: LogContextConfig{
				IncludeCaller:     true,
				IncludeTimestamp:  true,
				IncludeLevel:      true,
				IncludeStackTrace: "ERROR",
			},
			Sampling: LogSamplingConfig{
				Enabled:    false,
				Initial:    100,
				Thereafter: 100,
				Tick:       time.Second,
			},
		},
		Navigation: NavigationConfig{
			Persist: true,
			Restore: true,
		},
	}
}

// expandPaths expands ~ and environment variables in path configuration values
func (c *AppConfig) expandPaths() {
	if c.Database.Driver == "sqlite" && c.Database.Database != ":memory:" {
		c.Database.Database = expandPath(c.Database.Database)
	}
	for i := range c.Log.Output {
		c.Log.Output[i].Path = expandPath(c.Log.Output[i].Path)
	}
}

// expandPath expands ~ to home directory and environment variables
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}

// validate checks if the configuration is valid.
func (c *AppConfig) validate() error {
	if !slices.Contains([]string{FlavorEasyBudget, FlavorFinanceTracker}, c.App.Flavor) {
		return fmt.Errorf("app.flavor must be %q or %q, got: %s", FlavorEasyBudget, FlavorFinanceTracker, c.App.Flavor)
	}

	for i, account := range c.App.Accounts {
		if account.ID == "" || account.Name == "" {
			return fmt.Errorf("app.accounts[%d] needs an id and a name", i)
		}
	}

	if c.Database.Driver == "" {
		return errors.New("database driver is required")
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Database == "" {
		return errors.New("database.database is required")
	}

	validLogLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true, "FATAL": true, "PANIC": true,
	}
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Navigation.Restore && !c.Navigation.Persist {
		return errors.New("navigation.restore requires navigation.persist")
	}

	return nil
}

// GetDSN returns the database connection string.
func (dc *DatabaseConfig) GetDSN() string {
	switch dc.Driver {
	case "sqlite":
		dsn := dc.Database
		if dsn == ":memory:" {
			dsn = "file::memory:?cache=shared"
		}
		return dsn
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dc.Host, dc.Port, dc.Username, dc.Password, dc.Database, dc.SSLMode)
	default:
		return dc.Database
	}
}
