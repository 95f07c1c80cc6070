// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/easybudget/easybudget/internal/config"
)

// fallbackLogFile receives logs when every output is disabled, so the
// terminal stays clean for the TUI.
const fallbackLogFile = "easybudget-fallback.log"

// Manager manages multiple loggers for different packages
type Manager struct {
	config         *config.LogConfig
	globalLogger   zerolog.Logger
	packageLoggers map[string]zerolog.Logger
	mu             sync.RWMutex
	closers        []io.Closer
}

// output is one configured destination and whether it writes to a file.
type output struct {
	w    io.Writer
	file bool
}

// NewManager creates a new logger manager
func NewManager(cfg *config.LogConfig) (*Manager, error) {
	m := &Manager{
		config:         cfg,
		packageLoggers: make(map[string]zerolog.Logger),
	}

	globalLevel := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(globalLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	outputs, err := m.createOutputs(cfg)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("failed to create log writers: %w", err)
	}

	if len(outputs) == 0 {
		path := filepath.Join(os.TempDir(), fallbackLogFile)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to create fallback log file: %w", err)
		}
		m.closers = append(m.closers, file)
		outputs = append(outputs, output{w: file, file: true})
	}

	writers := make([]io.Writer, 0, len(outputs))
	for _, out := range outputs {
		if cfg.Format == "console" && out.file {
			writers = append(writers, fileConsoleWriter(out.w))
			continue
		}
		writers = append(writers, out.w)
	}

	m.globalLogger = m.createLogger(io.MultiWriter(writers...), globalLevel)
	return m, nil
}

// createOutputs opens every enabled output
func (m *Manager) createOutputs(cfg *config.LogConfig) ([]output, error) {
	var outputs []output

	for _, out := range cfg.Output {
		if !out.Enabled {
			continue
		}

		switch out.Type {
		case "console":
			if cfg.Format == "console" {
				outputs = append(outputs, output{w: stderrConsoleWriter()})
			} else {
				outputs = append(outputs, output{w: os.Stderr})
			}

		case "file":
			if out.Path == "" {
				return nil, fmt.Errorf("file output requires a path")
			}
			if err := os.MkdirAll(filepath.Dir(out.Path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}

			if out.Rotate.MaxSizeMB > 0 {
				w := &lumberjack.Logger{
					Filename:   out.Path,
					MaxSize:    out.Rotate.MaxSizeMB,
					MaxBackups: out.Rotate.MaxBackups,
					MaxAge:     out.Rotate.MaxAgeDays,
					Compress:   out.Rotate.Compress,
				}
				m.closers = append(m.closers, w)
				outputs = append(outputs, output{w: w, file: true})
			} else {
				file, err := os.OpenFile(out.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return nil, fmt.Errorf("failed to open log file %s: %w", out.Path, err)
				}
				m.closers = append(m.closers, file)
				outputs = append(outputs, output{w: file, file: true})
			}

		default:
			return nil, fmt.Errorf("unsupported output type: %s", out.Type)
		}
	}

	return outputs, nil
}

func stderrConsoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
		FormatFieldName: func(i any) string {
			return fmt.Sprintf("%s:", i)
		},
	}
}

func fileConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05.000",
		NoColor:    true,
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
	}
}

// createLogger creates a configured zerolog logger
func (m *Manager) createLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	log := zerolog.New(w).Level(level)

	if m.config.Context.IncludeTimestamp {
		log = log.With().Timestamp().Logger()
	}
	if m.config.Context.IncludeCaller {
		log = log.With().Caller().Logger()
	}
	if m.config.Context.IncludeStackTrace != "" {
		log = log.With().Stack().Logger()
	}

	if m.config.Sampling.Enabled {
		log = log.Sample(&zerolog.BurstSampler{
			Burst:       m.config.Sampling.Initial,
			Period:      m.config.Sampling.Tick,
			NextSampler: &zerolog.BasicSampler{N: m.config.Sampling.Thereafter},
		})
	}

	return log
}

// GetLogger returns a logger for a specific package
func (m *Manager) GetLogger(pkg string) zerolog.Logger {
	m.mu.RLock()
	if log, exists := m.packageLoggers[pkg]; exists {
		m.mu.RUnlock()
		return log
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if log, exists := m.packageLoggers[pkg]; exists {
		return log
	}

	level := parseLevel(m.config.Level)
	if pkgLevel, exists := m.config.Levels[pkg]; exists {
		level = parseLevel(pkgLevel)
	}

	log := m.globalLogger.With().Str("pkg", pkg).Logger().Level(level)
	m.packageLoggers[pkg] = log
	return log
}

// SetPackageLevel dynamically sets the log level for a package
func (m *Manager) SetPackageLevel(pkg string, level string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.Levels == nil {
		m.config.Levels = make(map[string]string)
	}
	m.config.Levels[pkg] = level

	if log, exists := m.packageLoggers[pkg]; exists {
		m.packageLoggers[pkg] = log.Level(parseLevel(level))
	}
}

// Close closes all file writers
func (m *Manager) Close() error {
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	m.closers = nil
	return nil
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	case "PANIC":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

var (
	globalManager *Manager
	globalMu      sync.RWMutex
)

// Initialize installs the global logger manager. Calling it again replaces
// the previous manager and closes its files.
func Initialize(cfg *config.LogConfig) error {
	m, err := NewManager(cfg)
	if err != nil {
		return err
	}

	globalMu.Lock()
	previous := globalManager
	globalManager = m
	globalMu.Unlock()

	if previous != nil {
		return previous.Close()
	}
	return nil
}

// GetLogger returns a logger for the specified package
func GetLogger(pkg string) zerolog.Logger {
	globalMu.RLock()
	m := globalManager
	globalMu.RUnlock()

	if m == nil {
		// Uninitialized: discard rather than write over the TUI.
		return zerolog.New(io.Discard)
	}
	return m.GetLogger(pkg)
}

// CloseGlobal closes the global logger manager
func CloseGlobal() error {
	globalMu.Lock()
	m := globalManager
	globalManager = nil
	globalMu.Unlock()

	if m != nil {
		return m.Close()
	}
	return nil
}
