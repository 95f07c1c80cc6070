// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"fmt"

	"github.com/easybudget/easybudget/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormDB wraps the GORM database connection
type GormDB struct {
	db *gorm.DB
}

// NewGormDB creates a new GORM database connection
func NewGormDB(cfg *config.DatabaseConfig) (*GormDB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN())
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{db: db}, nil
}

// AutoMigrate runs database migrations
func (db *GormDB) AutoMigrate() error {
	if err := db.db.AutoMigrate(&BackStackEntry{}, &Preference{}); err != nil {
		return err
	}

	if !db.db.Migrator().HasIndex(&BackStackEntry{}, backStackSessionPositionIndex) {
		if err := db.db.Migrator().CreateIndex(&BackStackEntry{}, backStackSessionPositionIndex); err != nil {
			return fmt.Errorf("failed to create back stack order index (session, position): %w", err)
		}
	}

	return nil
}

// ValidateSchema checks if GORM models match the database schema
func (db *GormDB) ValidateSchema() error {
	tables := []struct {
		model   any
		name    string
		columns []string
	}{
		{&BackStackEntry{}, "back_stack_entries", []string{"id", "session", "position", "route", "args", "created_at"}},
		{&Preference{}, "preferences", []string{"session", "key", "value", "updated_at"}},
	}

	var missingTables []string
	for _, table := range tables {
		if !db.db.Migrator().HasTable(table.model) {
			missingTables = append(missingTables, table.name)
		}
	}
	if len(missingTables) > 0 {
		return fmt.Errorf("missing tables: %v\n\nRun 'easybudget migrate' to create the required tables", missingTables)
	}

	var missingColumns []string
	for _, table := range tables {
		for _, col := range table.columns {
			if !db.db.Migrator().HasColumn(table.model, col) {
				missingColumns = append(missingColumns, fmt.Sprintf("%s.%s", table.name, col))
			}
		}
	}
	if len(missingColumns) > 0 {
		return fmt.Errorf("missing columns: %v\n\nRun 'easybudget migrate' to add the required columns", missingColumns)
	}

	if !db.db.Migrator().HasIndex(&BackStackEntry{}, backStackSessionPositionIndex) {
		return fmt.Errorf("missing indexes: [back_stack_entries.%s]\n\nRun 'easybudget migrate' to add the required indexes", backStackSessionPositionIndex)
	}

	return nil
}

// Close closes the database connection
func (db *GormDB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
