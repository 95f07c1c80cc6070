// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/easybudget/easybudget/internal/navigation"
)

var _ navigation.StateStore = (*GormDB)(nil)

// SaveBackStack replaces the stored stack of session in one transaction.
func (db *GormDB) SaveBackStack(ctx context.Context, session string, entries []navigation.Entry) error {
	records := lo.Map(entries, func(e navigation.Entry, i int) BackStackEntry {
		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		args := string(e.Args)
		if args == "" {
			args = "{}"
		}
		return BackStackEntry{
			ID:       id,
			Session:  session,
			Position: i,
			Route:    string(e.Route),
			Args:     args,
		}
	})

	return db.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session = ?", session).Delete(&BackStackEntry{}).Error; err != nil {
			return fmt.Errorf("clear back stack: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("insert back stack: %w", err)
		}
		return nil
	})
}

// LoadBackStack returns the stored stack of session, bottom first.
func (db *GormDB) LoadBackStack(ctx context.Context, session string) ([]navigation.Entry, error) {
	var records []BackStackEntry
	err := db.db.WithContext(ctx).
		Where("session = ?", session).
		Order("position ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(records, func(r BackStackEntry, _ int) navigation.Entry {
		return navigation.Entry{
			ID:    r.ID,
			Route: navigation.Route(r.Route),
			Args:  json.RawMessage(r.Args),
		}
	}), nil
}

// DeleteBackStack removes the stored stack of session.
func (db *GormDB) DeleteBackStack(ctx context.Context, session string) (int64, error) {
	result := db.db.WithContext(ctx).Where("session = ?", session).Delete(&BackStackEntry{})
	return result.RowsAffected, result.Error
}

// Sessions lists the sessions that have a stored stack.
func (db *GormDB) Sessions(ctx context.Context) ([]string, error) {
	var sessions []string
	err := db.db.WithContext(ctx).
		Model(&BackStackEntry{}).
		Distinct("session").
		Order("session ASC").
		Pluck("session", &sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
