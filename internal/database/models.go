// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import "time"

// BackStackEntry is one persisted screen of a navigation back stack.
// Position 0 is the bottom of the stack.
type BackStackEntry struct {
	ID        string    `gorm:"primaryKey"`
	Session   string    `gorm:"not null;uniqueIndex:idx_back_stack_entries_session_position,priority:1"`
	Position  int       `gorm:"not null;uniqueIndex:idx_back_stack_entries_session_position,priority:2"`
	Route     string    `gorm:"not null"`
	Args      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BackStackEntry) TableName() string {
	return "back_stack_entries"
}

const backStackSessionPositionIndex = "idx_back_stack_entries_session_position"

// Preference is one stored setting of a session.
type Preference struct {
	Session   string    `gorm:"primaryKey"`
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Preference) TableName() string {
	return "preferences"
}
