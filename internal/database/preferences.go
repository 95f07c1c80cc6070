// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/logger"
	"github.com/easybudget/easybudget/internal/routes"
)

const (
	prefOnboardingCompleted = "onboarding_completed"
	prefSelectedAccount     = "selected_account"
)

// GetPreference returns the value stored under key for session.
func (db *GormDB) GetPreference(ctx context.Context, session, key string) (string, bool, error) {
	var pref Preference
	err := db.db.WithContext(ctx).
		Where("session = ? AND key = ?", session, key).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

// SetPreference stores value under key for session, replacing any previous value.
func (db *GormDB) SetPreference(ctx context.Context, session, key, value string) error {
	pref := Preference{Session: session, Key: key, Value: value}
	return db.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

// Preferences are the UI settings of one session. Storage errors are logged
// and reads fall back to first-launch values.
type Preferences struct {
	db      *GormDB
	session string
	log     zerolog.Logger
}

// Preferences returns the settings stored for session.
func (db *GormDB) Preferences(session string) *Preferences {
	return &Preferences{
		db:      db,
		session: session,
		log:     logger.GetDatabaseLogger().With().Str("session", session).Logger(),
	}
}

func (p *Preferences) OnboardingCompleted() bool {
	value, ok, err := p.db.GetPreference(context.Background(), p.session, prefOnboardingCompleted)
	if err != nil {
		p.log.Error().Err(err).Msg("Failed to read onboarding state")
		return false
	}
	done, _ := strconv.ParseBool(value)
	return ok && done
}

func (p *Preferences) SetOnboardingCompleted(done bool) {
	if err := p.db.SetPreference(context.Background(), p.session, prefOnboardingCompleted, strconv.FormatBool(done)); err != nil {
		p.log.Error().Err(err).Msg("Failed to save onboarding state")
	}
}

func (p *Preferences) SelectedAccount() budget.SelectedAccount {
	value, ok, err := p.db.GetPreference(context.Background(), p.session, prefSelectedAccount)
	if err != nil {
		p.log.Error().Err(err).Msg("Failed to read selected account")
		return budget.OfflineAccount{}
	}
	if !ok {
		return budget.OfflineAccount{}
	}
	account, err := routes.DecodeSelectedAccount(json.RawMessage(value))
	if err != nil {
		p.log.Warn().Err(err).Msg("Stored selected account is unreadable, using the offline account")
		return budget.OfflineAccount{}
	}
	return account
}

// SetSelectedAccount stores account. nil stands for the offline account.
func (p *Preferences) SetSelectedAccount(account budget.SelectedAccount) {
	if account == nil {
		account = budget.OfflineAccount{}
	}
	raw := routes.EncodeSelectedAccount(account)
	if err := p.db.SetPreference(context.Background(), p.session, prefSelectedAccount, string(raw)); err != nil {
		p.log.Error().Err(err).Msg("Failed to save selected account")
	}
}
