// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybudget/easybudget/internal/budget"
)

func TestPreferenceStorage(t *testing.T) {
	db := createAndMigrateDB(t, setupTestDB(t))
	ctx := context.Background()

	_, ok, err := db.GetPreference(ctx, "easybudget", "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetPreference(ctx, "easybudget", "theme", "dark"))
	require.NoError(t, db.SetPreference(ctx, "easybudget", "theme", "light"))
	require.NoError(t, db.SetPreference(ctx, "financetracker", "theme", "dark"))

	value, ok, err := db.GetPreference(ctx, "easybudget", "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	value, _, err = db.GetPreference(ctx, "financetracker", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestPreferences(t *testing.T) {
	cfg := setupTestDB(t)
	db := createAndMigrateDB(t, cfg)
	prefs := db.Preferences("easybudget")

	t.Run("first launch defaults", func(t *testing.T) {
		assert.False(t, prefs.OnboardingCompleted())
		assert.Equal(t, budget.OfflineAccount{}, prefs.SelectedAccount())
	})

	t.Run("values survive a reconnect", func(t *testing.T) {
		shared := budget.OnlineAccount{
			ID:         "acc-1",
			Name:       "Shared",
			OwnerEmail: "alex@example.com",
			Secret:     "s3cr3t",
		}
		prefs.SetOnboardingCompleted(true)
		prefs.SetSelectedAccount(shared)

		reopened := createAndMigrateDB(t, cfg).Preferences("easybudget")
		assert.True(t, reopened.OnboardingCompleted())
		assert.Equal(t, shared, reopened.SelectedAccount())
	})

	t.Run("unreadable account falls back to offline", func(t *testing.T) {
		require.NoError(t, db.SetPreference(context.Background(), "easybudget", prefSelectedAccount, `{"type":"cloud"}`))
		assert.Equal(t, budget.OfflineAccount{}, prefs.SelectedAccount())
	})

	t.Run("nil account is stored as offline", func(t *testing.T) {
		prefs.SetSelectedAccount(nil)
		assert.Equal(t, budget.OfflineAccount{}, prefs.SelectedAccount())
	})

	t.Run("sessions are separate", func(t *testing.T) {
		other := db.Preferences("financetracker")
		assert.False(t, other.OnboardingCompleted())
	})
}
