// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"time"

	"github.com/samber/lo"

	"github.com/easybudget/easybudget/internal/budget"
	"github.com/easybudget/easybudget/internal/config"
	"github.com/easybudget/easybudget/internal/database"
	"github.com/easybudget/easybudget/internal/tui"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// screenDeps collects what the screens need from the configuration and the database.
func screenDeps(cfg *config.AppConfig, db *database.GormDB) screens.Deps {
	accounts := lo.Map(cfg.App.Accounts, func(a config.AccountConfig, _ int) budget.OnlineAccount {
		return budget.OnlineAccount{
			ID:          a.ID,
			Name:        a.Name,
			OwnerEmail:  a.OwnerEmail,
			IsUserOwner: a.Owner,
			Secret:      a.Secret,
		}
	})

	var prefs screens.Preferences = screens.NewMemoryPreferences(false)
	if db != nil {
		prefs = db.Preferences(cfg.Navigation.Session)
	}

	return screens.Deps{
		Now:         time.Now,
		Currency:    cfg.App.Currency,
		Flavor:      cfg.App.Flavor,
		Accounts:    screens.StaticAccounts(accounts),
		Preferences: prefs,
	}
}

// routeTable builds the screen table without a database, for commands that
// only decode routes.
func routeTable(cfg *config.AppConfig) (*tui.ScreenTable, error) {
	return tui.BuildRouteTable(screenDeps(cfg, nil))
}
