// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package info

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/easybudget/easybudget/internal/routes"
	"github.com/easybudget/easybudget/internal/tui/messages"
	"github.com/easybudget/easybudget/internal/tui/screens"
)

// Premium describes the Pro plan. StartOnPro preselects it.
func Premium(d routes.PremiumDestination) Page {
	plan := "Choose a plan to unlock cloud backup and the monthly report."
	status := ""
	if d.StartOnPro {
		plan = "Pro plan selected: cloud backup, monthly reports, shared accounts."
		status = "Pro"
	}
	return Page{
		Title:       "Premium",
		Breadcrumbs: []string{"Budget", "Premium"},
		Lines:       []string{plan, "", "Purchases are handled by the mobile app."},
		Status:      status,
		Actions: []Action{
			NewAction([]string{"l"}, "l", "log in", Open(routes.LoginDestination{ShouldDismissAfterAuth: true})),
		},
	}
}

// MonthlyReport summarizes a month. Opened from the reminder it covers the
// month that just ended, otherwise the current one.
func MonthlyReport(deps screens.Deps, d routes.MonthlyReportDestination) Page {
	month := deps.Today().YearMonth()
	status := ""
	if d.FromNotification {
		month = month.Previous()
		status = "Opened from the monthly reminder"
	}
	return Page{
		Title:       "Monthly report",
		Breadcrumbs: []string{"Budget", "Report", month.String()},
		Lines: []string{
			fmt.Sprintf("Report for %s", month),
			"",
			"Press x to export it as CSV.",
		},
		Status: status,
		Actions: []Action{
			NewAction([]string{"x"}, "x", "export", Open(routes.MonthlyReportExportDestination{Month: month})),
		},
	}
}

// MonthlyReportExport confirms the export of d.Month and returns to the report.
func MonthlyReportExport(d routes.MonthlyReportExportDestination) Page {
	return Page{
		Title:       "Export",
		Breadcrumbs: []string{"Budget", "Report", "Export"},
		Lines:       []string{fmt.Sprintf("Export %s as CSV.", d.Month)},
		Actions: []Action{
			NewAction([]string{"enter"}, "enter", "export", func(m *Model) tea.Cmd {
				m.SetStatus(fmt.Sprintf("Exported %s", d.Month))
				return nil
			}),
		},
	}
}

// BackupSettings explains cloud backup, which needs an account.
func BackupSettings() Page {
	return Page{
		Title:       "Cloud backup",
		Breadcrumbs: []string{"Budget", "Settings", "Backup"},
		Lines:       []string{"Back up your budget to keep it across devices.", "", "Log in to turn backup on."},
		Actions: []Action{
			NewAction([]string{"l"}, "l", "log in", Open(routes.LoginDestination{ShouldDismissAfterAuth: true})),
		},
	}
}

// Login signs the user in. With ShouldDismissAfterAuth the screen closes
// itself once signed in.
func Login(d routes.LoginDestination) Page {
	return Page{
		Title:       "Log in",
		Breadcrumbs: []string{"Budget", "Log in"},
		Lines:       []string{"Sign in to sync accounts and backups."},
		Actions: []Action{
			NewAction([]string{"enter"}, "enter", "log in", func(m *Model) tea.Cmd {
				if d.ShouldDismissAfterAuth {
					return messages.GoBack(nil)
				}
				m.SetStatus("Logged in")
				return nil
			}),
		},
	}
}

// CreateAccount starts a new shared account and returns to the root.
func CreateAccount() Page {
	return Page{
		Title:       "New account",
		Breadcrumbs: []string{"Budget", "Accounts", "New"},
		Lines:       []string{"Create a shared account and invite people to it."},
		Actions: []Action{
			NewAction([]string{"enter"}, "enter", "create", func(*Model) tea.Cmd {
				return messages.PopToRoot()
			}),
		},
	}
}

// ManageAccount shows an online account. The invitation secret is revealed on demand.
func ManageAccount(d routes.ManageAccountDestination) Page {
	role := "member"
	if d.Account.IsUserOwner {
		role = "owner"
	}
	return Page{
		Title:       d.Account.Name,
		Breadcrumbs: []string{"Budget", "Accounts", d.Account.Name},
		Lines: []string{
			"Owner: " + d.Account.OwnerEmail,
			"You are the " + role + " of this account.",
		},
		Actions: []Action{
			NewAction([]string{"s"}, "s", "show secret", func(m *Model) tea.Cmd {
				m.SetStatus("Invitation secret: " + d.Account.Secret)
				return nil
			}),
		},
	}
}
