// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package budget

// SelectedAccount is the account whose budget is on screen.
// It is either OfflineAccount or OnlineAccount.
type SelectedAccount interface {
	// DisplayName is the label shown in the account header.
	DisplayName() string
	isSelectedAccount()
}

// OfflineAccount is the default account kept on this device.
type OfflineAccount struct{}

func (OfflineAccount) DisplayName() string { return "Default (offline)" }
func (OfflineAccount) isSelectedAccount()  {}

// OnlineAccount is an account shared through the sync service.
type OnlineAccount struct {
	ID          string
	Name        string
	OwnerEmail  string
	IsUserOwner bool
	Secret      string
}

func (a OnlineAccount) DisplayName() string { return a.Name + " (online)" }
func (OnlineAccount) isSelectedAccount()    {}
