// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

// Route is the tag that identifies a destination type in the route table and
// in persisted back stacks. Route strings are stored on disk; never rename one.
type Route string

// Destination is where to navigate and what the target screen needs.
// Implementations are plain value structs; Route must not depend on field
// values, as it is called on the zero value during registration.
type Destination interface {
	Route() Route
}
