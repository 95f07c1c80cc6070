// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package navigation provides a typed back stack with persistable arguments.
//
// Every screen is reached through a Destination: a small value record that
// names its Route and carries the data the screen needs. Each route is
// registered once in a RouteTable together with exactly one Codec and one
// ScreenFactory:
//
//	table := navigation.NewRouteTable[Screen]()
//	navigation.Register(table, routes.PremiumCodec, func(d routes.PremiumDestination, sc *navigation.ScreenContext) (Screen, error) {
//	    return newPremiumScreen(d.StartOnPro), nil
//	})
//	if err := table.Validate(routes.AllRoutes()...); err != nil {
//	    return err // a route without a screen is a programming error
//	}
//
// The Navigator owns the stack. Navigate encodes the destination's arguments
// to field-named JSON, decodes them back through the same codec and builds
// the screen from the decoded value, so a screen never sees anything a
// restore after restart would not reproduce. With a StateStore configured,
// every push and pop is persisted, and Restore brings the stack back at
// startup, truncating it at the first entry that no longer decodes.
//
// # Results
//
// A screen returns a value to the screen below it with NavigateBack(ctx, v).
// The value lands in the caller's ResultSlot, which holds one pending value
// and is cleared when read:
//
//	if res, ok := navigation.TakeResult[OnboardingResult](sc.Results()); ok {
//	    ...
//	}
//
// # Signals
//
// Requests to open a screen that originate outside the event loop (deep
// links, notifications) go through Signals: one coalescing channel per kind,
// drained without blocking by the loop that owns the Navigator.
//
// A Navigator is not safe for concurrent use. All navigation happens on the
// goroutine that owns it, one request at a time.
package navigation
