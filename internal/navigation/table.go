// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ScreenFactory builds the screen for a decoded destination. sc is the
// context of the new back-stack entry; keep it to read results later.
type ScreenFactory[D Destination, S any] func(dest D, sc *ScreenContext) (S, error)

type registration[S any] struct {
	encode func(Destination) (json.RawMessage, error)
	decode func(json.RawMessage) (Destination, error)
	build  func(Destination, *ScreenContext) (S, error)
}

// RouteTable maps every route to its codec and screen factory.
// It is filled once at startup and read-only afterwards.
type RouteTable[S any] struct {
	routes map[Route]registration[S]
	order  []Route
}

// NewRouteTable creates an empty route table for screens of type S.
func NewRouteTable[S any]() *RouteTable[S] {
	return &RouteTable[S]{
		routes: make(map[Route]registration[S]),
	}
}

// Register adds the destination type D with its codec and factory.
// Registering a route twice panics: each route has exactly one codec.
func Register[D Destination, S any](t *RouteTable[S], codec Codec[D], factory ScreenFactory[D, S]) *RouteTable[S] {
	var zero D
	route := zero.Route()
	if route == "" {
		panic(fmt.Sprintf("navigation: %T has an empty route", zero))
	}
	if _, exists := t.routes[route]; exists {
		panic(fmt.Sprintf("navigation: route %q registered twice", route))
	}

	t.routes[route] = registration[S]{
		encode: func(d Destination) (json.RawMessage, error) {
			typed, ok := d.(D)
			if !ok {
				return nil, fmt.Errorf("navigation: %T is not a %q destination", d, route)
			}
			return codec.Encode(typed), nil
		},
		decode: func(raw json.RawMessage) (Destination, error) {
			d, err := codec.Decode(raw)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
		build: func(d Destination, sc *ScreenContext) (S, error) {
			typed, ok := d.(D)
			if !ok {
				var none S
				return none, fmt.Errorf("navigation: %T is not a %q destination", d, route)
			}
			return factory(typed, sc)
		},
	}
	t.order = append(t.order, route)
	return t
}

// Validate checks that every route in required has a registration.
// The returned error joins one *UnregisteredDestinationError per missing route.
func (t *RouteTable[S]) Validate(required ...Route) error {
	var errs []error
	for _, route := range required {
		if !t.Has(route) {
			errs = append(errs, &UnregisteredDestinationError{Route: route})
		}
	}
	return errors.Join(errs...)
}

// Has reports whether route is registered.
func (t *RouteTable[S]) Has(route Route) bool {
	_, ok := t.routes[route]
	return ok
}

// Routes returns the registered routes in registration order.
func (t *RouteTable[S]) Routes() []Route {
	return slices.Clone(t.order)
}

// Encode returns the wire arguments of dest.
func (t *RouteTable[S]) Encode(dest Destination) (json.RawMessage, error) {
	reg, ok := t.routes[dest.Route()]
	if !ok {
		return nil, &UnregisteredDestinationError{Route: dest.Route()}
	}
	return reg.encode(dest)
}

// Decode parses wire arguments stored under route.
func (t *RouteTable[S]) Decode(route Route, args json.RawMessage) (Destination, error) {
	reg, ok := t.routes[route]
	if !ok {
		return nil, &UnregisteredDestinationError{Route: route}
	}
	return reg.decode(args)
}

func (t *RouteTable[S]) build(dest Destination, sc *ScreenContext) (S, error) {
	reg, ok := t.routes[dest.Route()]
	if !ok {
		var none S
		return none, &UnregisteredDestinationError{Route: dest.Route()}
	}
	return reg.build(dest, sc)
}
