// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a serialized argument without a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidValue marks a serialized field whose value cannot be represented.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateResultDelivery is returned by ResultSlot.Deliver when it
	// overwrote a result nobody had read yet.
	ErrDuplicateResultDelivery = errors.New("result delivered before the previous one was consumed")

	// ErrEmptyStack is returned when going back with nothing on the stack.
	ErrEmptyStack = errors.New("navigation stack is empty")

	// ErrNavigatorClosed is returned by operations after the last screen was popped.
	ErrNavigatorClosed = errors.New("navigator closed")
)

// DecodeError reports serialized arguments that do not match the shape their
// route expects. It happens legitimately when a back stack persisted by an
// older version is restored.
type DecodeError struct {
	Route Route
	Field string // dotted path of the offending field, empty when the payload itself is bad
	Err   error
}

func (e *DecodeError) Error() string {
	prefix := "decode arguments"
	if e.Route != "" {
		prefix = fmt.Sprintf("decode %s arguments", e.Route)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %v", prefix, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError checks if err is or wraps a DecodeError.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// UnregisteredDestinationError reports a route with no screen factory.
// This is a programming error and is meant to surface from
// RouteTable.Validate at startup.
type UnregisteredDestinationError struct {
	Route Route
}

func (e *UnregisteredDestinationError) Error() string {
	return fmt.Sprintf("navigation: no screen registered for route %q", e.Route)
}

// IsUnregistered checks if err is or wraps an UnregisteredDestinationError.
func IsUnregistered(err error) bool {
	var unregistered *UnregisteredDestinationError
	return errors.As(err, &unregistered)
}
