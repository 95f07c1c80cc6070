// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Codec converts one destination type to and from its wire arguments.
// Encode is total: every representable destination encodes. Decode fails
// with a *DecodeError when the payload does not have the expected shape.
type Codec[D Destination] struct {
	encode func(D) json.RawMessage
	decode func(json.RawMessage) (D, error)
}

// NewCodec pairs an encode and a decode function. Decode errors that are not
// already a *DecodeError are wrapped into one for the codec's route.
func NewCodec[D Destination](encode func(D) json.RawMessage, decode func(json.RawMessage) (D, error)) Codec[D] {
	return Codec[D]{encode: encode, decode: decode}
}

// Encode returns the wire arguments of d.
func (c Codec[D]) Encode(d D) json.RawMessage {
	return c.encode(d)
}

// Decode parses wire arguments back into a destination.
func (c Codec[D]) Decode(raw json.RawMessage) (D, error) {
	d, err := c.decode(raw)
	if err != nil {
		var zero D
		return zero, asDecodeError(zero.Route(), err)
	}
	return d, nil
}

// JSONCodec builds a codec from a field-named wire struct W. toWire must be
// total; fromWire validates the wire value (use Required for mandatory
// fields). Unknown JSON fields are ignored so payloads written by newer
// versions still decode.
func JSONCodec[D Destination, W any](toWire func(D) W, fromWire func(W) (D, error)) Codec[D] {
	var zero D
	route := zero.Route()
	return NewCodec(
		func(d D) json.RawMessage {
			return MustMarshal(toWire(d))
		},
		func(raw json.RawMessage) (D, error) {
			var w W
			if err := Unmarshal(route, raw, &w); err != nil {
				return zero, err
			}
			return fromWire(w)
		},
	)
}

// EmptyCodec is the codec of destinations without parameters.
// Any JSON object decodes to the zero destination; fields are ignored.
func EmptyCodec[D Destination]() Codec[D] {
	var zero D
	route := zero.Route()
	return NewCodec(
		func(D) json.RawMessage {
			return json.RawMessage(`{}`)
		},
		func(raw json.RawMessage) (D, error) {
			var w struct{}
			if err := Unmarshal(route, raw, &w); err != nil {
				return zero, err
			}
			return zero, nil
		},
	)
}

// MustMarshal encodes v as JSON. A failure means the wire type holds
// something JSON cannot represent, which is a bug in the wire type.
func MustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("navigation: marshal %T: %v", v, err))
	}
	return b
}

// Unmarshal decodes raw into v and reports failures as *DecodeError.
// An empty or null payload decodes as an empty object.
func Unmarshal(route Route, raw json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte(`{}`)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &DecodeError{Route: route, Field: typeErr.Field, Err: fmt.Errorf("%w: %w", ErrInvalidValue, err)}
		}
		return &DecodeError{Route: route, Err: err}
	}
	return nil
}

// Required returns *v, or a DecodeError naming field when v is nil.
func Required[T any](field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, &DecodeError{Field: field, Err: ErrMissingField}
	}
	return *v, nil
}

// Invalid returns a DecodeError for a field whose value cannot be represented.
func Invalid(field string, format string, args ...any) error {
	return &DecodeError{Field: field, Err: fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))}
}

// Nested prefixes the field path of a DecodeError produced while decoding
// a nested value, so "year" inside "month" reports as "month.year".
func Nested(parent string, err error) error {
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		return &DecodeError{Field: parent, Err: err}
	}
	nested := *decodeErr
	if nested.Field == "" {
		nested.Field = parent
	} else {
		nested.Field = parent + "." + nested.Field
	}
	return &nested
}

func asDecodeError(route Route, err error) error {
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		return &DecodeError{Route: route, Err: err}
	}
	if decodeErr.Route != "" {
		return err
	}
	withRoute := *decodeErr
	withRoute.Route = route
	return &withRoute
}
