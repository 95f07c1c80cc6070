// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	for _, d := range []reportDest{{2024, 1}, {2025, 12}, {1999, 6}} {
		got, err := reportCodec.Decode(reportCodec.Encode(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestJSONCodec_FieldNamed(t *testing.T) {
	raw := reportCodec.Encode(reportDest{Year: 2025, Month: 3})
	assert.JSONEq(t, `{"year":2025,"month":3}`, string(raw))

	t.Run("field order does not matter", func(t *testing.T) {
		got, err := reportCodec.Decode(json.RawMessage(`{"month":3,"year":2025}`))
		require.NoError(t, err)
		assert.Equal(t, reportDest{Year: 2025, Month: 3}, got)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		got, err := reportCodec.Decode(json.RawMessage(`{"year":2025,"month":3,"week":2}`))
		require.NoError(t, err)
		assert.Equal(t, reportDest{Year: 2025, Month: 3}, got)
	})
}

func TestJSONCodec_DecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantField string
		wantIs    error
	}{
		{"missing month", `{"year":2025}`, "month", ErrMissingField},
		{"missing year", `{"month":2}`, "year", ErrMissingField},
		{"empty object", `{}`, "year", ErrMissingField},
		{"empty payload", ``, "year", ErrMissingField},
		{"null payload", `null`, "year", ErrMissingField},
		{"month out of range", `{"year":2025,"month":13}`, "month", ErrInvalidValue},
		{"wrong type", `{"year":"2025","month":1}`, "year", ErrInvalidValue},
		{"not json", `{year:`, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reportCodec.Decode(json.RawMessage(tt.raw))
			require.Error(t, err)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "expected *DecodeError, got %T", err)
			assert.Equal(t, Route("report"), decodeErr.Route)
			assert.Equal(t, tt.wantField, decodeErr.Field)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.True(t, IsDecodeError(err))
		})
	}
}

func TestEmptyCodec(t *testing.T) {
	codec := EmptyCodec[homeDest]()
	assert.JSONEq(t, `{}`, string(codec.Encode(homeDest{})))

	got, err := codec.Decode(json.RawMessage(`{"legacy":true}`))
	require.NoError(t, err)
	assert.Equal(t, homeDest{}, got)

	for _, raw := range []string{`{"garbage`, `[1,2]`, `"home"`} {
		_, err := codec.Decode(json.RawMessage(raw))
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr, raw)
		assert.Equal(t, homeDest{}.Route(), decodeErr.Route, raw)
	}
}

func TestNested(t *testing.T) {
	_, inner := Required[int]("year", nil)
	err := Nested("month", inner)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "month.year", decodeErr.Field)
	assert.ErrorIs(t, err, ErrMissingField)

	err = Nested("account", errors.New("boom"))
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "account", decodeErr.Field)
}

func TestDecodeError_Message(t *testing.T) {
	err := &DecodeError{Route: "report", Field: "month", Err: ErrMissingField}
	assert.Equal(t, `decode report arguments: field "month": missing required field`, err.Error())

	err = &DecodeError{Err: ErrInvalidValue}
	assert.Equal(t, "decode arguments: invalid value", err.Error())
}

func TestMustMarshal_PanicsOnUnrepresentableWire(t *testing.T) {
	assert.Panics(t, func() {
		MustMarshal(map[string]any{"ch": make(chan int)})
	})
}
