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

func TestRouteTable_Register(t *testing.T) {
	table := newTestTable()

	assert.Equal(t, []Route{"home", "detail", "report", "broken"}, table.Routes())
	assert.True(t, table.Has("detail"))
	assert.False(t, table.Has("stray"))
}

func TestRouteTable_RegisterTwicePanics(t *testing.T) {
	table := newTestTable()
	assert.PanicsWithValue(t, `navigation: route "detail" registered twice`, func() {
		Register(table, detailCodec, func(detailDest, *ScreenContext) (*testScreen, error) {
			return nil, nil
		})
	})
}

func TestRouteTable_Validate(t *testing.T) {
	table := newTestTable()

	t.Run("all registered", func(t *testing.T) {
		assert.NoError(t, table.Validate("home", "detail", "report"))
	})

	t.Run("reports every missing route", func(t *testing.T) {
		err := table.Validate("home", "stray", "settings")
		require.Error(t, err)
		assert.True(t, IsUnregistered(err))
		assert.Contains(t, err.Error(), `"stray"`)
		assert.Contains(t, err.Error(), `"settings"`)
		assert.NotContains(t, err.Error(), `"home"`)
	})
}

func TestRouteTable_EncodeDecode(t *testing.T) {
	table := newTestTable()

	raw, err := table.Encode(detailDest{ID: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42}`, string(raw))

	dest, err := table.Decode("detail", raw)
	require.NoError(t, err)
	assert.Equal(t, detailDest{ID: 42}, dest)

	_, err = table.Encode(strayDest{})
	var unregistered *UnregisteredDestinationError
	require.ErrorAs(t, err, &unregistered)
	assert.Equal(t, Route("stray"), unregistered.Route)

	_, err = table.Decode("stray", json.RawMessage(`{}`))
	assert.True(t, IsUnregistered(err))
}

// impostorDest claims the detail route without being a detailDest.
type impostorDest struct{}

func (impostorDest) Route() Route { return "detail" }

func TestRouteTable_NoCrossDecoding(t *testing.T) {
	table := newTestTable()

	_, err := table.Encode(impostorDest{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "is not a \"detail\" destination")
}
