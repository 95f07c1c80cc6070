// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Test destinations

type homeDest struct{}

func (homeDest) Route() Route { return "home" }

type detailDest struct {
	ID int
}

func (detailDest) Route() Route { return "detail" }

type detailWire struct {
	ID *int `json:"id"`
}

type reportDest struct {
	Year  int
	Month int
}

func (reportDest) Route() Route { return "report" }

type reportWire struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
}

type brokenDest struct{}

func (brokenDest) Route() Route { return "broken" }

type strayDest struct{}

func (strayDest) Route() Route { return "stray" }

var (
	detailCodec = JSONCodec(
		func(d detailDest) detailWire { return detailWire{ID: &d.ID} },
		func(w detailWire) (detailDest, error) {
			id, err := Required("id", w.ID)
			if err != nil {
				return detailDest{}, err
			}
			return detailDest{ID: id}, nil
		},
	)

	reportCodec = JSONCodec(
		func(d reportDest) reportWire { return reportWire{Year: &d.Year, Month: &d.Month} },
		func(w reportWire) (reportDest, error) {
			year, err := Required("year", w.Year)
			if err != nil {
				return reportDest{}, err
			}
			month, err := Required("month", w.Month)
			if err != nil {
				return reportDest{}, err
			}
			if month < 1 || month > 12 {
				return reportDest{}, Invalid("month", "%d is not a month", month)
			}
			return reportDest{Year: year, Month: month}, nil
		},
	)
)

type testScreen struct {
	dest Destination
	sc   *ScreenContext
}

func newTestTable() *RouteTable[*testScreen] {
	table := NewRouteTable[*testScreen]()
	screen := func(d Destination, sc *ScreenContext) (*testScreen, error) {
		return &testScreen{dest: d, sc: sc}, nil
	}
	Register(table, EmptyCodec[homeDest](), func(d homeDest, sc *ScreenContext) (*testScreen, error) {
		return screen(d, sc)
	})
	Register(table, detailCodec, func(d detailDest, sc *ScreenContext) (*testScreen, error) {
		return screen(d, sc)
	})
	Register(table, reportCodec, func(d reportDest, sc *ScreenContext) (*testScreen, error) {
		return screen(d, sc)
	})
	Register(table, EmptyCodec[brokenDest](), func(brokenDest, *ScreenContext) (*testScreen, error) {
		return nil, errors.New("screen unavailable")
	})
	return table
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	}
}

func newTestNavigator(t *testing.T, opts ...Option) *Navigator[*testScreen] {
	t.Helper()
	opts = append([]Option{WithLogger(zerolog.Nop()), WithEntryIDs(sequentialIDs())}, opts...)
	nav, err := New(newTestTable(), homeDest{}, opts...)
	require.NoError(t, err)
	return nav
}

// failingStore fails every save after the first `allow` calls.
type failingStore struct {
	*MemoryStore
	allow int
	saves int
}

func (f *failingStore) SaveBackStack(ctx context.Context, session string, entries []Entry) error {
	f.saves++
	if f.saves > f.allow {
		return errors.New("disk full")
	}
	return f.MemoryStore.SaveBackStack(ctx, session, entries)
}
