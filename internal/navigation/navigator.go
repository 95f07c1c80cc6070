// Copyright (C) 2026 The EasyBudget Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/easybudget/easybudget/internal/logger"
)

// DefaultSession is the store session used when none is configured.
const DefaultSession = "default"

type options struct {
	store   StateStore
	session string
	onClose func()
	log     *zerolog.Logger
	newID   func() string
}

// Option configures a Navigator.
type Option func(*options)

// WithStore persists the back stack to store under session after every change.
func WithStore(store StateStore, session string) Option {
	return func(o *options) {
		o.store = store
		if session != "" {
			o.session = session
		}
	}
}

// WithCloseAction sets the function called when the last screen is popped.
func WithCloseAction(fn func()) Option {
	return func(o *options) {
		o.onClose = fn
	}
}

// WithLogger replaces the navigation package logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = &log
	}
}

// WithEntryIDs replaces the generator of back-stack entry IDs.
func WithEntryIDs(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

type frame[S any] struct {
	entry  Entry
	dest   Destination
	screen S
	built  bool
	sc     *ScreenContext
}

// Navigator owns a back stack of screens. It starts with the root
// destination and exits, through the close action, when the root is popped.
type Navigator[S any] struct {
	table   *RouteTable[S]
	root    Destination
	stack   *Stack[*frame[S]]
	store   StateStore
	session string
	onClose func()
	log     zerolog.Logger
	newID   func() string
	exited  bool
}

// RestoreReport describes what Restore did with the persisted stack.
type RestoreReport struct {
	Loaded  int  // entries found in the store
	Kept    int  // entries on the stack after restore
	Dropped int  // entries discarded because they no longer decode
	Reset   bool // the stack was reset to the root destination
}

// New creates a navigator whose stack holds only root. The root screen is
// built immediately, so factory errors surface here.
func New[S any](table *RouteTable[S], root Destination, opts ...Option) (*Navigator[S], error) {
	o := options{
		session: DefaultSession,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := logger.GetNavigationLogger()
	if o.log != nil {
		log = *o.log
	}

	if !table.Has(root.Route()) {
		return nil, &UnregisteredDestinationError{Route: root.Route()}
	}

	n := &Navigator[S]{
		table:   table,
		root:    root,
		stack:   NewStack[*frame[S]](),
		store:   o.store,
		session: o.session,
		onClose: o.onClose,
		log:     log.With().Str("session", o.session).Logger(),
		newID:   o.newID,
	}
	if err := n.resetToRoot(); err != nil {
		return nil, err
	}
	return n, nil
}

// Restore replaces the stack with the one persisted in the store.
//
// Entries are decoded bottom up. The stack is cut at the first entry that
// fails to decode or whose route is unknown; everything below it is kept.
// When the bottom entry is unusable or is not the root, the stack falls back
// to the root alone. Only the top screen is built here; a top entry whose
// screen cannot be built is dropped as well. The repaired stack is written back.
func (n *Navigator[S]) Restore(ctx context.Context) (RestoreReport, error) {
	var report RestoreReport
	if n.store == nil {
		report.Kept = n.stack.Len()
		return report, nil
	}

	entries, err := n.store.LoadBackStack(ctx, n.session)
	if err != nil {
		return report, fmt.Errorf("load back stack: %w", err)
	}
	report.Loaded = len(entries)

	frames := make([]*frame[S], 0, len(entries))
	for i, entry := range entries {
		if i == 0 && entry.Route != n.root.Route() {
			n.log.Warn().
				Str("route", string(entry.Route)).
				Str("root", string(n.root.Route())).
				Msg("Persisted back stack does not start at the root, resetting")
			break
		}
		dest, err := n.table.Decode(entry.Route, entry.Args)
		if err != nil {
			n.log.Warn().
				Err(err).
				Str("route", string(entry.Route)).
				Int("position", i).
				Int("dropped", len(entries)-i).
				Msg("Dropping undecodable back stack entries")
			break
		}
		if entry.ID == "" {
			entry.ID = n.newID()
		}
		frames = append(frames, &frame[S]{
			entry: entry,
			dest:  dest,
			sc:    NewScreenContext(entry.ID, entry.Route),
		})
	}

	kept := 0
	if len(frames) > 0 {
		n.stack.Clear()
		for _, f := range frames {
			n.stack.Push(f)
		}
		n.exited = false
		unbuildable, err := n.buildTop()
		if err != nil {
			return report, err
		}
		kept = len(frames) - unbuildable
	}
	if len(frames) == 0 {
		if err := n.resetToRoot(); err != nil {
			return report, err
		}
	}
	report.Reset = kept == 0 && report.Loaded > 0

	report.Kept = n.stack.Len()
	report.Dropped = report.Loaded - kept
	n.log.Info().
		Int("loaded", report.Loaded).
		Int("kept", report.Kept).
		Bool("reset", report.Reset).
		Msg("Back stack restored")

	if report.Dropped > 0 || kept == 0 {
		return report, n.persist(ctx)
	}
	return report, nil
}

// Navigate pushes the screen for dest. Its arguments go through the route's
// codec and the screen is built from the decoded value. On error the stack is
// unchanged, except for a persistence failure, which is reported after the push.
func (n *Navigator[S]) Navigate(ctx context.Context, dest Destination) error {
	if n.exited {
		return ErrNavigatorClosed
	}
	f, err := n.newFrame(dest)
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", dest.Route(), err)
	}
	if err := n.build(f); err != nil {
		return err
	}
	n.stack.Push(f)

	n.log.Debug().
		Str("route", string(f.entry.Route)).
		Str("entry", f.entry.ID).
		Int("depth", n.stack.Len()).
		Msg("Navigated")
	return n.persist(ctx)
}

// NavigateBack pops the top screen. A non-nil result is delivered to the
// result slot of the screen below before the pop. Popping the root empties
// the stack and runs the close action. A revealed entry whose screen cannot
// be built is dropped, and so on down to the root.
func (n *Navigator[S]) NavigateBack(ctx context.Context, result any) error {
	if n.stack.IsEmpty() {
		return ErrEmptyStack
	}

	if result != nil {
		if caller, ok := n.stack.At(n.stack.Len() - 2); ok {
			if err := caller.sc.results.Deliver(result); errors.Is(err, ErrDuplicateResultDelivery) {
				n.log.Warn().
					Str("route", string(caller.entry.Route)).
					Msg("Overwrote an unread navigation result")
			}
		} else {
			n.log.Debug().Msgf("Dropping %T result: no screen below the root", result)
		}
	}

	popped, _ := n.stack.Pop()
	n.log.Debug().
		Str("route", string(popped.entry.Route)).
		Int("depth", n.stack.Len()).
		Msg("Navigated back")

	if n.stack.IsEmpty() {
		n.exited = true
		err := n.persist(ctx)
		n.log.Info().Msg("Back stack exhausted, closing")
		if n.onClose != nil {
			n.onClose()
		}
		return err
	}

	if _, err := n.buildTop(); err != nil {
		return err
	}
	return n.persist(ctx)
}

// PopToRoot drops every screen above the root.
func (n *Navigator[S]) PopToRoot(ctx context.Context) error {
	if n.exited {
		return ErrNavigatorClosed
	}
	if n.stack.Len() <= 1 {
		return nil
	}
	n.stack.Truncate(1)
	if _, err := n.buildTop(); err != nil {
		return err
	}
	return n.persist(ctx)
}

// Current returns the top screen and its context.
// ok is false once the navigator has exited.
func (n *Navigator[S]) Current() (screen S, sc *ScreenContext, ok bool) {
	top, ok := n.stack.Peek()
	if !ok {
		return screen, nil, false
	}
	return top.screen, top.sc, true
}

// ReplaceCurrent stores the updated state of the top screen, for UIs whose
// screens are values that return a new copy on update.
func (n *Navigator[S]) ReplaceCurrent(screen S) bool {
	top, ok := n.stack.Peek()
	if !ok {
		return false
	}
	top.screen = screen
	return true
}

// Routes returns the routes on the stack, bottom first.
func (n *Navigator[S]) Routes() []Route {
	return lo.Map(n.stack.Items(), func(f *frame[S], _ int) Route {
		return f.entry.Route
	})
}

// Snapshot returns the stack in its persisted form, bottom first.
func (n *Navigator[S]) Snapshot() []Entry {
	return lo.Map(n.stack.Items(), func(f *frame[S], _ int) Entry {
		return f.entry
	})
}

// Len returns the stack depth.
func (n *Navigator[S]) Len() int {
	return n.stack.Len()
}

// Exited reports whether the root was popped.
func (n *Navigator[S]) Exited() bool {
	return n.exited
}

// Session returns the store session the stack is saved under.
func (n *Navigator[S]) Session() string {
	return n.session
}

func (n *Navigator[S]) resetToRoot() error {
	f, err := n.newFrame(n.root)
	if err != nil {
		return fmt.Errorf("root destination: %w", err)
	}
	if err := n.build(f); err != nil {
		return err
	}
	n.stack.Clear()
	n.stack.Push(f)
	n.exited = false
	return nil
}

// buildTop makes sure the top entry has a screen. Entries whose factory
// fails are dropped like undecodable ones, down to the root if need be.
// It returns how many entries were dropped.
func (n *Navigator[S]) buildTop() (int, error) {
	dropped := 0
	for {
		top, ok := n.stack.Peek()
		if !ok {
			return dropped, n.resetToRoot()
		}
		err := n.build(top)
		if err == nil {
			return dropped, nil
		}
		n.log.Warn().
			Err(err).
			Str("route", string(top.entry.Route)).
			Int("position", n.stack.Len()-1).
			Msg("Dropping back stack entry whose screen cannot be built")
		n.stack.Truncate(n.stack.Len() - 1)
		dropped++
	}
}

func (n *Navigator[S]) newFrame(dest Destination) (*frame[S], error) {
	args, err := n.table.Encode(dest)
	if err != nil {
		return nil, err
	}
	decoded, err := n.table.Decode(dest.Route(), args)
	if err != nil {
		return nil, err
	}
	id := n.newID()
	return &frame[S]{
		entry: Entry{ID: id, Route: dest.Route(), Args: args},
		dest:  decoded,
		sc:    NewScreenContext(id, dest.Route()),
	}, nil
}

func (n *Navigator[S]) build(f *frame[S]) error {
	if f.built {
		return nil
	}
	screen, err := n.table.build(f.dest, f.sc)
	if err != nil {
		return fmt.Errorf("build %s screen: %w", f.entry.Route, err)
	}
	f.screen = screen
	f.built = true
	return nil
}

func (n *Navigator[S]) persist(ctx context.Context) error {
	if n.store == nil {
		return nil
	}
	if err := n.store.SaveBackStack(ctx, n.session, n.Snapshot()); err != nil {
		n.log.Error().Err(err).Msg("Failed to persist back stack")
		return fmt.Errorf("persist back stack: %w", err)
	}
	return nil
}
