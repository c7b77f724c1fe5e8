package store

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
	"github.com/louisbranch/bloom/internal/platform/requestctx"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/auth"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"
	"github.com/louisbranch/bloom/internal/services/tracker/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/bloom/internal/services/tracker/domain/store"

// ErrClosed is returned by Dispatch after Close.
var ErrClosed = apperrors.New(apperrors.CodeStoreClosed, "store is closed")

// Listener receives the root snapshot after each successful dispatch.
// Listeners run on the dispatching goroutine and must not dispatch.
type Listener func(State)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Store owns the root state.
type Store struct {
	registry  *action.Registry
	foldIndex map[action.Type]foldFunc
	journal   storage.Journal
	clock     func() time.Time
	tracer    trace.Tracer
	logf      func(format string, args ...any)
	tables    lookup.Tables

	// dispatchMu serializes dispatches so listeners observe snapshots in
	// the order they were installed.
	dispatchMu sync.Mutex

	mu           sync.RWMutex
	state        State
	listeners    []listenerEntry
	nextListener uint64
	closed       bool
}

type options struct {
	tables         lookup.Tables
	tablesSet      bool
	auth           *auth.State
	journal        storage.Journal
	clock          func() time.Time
	tracerProvider trace.TracerProvider
	logf           func(format string, args ...any)
}

// Option configures a Store.
type Option func(*options)

// WithLookup replaces the embedded reference tables.
func WithLookup(tables lookup.Tables) Option {
	return func(o *options) {
		o.tables = tables
		o.tablesSet = true
	}
}

// WithInitialAuth sets the starting auth slice. Without it the store starts
// with the demo session.
func WithInitialAuth(state auth.State) Option {
	return func(o *options) {
		o.auth = &state
	}
}

// WithJournal records every accepted action in journal.
func WithJournal(journal storage.Journal) Option {
	return func(o *options) {
		o.journal = journal
	}
}

// WithClock sets the time source for journal and export timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithTracerProvider sets where dispatch spans go. The global provider is
// used by default.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = provider
	}
}

// WithLogf sets the logger for journal failures.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(o *options) {
		o.logf = logf
	}
}

// New builds a store with its action index and initial state.
func New(opts ...Option) (*Store, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.tablesSet {
		cfg.tables = lookup.Default()
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}
	if cfg.tracerProvider == nil {
		cfg.tracerProvider = otel.GetTracerProvider()
	}
	if cfg.logf == nil {
		cfg.logf = log.Printf
	}

	authState := auth.InitialState(cfg.tables, true)
	if cfg.auth != nil {
		authState = *cfg.auth
	}
	if !authState.Consistent() {
		return nil, fmt.Errorf("initial auth state must carry a user exactly when authenticated")
	}

	registry, index, err := buildIndex(sliceDomains())
	if err != nil {
		return nil, fmt.Errorf("build action index: %w", err)
	}

	return &Store{
		registry:  registry,
		foldIndex: index,
		journal:   cfg.journal,
		clock:     cfg.clock,
		tracer:    cfg.tracerProvider.Tracer(tracerName),
		logf:      cfg.logf,
		tables:    cfg.tables,
		state:     InitialState(cfg.tables, authState),
	}, nil
}

// Registry returns the action registry, for decoding and listing types.
func (s *Store) Registry() *action.Registry {
	return s.registry
}

// Tables returns the reference tables the store was built with.
func (s *Store) Tables() lookup.Tables {
	return s.tables
}

// State returns the current root snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn and returns a func that removes it. Removing twice
// is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}
	s.nextListener++
	id := s.nextListener
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listeners = slices.DeleteFunc(slices.Clone(s.listeners), func(l listenerEntry) bool {
				return l.id == id
			})
		})
	}
}

// Dispatch validates a, folds it into its owning slice and returns the new
// root snapshot.
func (s *Store) Dispatch(ctx context.Context, a action.Action) (State, error) {
	var typ action.Type
	if a != nil {
		typ = a.Type()
	}
	ctx, span := s.startSpan(ctx, typ)
	defer span.End()

	next, err := s.dispatch(ctx, a)
	return next, recordSpanError(span, err)
}

// DispatchEnvelope decodes env into its typed action and dispatches it.
func (s *Store) DispatchEnvelope(ctx context.Context, env action.Envelope) (State, error) {
	ctx, span := s.startSpan(ctx, env.Type)
	defer span.End()

	a, err := s.registry.Decode(env)
	if err != nil {
		return State{}, recordSpanError(span, err)
	}
	next, err := s.dispatch(ctx, a)
	return next, recordSpanError(span, err)
}

// Close drops every listener. Later dispatches fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = nil
	return nil
}

func (s *Store) dispatch(ctx context.Context, a action.Action) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	def, err := s.registry.Validate(a)
	if err != nil {
		return State{}, err
	}
	fold, ok := s.foldIndex[def.Type]
	if !ok {
		return State{}, apperrors.WithMetadata(
			apperrors.CodeActionTypeUnknown,
			fmt.Sprintf("no slice handles action type %s", def.Type),
			map[string]string{"Type": string(def.Type)},
		)
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	closed := s.closed
	next := s.state
	s.mu.RUnlock()
	if closed {
		return State{}, ErrClosed
	}

	if err := fold(&next, a); err != nil {
		return State{}, fmt.Errorf("fold %s: %w", def.Type, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return State{}, ErrClosed
	}
	s.state = next
	listeners := s.listeners
	s.mu.Unlock()

	s.record(ctx, def, a)
	for _, l := range listeners {
		l.fn(next)
	}
	return next, nil
}

// record appends a to the journal. Failures are logged; the state change
// stands.
func (s *Store) record(ctx context.Context, def action.Definition, a action.Action) {
	if s.journal == nil {
		return
	}
	env, err := action.Encode(a)
	if err != nil {
		s.logf("journal encode %s: %v", def.Type, err)
		return
	}
	// Recorded even when the caller has already gone away.
	if _, err := s.journal.Append(context.WithoutCancel(ctx), storage.Entry{
		Type:       string(def.Type),
		Slice:      string(def.Slice),
		Payload:    env.Payload,
		UserID:     requestctx.UserIDFromContext(ctx),
		RecordedAt: s.clock(),
	}); err != nil {
		s.logf("journal append %s: %v", def.Type, err)
	}
}

func (s *Store) startSpan(ctx context.Context, typ action.Type) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.tracer.Start(ctx, "store.Dispatch", trace.WithAttributes(
		attribute.String("bloom.action.type", string(typ)),
		attribute.String("bloom.action.slice", string(typ.Slice())),
	))
}

func recordSpanError(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
