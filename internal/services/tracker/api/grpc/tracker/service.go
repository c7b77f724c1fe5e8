package tracker

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
	"github.com/louisbranch/bloom/internal/platform/grpc/pagination"
	"github.com/louisbranch/bloom/internal/platform/i18n"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/auth"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/selector"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/validation"
	"github.com/louisbranch/bloom/internal/services/tracker/onboarding"
	"github.com/louisbranch/bloom/internal/services/tracker/sessiongrant"
	"github.com/louisbranch/bloom/internal/services/tracker/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	defaultJournalPageSize = 50
	maxJournalPageSize     = 200
)

// Service implements TrackerServer on top of one store.
type Service struct {
	store   *store.Store
	flow    *onboarding.Flow
	journal storage.Journal
	grants  sessiongrant.Config
	clock   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithJournal exposes journal through ListJournal.
func WithJournal(journal storage.Journal) Option {
	return func(s *Service) { s.journal = journal }
}

// WithGrants issues session grants on Login and Register.
func WithGrants(cfg sessiongrant.Config) Option {
	return func(s *Service) { s.grants = cfg }
}

// WithClock sets the clock used for summaries.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithOnboarding replaces the default sign-in flow.
func WithOnboarding(flow *onboarding.Flow) Option {
	return func(s *Service) { s.flow = flow }
}

// NewService creates a tracker service backed by st.
func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{store: st, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.flow == nil && st != nil {
		s.flow = onboarding.New(st, onboarding.WithLookup(st.Tables()), onboarding.WithClock(s.clock))
	}
	return s
}

// Dispatch decodes an action envelope and applies it.
func (s *Service) Dispatch(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var env action.Envelope
	if err := fromStruct(in, &env); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	next, err := s.store.DispatchEnvelope(ctx, env)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return encode(StateResponse{State: next})
}

// GetState returns the current root snapshot.
func (s *Service) GetState(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return encode(StateResponse{State: s.store.State()})
}

// Subscribe streams the current snapshot and then every change until the
// caller goes away. Snapshots a slow reader missed are coalesced into the
// newest one.
func (s *Service) Subscribe(_ *structpb.Struct, stream StateStream) error {
	if err := s.ready(); err != nil {
		return err
	}
	ctx := stream.Context()
	updates := make(chan store.State, 1)
	unsubscribe := s.store.Subscribe(func(next store.State) {
		for {
			select {
			case updates <- next:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	if err := sendState(stream, s.store.State()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case next := <-updates:
			if err := sendState(stream, next); err != nil {
				return err
			}
		}
	}
}

// Export returns a full backup of the root state.
func (s *Service) Export(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return encode(s.store.Export())
}

// Summary returns the dashboard summary. Strings are localized for the
// x-bloom-locale header, falling back to the language in settings.
func (s *Service) Summary(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	summary := selector.SummarizeWith(s.store.Tables(), s.store.State(), s.clock())
	localized := selector.LocalizeForSettings(summary)
	if locale := localeFromContext(ctx); locale != "" {
		localized = selector.Localize(summary, i18n.ResolveTag(locale))
	}
	return encode(SummaryResponse{Summary: summary, Localized: localized})
}

// ListJournal returns a page of journaled actions, oldest first.
func (s *Service) ListJournal(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return nil, status.Error(codes.FailedPrecondition, "action journal is not configured")
	}
	var req ListJournalRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	after, err := pagination.ParseSeqCursor(req.PageToken)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	pageSize := pagination.ClampPageSize(req.PageSize, pagination.PageSizeConfig{
		Default: defaultJournalPageSize,
		Max:     maxJournalPageSize,
	})

	// One extra row tells whether another page follows.
	entries, err := s.journal.List(ctx, after, pageSize+1)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return nil, status.Error(codes.FailedPrecondition, "action journal is not configured")
		}
		return nil, status.Errorf(codes.Internal, "list journal: %v", err)
	}
	resp := ListJournalResponse{Entries: make([]JournalEntry, 0, min(len(entries), pageSize))}
	for i, entry := range entries {
		if i == pageSize {
			resp.NextPageToken = pagination.SeqCursor(entries[i-1].Seq)
			break
		}
		resp.Entries = append(resp.Entries, journalEntryFromStorage(entry))
	}
	return encode(resp)
}

// Login validates the sign-in form and signs the caller in.
func (s *Service) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var req LoginRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	user, err := s.flow.Login(ctx, validation.LoginForm{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return s.session(ctx, user)
}

// Register validates the account form and signs the new account in.
func (s *Service) Register(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var req RegisterRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	user, err := s.flow.Register(ctx, validation.RegisterForm{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		DateOfBirth:     req.DateOfBirth,
		DueDate:         req.DueDate,
		PregnancyType:   strings.TrimSpace(req.PregnancyType),
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return s.session(ctx, user)
}

func (s *Service) session(ctx context.Context, user auth.User) (*structpb.Struct, error) {
	resp := SessionResponse{User: user}
	if s.grants.Enabled() {
		grant, claims, err := sessiongrant.Issue(s.grants, user.ID)
		if err != nil {
			return nil, handleError(ctx, err)
		}
		resp.Grant = grant
		resp.ExpiresAt = &claims.ExpiresAt
	}
	return encode(resp)
}

func (s *Service) ready() error {
	if s == nil || s.store == nil {
		return status.Error(codes.Internal, "tracker store is not configured")
	}
	return nil
}

func sendState(stream StateStream, state store.State) error {
	msg, err := encode(StateResponse{State: state})
	if err != nil {
		return err
	}
	return stream.Send(msg)
}

func encode(v any) (*structpb.Struct, error) {
	msg, err := toStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return msg, nil
}

// handleError maps domain errors to statuses localized for the caller.
func handleError(ctx context.Context, err error) error {
	locale := localeFromContext(ctx)
	if locale != "" {
		locale = i18n.LocaleString(i18n.ResolveTag(locale))
	}
	return apperrors.HandleError(err, locale)
}
