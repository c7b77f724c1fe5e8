package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/louisbranch/bloom/internal/platform/id"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
	"github.com/louisbranch/bloom/internal/services/tracker/sessiongrant"
	"github.com/louisbranch/bloom/internal/services/tracker/storage/memory"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type harness struct {
	store  *store.Store
	client *Client
}

type harnessConfig struct {
	storeOpts []store.Option
	svcOpts   []Option
	grants    sessiongrant.Config
}

func newHarness(t *testing.T, cfg harnessConfig) harness {
	t.Helper()
	storeOpts := append([]store.Option{store.WithClock(func() time.Time { return fixedNow })}, cfg.storeOpts...)
	st, err := store.New(storeOpts...)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	svcOpts := append([]Option{WithClock(func() time.Time { return fixedNow }), WithGrants(cfg.grants)}, cfg.svcOpts...)
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(UnaryGrantInterceptor(cfg.grants)),
		grpc.ChainStreamInterceptor(StreamGrantInterceptor(cfg.grants)),
	)
	RegisterTrackerServer(server, NewService(st, svcOpts...))

	listener := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(listener) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
		_ = st.Close()
	})
	return harness{store: st, client: NewClient(conn)}
}

func errorReason(t *testing.T, err error) (codes.Code, string, string) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	var reason, message string
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			reason = d.GetReason()
		case *errdetails.LocalizedMessage:
			message = d.GetMessage()
		}
	}
	return st.Code(), reason, message
}

func envelope(t *testing.T, typ string, payload any) action.Envelope {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return action.Envelope{Type: action.Type(typ), Payload: data}
}

func TestDispatchOverTheWire(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	ctx := context.Background()

	steps := []action.Envelope{
		envelope(t, "pregnancy/addWeightEntry", map[string]any{"id": "w1", "date": "2024-01-01", "weight": 60}),
		envelope(t, "pregnancy/addWeightEntry", map[string]any{"id": "w2", "date": "2024-01-08", "weight": 61.5}),
		envelope(t, "pregnancy/deleteWeightEntry", "w1"),
	}
	var state store.State
	for _, env := range steps {
		next, err := h.client.Dispatch(ctx, env)
		if err != nil {
			t.Fatalf("dispatch %s: %v", env.Type, err)
		}
		state = next
	}
	weight := state.Pregnancy.Weight
	if len(weight) != 1 || weight[0].ID != "w2" || weight[0].Weight != 61.5 {
		t.Fatalf("weight = %+v", weight)
	}

	got, err := h.client.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if len(got.Pregnancy.Weight) != 1 || !got.Auth.IsAuthenticated || len(got.Baby.Vaccinations) != 6 {
		t.Fatalf("state = %+v", got)
	}
}

func TestDispatchErrors(t *testing.T) {
	h := newHarness(t, harnessConfig{})

	_, err := h.client.Dispatch(context.Background(), action.Envelope{Type: "nonexistent/op"})
	code, reason, message := errorReason(t, err)
	if code != codes.InvalidArgument || reason != "ACTION_TYPE_UNKNOWN" {
		t.Fatalf("code = %s reason = %s", code, reason)
	}
	if message != "Action nonexistent/op is not supported" {
		t.Fatalf("message = %q", message)
	}

	_, err = h.client.Dispatch(context.Background(), envelope(t, "baby/addPottyEntry", map[string]any{"id": "p1", "type": "sparkly"}))
	if _, reason, _ := errorReason(t, err); reason != "ACTION_PAYLOAD_INVALID" {
		t.Fatalf("reason = %s", reason)
	}
	if state := h.store.State(); len(state.Baby.Potty) != 0 {
		t.Fatalf("potty = %+v", state.Baby.Potty)
	}
}

func TestLocalizedErrors(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	ctx := WithLocale(context.Background(), "pt-BR")

	_, err := h.client.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "123"})
	code, reason, message := errorReason(t, err)
	if code != codes.InvalidArgument || reason != "VALIDATION_PASSWORD_TOO_SHORT" {
		t.Fatalf("code = %s reason = %s", code, reason)
	}
	if message != "A senha deve ter pelo menos 6 caracteres" {
		t.Fatalf("message = %q", message)
	}
}

func TestSummary(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	ctx := context.Background()
	if _, err := h.client.Dispatch(ctx, envelope(t, "pregnancy/setPregnancyData", map[string]any{"currentWeek": 20, "dueDate": "2026-07-28"})); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	resp, err := h.client.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if resp.Summary.Week != 20 || resp.Summary.WaterGoal != 11 || resp.Summary.UserName != "Test User" {
		t.Fatalf("summary = %+v", resp.Summary)
	}
	if resp.Localized.Locale != "en-US" || resp.Localized.Week != "Week 20" {
		t.Fatalf("localized = %+v", resp.Localized)
	}

	resp, err = h.client.Summary(WithLocale(ctx, "pt-BR"))
	if err != nil {
		t.Fatalf("summary pt: %v", err)
	}
	if resp.Localized.Locale != "pt-BR" || resp.Localized.Week != "Semana 20" {
		t.Fatalf("localized = %+v", resp.Localized)
	}
}

func TestExport(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	data, err := h.client.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if data.Version != store.ExportVersion || data.ExportDate != "2026-03-10T09:00:00Z" {
		t.Fatalf("export = %s %s", data.Version, data.ExportDate)
	}
	if data.Settings.Theme != "light" || len(data.Pregnancy.HospitalBagChecklist) != 8 {
		t.Fatalf("export state = %+v", data.State)
	}
}

func TestListJournal(t *testing.T) {
	journal := memory.New()
	h := newHarness(t, harnessConfig{
		storeOpts: []store.Option{store.WithJournal(journal)},
		svcOpts:   []Option{WithJournal(journal)},
	})
	ctx := context.Background()
	for _, env := range []action.Envelope{
		{Type: "settings/toggleTheme"},
		envelope(t, "settings/setLanguage", "pt"),
		envelope(t, "pregnancy/deleteWeightEntry", "missing"),
	} {
		if _, err := h.client.Dispatch(ctx, env); err != nil {
			t.Fatalf("dispatch %s: %v", env.Type, err)
		}
	}

	first, err := h.client.ListJournal(ctx, ListJournalRequest{PageSize: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first.Entries) != 2 || first.NextPageToken != "2" {
		t.Fatalf("first page = %+v", first)
	}
	if first.Entries[0].Type != "settings/toggleTheme" || first.Entries[1].Slice != "settings" {
		t.Fatalf("first page = %+v", first.Entries)
	}
	if string(first.Entries[1].Payload) != `"pt"` {
		t.Fatalf("payload = %s", first.Entries[1].Payload)
	}

	second, err := h.client.ListJournal(ctx, ListJournalRequest{PageSize: 2, PageToken: first.NextPageToken})
	if err != nil {
		t.Fatalf("list second: %v", err)
	}
	if len(second.Entries) != 1 || second.Entries[0].Seq != 3 || second.NextPageToken != "" {
		t.Fatalf("second page = %+v", second)
	}

	_, err = h.client.ListJournal(ctx, ListJournalRequest{PageToken: "abc"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestListJournalWithoutJournal(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	_, err := h.client.ListJournal(context.Background(), ListJournalRequest{})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}

func TestWatch(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errStop := errors.New("stop")
	initial := make(chan struct{})
	done := make(chan error, 1)
	var seen []string
	go func() {
		done <- h.client.Watch(ctx, func(state store.State) error {
			seen = append(seen, string(state.Settings.Theme))
			if len(seen) == 1 {
				close(initial)
				return nil
			}
			return errStop
		})
	}()

	select {
	case <-initial:
	case <-ctx.Done():
		t.Fatal("timed out waiting for the initial snapshot")
	}
	if _, err := h.client.Dispatch(ctx, action.Envelope{Type: "settings/toggleTheme"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, errStop) {
			t.Fatalf("watch = %v", err)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for the update")
	}
	if len(seen) != 2 || seen[0] != "light" || seen[1] != "dark" {
		t.Fatalf("seen = %v", seen)
	}
}

func TestSessionGrants(t *testing.T) {
	grants := sessiongrant.Config{
		Issuer:   "bloom-tracker",
		Audience: "bloomctl",
		Key:      []byte("0123456789abcdef0123456789abcdef"),
		TTL:      time.Hour,
		Now:      time.Now,
		NewID:    id.Sequence("grant"),
	}
	journal := memory.New()
	h := newHarness(t, harnessConfig{
		grants:    grants,
		storeOpts: []store.Option{store.WithJournal(journal)},
		svcOpts:   []Option{WithJournal(journal)},
	})
	ctx := context.Background()

	_, err := h.client.State(ctx)
	if code, reason, _ := errorReason(t, err); code != codes.Unauthenticated || reason != "SESSION_GRANT_MISSING" {
		t.Fatalf("code = %s reason = %s", code, reason)
	}

	session, err := h.client.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Grant == "" || session.ExpiresAt == nil || session.User.Email != "ana@example.com" {
		t.Fatalf("session = %+v", session)
	}

	authed := metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, "Bearer "+session.Grant)
	state, err := h.client.State(authed)
	if err != nil {
		t.Fatalf("state with grant: %v", err)
	}
	if state.Auth.User == nil || state.Auth.User.Email != "ana@example.com" {
		t.Fatalf("auth = %+v", state.Auth)
	}

	if _, err := h.client.Dispatch(authed, action.Envelope{Type: "settings/toggleTheme"}); err != nil {
		t.Fatalf("dispatch with grant: %v", err)
	}
	page, err := h.client.ListJournal(authed, ListJournalRequest{})
	if err != nil {
		t.Fatalf("list journal: %v", err)
	}
	last := page.Entries[len(page.Entries)-1]
	if last.Type != "settings/toggleTheme" || last.UserID != session.User.ID {
		t.Fatalf("last entry = %+v, want user %s", last, session.User.ID)
	}
	if page.Entries[0].UserID != "" {
		t.Fatalf("sign-in entry user = %q", page.Entries[0].UserID)
	}

	bad := metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, "Bearer nope")
	if _, err := h.client.State(bad); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}

	watchCtx, cancel := context.WithCancel(bad)
	defer cancel()
	err = h.client.Watch(watchCtx, func(store.State) error { return nil })
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("watch without grant = %v", err)
	}
}

func TestRegisterOverTheWire(t *testing.T) {
	h := newHarness(t, harnessConfig{})
	ctx := context.Background()

	_, err := h.client.Register(ctx, RegisterRequest{Name: "Ana", Email: "ana@example.com"})
	if _, reason, _ := errorReason(t, err); reason != "VALIDATION_PHONE_REQUIRED" {
		t.Fatalf("reason = %s", reason)
	}

	session, err := h.client.Register(ctx, RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Phone:           "+1234567890",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DateOfBirth:     "1992-04-03",
		DueDate:         "2026-06-09",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if session.Grant != "" {
		t.Fatal("expected no grant when grants are disabled")
	}
	if session.User.CurrentWeek != 27 || session.User.ID == "" {
		t.Fatalf("user = %+v", session.User)
	}
}
