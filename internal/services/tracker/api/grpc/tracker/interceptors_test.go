package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/louisbranch/bloom/internal/platform/id"
	"github.com/louisbranch/bloom/internal/platform/requestctx"
	"github.com/louisbranch/bloom/internal/services/tracker/sessiongrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestUnaryGrantInterceptorCarriesIdentity(t *testing.T) {
	cfg := sessiongrant.Config{
		Issuer:   "bloom-tracker",
		Audience: "bloomctl",
		Key:      []byte("0123456789abcdef0123456789abcdef"),
		TTL:      time.Hour,
		Now:      time.Now,
		NewID:    id.Sequence("grant"),
	}
	grant, _, err := sessiongrant.Issue(cfg, "user-7")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(AuthorizationHeader, "Bearer "+grant))

	var userID string
	handler := func(ctx context.Context, _ any) (any, error) {
		userID = requestctx.UserIDFromContext(ctx)
		return nil, nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: FullMethod(MethodGetState)}
	if _, err := UnaryGrantInterceptor(cfg)(ctx, nil, info, handler); err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if userID != "user-7" {
		t.Fatalf("identity = %q", userID)
	}

	userID = ""
	public := &grpc.UnaryServerInfo{FullMethod: FullMethod(MethodLogin)}
	if _, err := UnaryGrantInterceptor(cfg)(context.Background(), nil, public, handler); err != nil {
		t.Fatalf("public method: %v", err)
	}
	if userID != "" {
		t.Fatalf("public method identity = %q", userID)
	}
}
