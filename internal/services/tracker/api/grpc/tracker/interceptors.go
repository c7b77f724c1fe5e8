package tracker

import (
	"context"
	"strings"

	"github.com/louisbranch/bloom/internal/platform/requestctx"
	"github.com/louisbranch/bloom/internal/services/tracker/sessiongrant"
	"google.golang.org/grpc"
)

// publicMethods can be called without a session grant.
var publicMethods = map[string]bool{
	FullMethod(MethodLogin):    true,
	FullMethod(MethodRegister): true,
}

// requiresGrant reports whether fullMethod is a tracker call that needs a
// grant under cfg. Other services on the same server (health) pass through.
func requiresGrant(cfg sessiongrant.Config, fullMethod string) bool {
	if !cfg.Enabled() {
		return false
	}
	if !strings.HasPrefix(fullMethod, "/"+ServiceName+"/") {
		return false
	}
	return !publicMethods[fullMethod]
}

func authorize(ctx context.Context, cfg sessiongrant.Config) (context.Context, error) {
	claims, err := sessiongrant.Validate(bearerFromContext(ctx), cfg)
	if err != nil {
		return ctx, handleError(ctx, err)
	}
	return requestctx.WithUserID(ctx, claims.UserID), nil
}

// UnaryGrantInterceptor rejects tracker calls without a valid session grant
// when grants are enabled.
func UnaryGrantInterceptor(cfg sessiongrant.Config) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !requiresGrant(cfg, info.FullMethod) {
			return handler(ctx, req)
		}
		ctx, err := authorize(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamGrantInterceptor is the streaming counterpart of UnaryGrantInterceptor.
func StreamGrantInterceptor(cfg sessiongrant.Config) grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !requiresGrant(cfg, info.FullMethod) {
			return handler(srv, stream)
		}
		ctx, err := authorize(stream.Context(), cfg)
		if err != nil {
			return err
		}
		return handler(srv, grantStream{ServerStream: stream, ctx: ctx})
	}
}

type grantStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s grantStream) Context() context.Context {
	return s.ctx
}
