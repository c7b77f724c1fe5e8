// Package requestctx carries the caller identity established by transport
// authentication down to the store.
package requestctx

import (
	"context"
	"strings"
)

type userIDKey struct{}

// WithUserID returns ctx tagged with the signed-in user. A blank id leaves
// ctx untouched.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the signed-in user, or "" for anonymous calls.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}
