package tracker

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

const (
	// LocaleHeader carries the caller's locale preference for user messages
	// and localized summaries.
	LocaleHeader = "x-bloom-locale"
	// AuthorizationHeader carries "Bearer <session grant>".
	AuthorizationHeader = "authorization"
)

// localeFromContext returns the raw locale preference, or "".
func localeFromContext(ctx context.Context) string {
	return firstMetadataValue(ctx, LocaleHeader)
}

// bearerFromContext returns the bearer token from the authorization header.
func bearerFromContext(ctx context.Context) string {
	value := firstMetadataValue(ctx, AuthorizationHeader)
	scheme, token, ok := strings.Cut(value, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, value := range md.Get(key) {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

// WithLocale returns ctx with the locale header set for outgoing calls.
func WithLocale(ctx context.Context, locale string) context.Context {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, LocaleHeader, locale)
}
