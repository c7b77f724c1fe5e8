package grpc

import (
	"context"
	"strings"

	gogrpc "google.golang.org/grpc"
)

// BearerCredentials attaches an "authorization: Bearer <token>" header to
// every call. It is meant for plaintext in-network peers.
type BearerCredentials struct {
	Token string
}

// GetRequestMetadata implements credentials.PerRPCCredentials.
func (c BearerCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	token := strings.TrimSpace(c.Token)
	if token == "" {
		return map[string]string{}, nil
	}
	return map[string]string{"authorization": "Bearer " + token}, nil
}

// RequireTransportSecurity implements credentials.PerRPCCredentials.
func (BearerCredentials) RequireTransportSecurity() bool {
	return false
}

// WithBearerToken returns a dial option that sends token on every call.
func WithBearerToken(token string) gogrpc.DialOption {
	return gogrpc.WithPerRPCCredentials(BearerCredentials{Token: token})
}
