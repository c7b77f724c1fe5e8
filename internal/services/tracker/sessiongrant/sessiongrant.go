// Package sessiongrant issues and verifies the signed grants tracker clients
// present on every call once they have signed in.
package sessiongrant

import (
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
	"github.com/louisbranch/bloom/internal/platform/id"
)

// MinKeySize is the shortest accepted HMAC key, in bytes.
const MinKeySize = 32

// EnvHMACKey names the variable holding the base64 signing key.
const EnvHMACKey = "BLOOM_TRACKER_GRANT_HMAC_KEY"

// ErrMissing reports a call without a grant.
var ErrMissing = apperrors.New(apperrors.CodeSessionGrantMissing, "session grant is required")

// grantEnv holds raw env values before post-parse validation.
type grantEnv struct {
	Issuer   string        `env:"BLOOM_TRACKER_GRANT_ISSUER"`
	Audience string        `env:"BLOOM_TRACKER_GRANT_AUDIENCE"`
	HMACKey  string        `env:"BLOOM_TRACKER_GRANT_HMAC_KEY"`
	TTL      time.Duration `env:"BLOOM_TRACKER_GRANT_TTL"        envDefault:"12h"`
}

// Config defines how grants are signed and verified. A zero Config disables
// grants.
type Config struct {
	Issuer   string
	Audience string
	Key      []byte
	TTL      time.Duration
	Now      func() time.Time
	NewID    id.Generator
}

// Claims captures validated grant claims.
type Claims struct {
	Issuer    string
	Audience  []string
	UserID    string
	JWTID     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type grantClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// LoadConfigFromEnv reads grant configuration. Grants stay disabled while
// BLOOM_TRACKER_GRANT_HMAC_KEY is unset.
func LoadConfigFromEnv(now func() time.Time) (Config, error) {
	var raw grantEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse session grant env: %w", err)
	}
	key := strings.TrimSpace(raw.HMACKey)
	if key == "" {
		return Config{}, nil
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	if issuer == "" {
		return Config{}, fmt.Errorf("BLOOM_TRACKER_GRANT_ISSUER is required")
	}
	if audience == "" {
		return Config{}, fmt.Errorf("BLOOM_TRACKER_GRANT_AUDIENCE is required")
	}
	keyBytes, err := decodeBase64(key)
	if err != nil {
		return Config{}, fmt.Errorf("decode session grant key: %w", err)
	}
	if len(keyBytes) < MinKeySize {
		return Config{}, fmt.Errorf("session grant key must be at least %d bytes", MinKeySize)
	}
	if raw.TTL <= 0 {
		return Config{}, fmt.Errorf("session grant ttl must be positive")
	}
	if now == nil {
		now = time.Now
	}
	return Config{
		Issuer:   issuer,
		Audience: audience,
		Key:      keyBytes,
		TTL:      raw.TTL,
		Now:      now,
		NewID:    id.NewID,
	}, nil
}

// Enabled reports whether grants are signed and required.
func (c Config) Enabled() bool {
	return len(c.Key) > 0
}

func (c Config) configured() bool {
	return c.Issuer != "" && c.Audience != "" && len(c.Key) >= MinKeySize
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}

// Issue signs a grant for userID.
func Issue(cfg Config, userID string) (string, Claims, error) {
	if !cfg.configured() {
		return "", Claims{}, errors.New("session grant signer is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", Claims{}, errors.New("session grant user id is required")
	}
	newID := cfg.NewID
	if newID == nil {
		newID = id.NewID
	}
	jti, err := newID()
	if err != nil {
		return "", Claims{}, fmt.Errorf("generate session grant id: %w", err)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	issuedAt := cfg.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, grantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ID:        jti,
		},
		UserID: userID,
	})
	signed, err := token.SignedString(cfg.Key)
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign session grant: %w", err)
	}
	return signed, Claims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		UserID:    userID,
		JWTID:     jti,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate verifies a grant and its issuer, audience and lifetime.
func Validate(grant string, cfg Config) (Claims, error) {
	grant = strings.TrimSpace(grant)
	if grant == "" {
		return Claims{}, ErrMissing
	}
	if !cfg.configured() {
		return Claims{}, errors.New("session grant verifier is not configured")
	}

	var parsed grantClaims
	_, err := jwt.ParseWithClaims(grant, &parsed, func(token *jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	if parsed.Issuer == "" || parsed.Issuer != cfg.Issuer {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeSessionGrantMismatch,
			"session grant issuer mismatch",
			map[string]string{"Field": "issuer"},
		)
	}
	if !slices.Contains(parsed.Audience, cfg.Audience) {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeSessionGrantMismatch,
			"session grant audience mismatch",
			map[string]string{"Field": "audience"},
		)
	}
	if parsed.ID == "" {
		return Claims{}, apperrors.New(apperrors.CodeSessionGrantInvalid, "session grant jti is required")
	}
	if strings.TrimSpace(parsed.UserID) == "" {
		return Claims{}, apperrors.New(apperrors.CodeSessionGrantInvalid, "session grant user id is required")
	}
	if parsed.ExpiresAt == nil {
		return Claims{}, apperrors.New(apperrors.CodeSessionGrantInvalid, "session grant exp is required")
	}

	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(cfg.now()) {
		return Claims{}, apperrors.New(apperrors.CodeSessionGrantExpired, "session grant is expired")
	}

	claims := Claims{
		Issuer:    parsed.Issuer,
		Audience:  []string(parsed.Audience),
		UserID:    parsed.UserID,
		JWTID:     parsed.ID,
		ExpiresAt: exp,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		return apperrors.Wrap(apperrors.CodeSessionGrantInvalid, "session grant signature is invalid", err)
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.Wrap(apperrors.CodeSessionGrantInvalid, "session grant alg is invalid", err)
	}
	return apperrors.Wrap(apperrors.CodeSessionGrantInvalid, "session grant is invalid", err)
}

func decodeBase64(value string) ([]byte, error) {
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
