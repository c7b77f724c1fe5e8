package sessiongrant

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
	"github.com/louisbranch/bloom/internal/platform/id"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func testConfig(now time.Time) Config {
	return Config{
		Issuer:   "bloom-tracker",
		Audience: "bloomctl",
		Key:      testKey,
		TTL:      time.Hour,
		Now:      func() time.Time { return now },
		NewID:    id.Sequence("grant"),
	}
}

func TestIssueAndValidate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cfg := testConfig(now)

	grant, issued, err := Issue(cfg, "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if issued.JWTID != "grant-1" || !issued.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("issued = %+v", issued)
	}

	claims, err := Validate(grant, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" || claims.JWTID != "grant-1" || claims.Issuer != "bloom-tracker" {
		t.Fatalf("claims = %+v", claims)
	}
	if !claims.IssuedAt.Equal(now) {
		t.Fatalf("issued at = %v", claims.IssuedAt)
	}
}

func TestValidateFailures(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cfg := testConfig(now)
	grant, _, err := Issue(cfg, "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	otherIssuer := cfg
	otherIssuer.Issuer = "someone-else"
	otherAudience := cfg
	otherAudience.Audience = "web"
	later := cfg
	later.Now = func() time.Time { return now.Add(2 * time.Hour) }
	otherKey := cfg
	otherKey.Key = []byte("fedcba9876543210fedcba9876543210")

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, grantClaims{UserID: "user-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name  string
		grant string
		cfg   Config
		code  apperrors.Code
	}{
		{name: "missing", grant: "  ", cfg: cfg, code: apperrors.CodeSessionGrantMissing},
		{name: "garbage", grant: "not-a-jwt", cfg: cfg, code: apperrors.CodeSessionGrantInvalid},
		{name: "wrong key", grant: grant, cfg: otherKey, code: apperrors.CodeSessionGrantInvalid},
		{name: "none alg", grant: noneToken, cfg: cfg, code: apperrors.CodeSessionGrantInvalid},
		{name: "issuer", grant: grant, cfg: otherIssuer, code: apperrors.CodeSessionGrantMismatch},
		{name: "audience", grant: grant, cfg: otherAudience, code: apperrors.CodeSessionGrantMismatch},
		{name: "expired", grant: grant, cfg: later, code: apperrors.CodeSessionGrantExpired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.grant, tc.cfg)
			if got := apperrors.GetCode(err); got != tc.code {
				t.Fatalf("code = %s, want %s (%v)", got, tc.code, err)
			}
		})
	}
}

func TestIssueRequiresConfig(t *testing.T) {
	if _, _, err := Issue(Config{}, "user-1"); err == nil {
		t.Fatal("expected error for zero config")
	}
	if _, _, err := Issue(testConfig(time.Now()), " "); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("disabled without key", func(t *testing.T) {
		t.Setenv("BLOOM_TRACKER_GRANT_HMAC_KEY", "")
		cfg, err := LoadConfigFromEnv(nil)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Enabled() {
			t.Fatal("expected grants disabled")
		}
	})

	t.Run("enabled", func(t *testing.T) {
		t.Setenv("BLOOM_TRACKER_GRANT_ISSUER", "bloom-tracker")
		t.Setenv("BLOOM_TRACKER_GRANT_AUDIENCE", "bloomctl")
		t.Setenv("BLOOM_TRACKER_GRANT_HMAC_KEY", base64.StdEncoding.EncodeToString(testKey))
		t.Setenv("BLOOM_TRACKER_GRANT_TTL", "30m")
		cfg, err := LoadConfigFromEnv(nil)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !cfg.Enabled() || cfg.TTL != 30*time.Minute || string(cfg.Key) != string(testKey) {
			t.Fatalf("cfg = %+v", cfg)
		}
	})

	t.Run("requires issuer", func(t *testing.T) {
		t.Setenv("BLOOM_TRACKER_GRANT_ISSUER", "")
		t.Setenv("BLOOM_TRACKER_GRANT_AUDIENCE", "bloomctl")
		t.Setenv("BLOOM_TRACKER_GRANT_HMAC_KEY", base64.StdEncoding.EncodeToString(testKey))
		if _, err := LoadConfigFromEnv(nil); err == nil || !strings.Contains(err.Error(), "ISSUER") {
			t.Fatalf("expected issuer error, got %v", err)
		}
	})

	t.Run("short key", func(t *testing.T) {
		t.Setenv("BLOOM_TRACKER_GRANT_ISSUER", "bloom-tracker")
		t.Setenv("BLOOM_TRACKER_GRANT_AUDIENCE", "bloomctl")
		t.Setenv("BLOOM_TRACKER_GRANT_HMAC_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
		if _, err := LoadConfigFromEnv(nil); err == nil {
			t.Fatal("expected short key error")
		}
	})
}
