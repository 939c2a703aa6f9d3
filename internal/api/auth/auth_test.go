package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/demoworks/surveyd/pkg/survey/policy"
)

const testSecret = "test-secret-that-is-long-enough-for-hmac"

func TestNewVerifier(t *testing.T) {
	t.Run("valid secret", func(t *testing.T) {
		if _, err := NewVerifier(Config{Secret: testSecret}); err != nil {
			t.Errorf("expected verifier, got %v", err)
		}
	})

	t.Run("short secret rejected", func(t *testing.T) {
		_, err := NewVerifier(Config{Secret: "too-short"})
		if !errors.Is(err, ErrInvalidSecretLength) {
			t.Errorf("expected ErrInvalidSecretLength, got %v", err)
		}
	})
}

func TestSignAndVerifyToken(t *testing.T) {
	config := Config{Secret: testSecret, Issuer: "surveyd-test"}
	verifier, err := NewVerifier(config)
	if err != nil {
		t.Fatalf("failed to create verifier: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		token, err := SignToken(config, TokenRequest{
			UserID:  "user-1",
			GroupID: "group-1",
			Admin:   true,
			TTL:     time.Hour,
		})
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			t.Fatalf("failed to verify token: %v", err)
		}
		if claims.UserID() != "user-1" {
			t.Errorf("expected user-1, got %q", claims.UserID())
		}
		if claims.GroupID != "group-1" {
			t.Errorf("expected group-1, got %q", claims.GroupID)
		}
		if !claims.IsAdmin() {
			t.Error("expected admin claims")
		}
	})

	t.Run("non-admin token carries no roles", func(t *testing.T) {
		token, err := SignToken(config, TokenRequest{UserID: "user-2", GroupID: "group-1"})
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			t.Fatalf("failed to verify token: %v", err)
		}
		if claims.IsAdmin() {
			t.Error("expected non-admin claims")
		}
		if len(claims.Roles) != 0 {
			t.Errorf("expected no roles, got %v", claims.Roles)
		}
	})

	t.Run("short secret rejected on signing", func(t *testing.T) {
		_, err := SignToken(Config{Secret: "short"}, TokenRequest{UserID: "u"})
		if !errors.Is(err, ErrInvalidSecretLength) {
			t.Errorf("expected ErrInvalidSecretLength, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := SignToken(config, TokenRequest{UserID: "user-1", TTL: -time.Minute})
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		_, err = verifier.VerifyToken(token)
		if !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := Config{Secret: "another-secret-that-is-also-long-enough!", Issuer: "surveyd-test"}
		token, err := SignToken(other, TokenRequest{UserID: "user-1"})
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		_, err = verifier.VerifyToken(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := SignToken(Config{Secret: testSecret, Issuer: "someone-else"}, TokenRequest{UserID: "user-1"})
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		_, err = verifier.VerifyToken(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token without expiry rejected", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", Issuer: "surveyd-test"},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		if _, err := verifier.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := verifier.VerifyToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestClaims_Principal(t *testing.T) {
	t.Run("nil claims", func(t *testing.T) {
		var claims *Claims
		if claims.Principal() != nil {
			t.Error("expected nil principal for nil claims")
		}
	})

	t.Run("maps identity fields", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
			GroupID:          "group-1",
			Roles:            []string{"viewer", AdminRole},
		}

		want := policy.Principal{UserID: "user-1", GroupID: "group-1", Admin: true}
		got := claims.Principal()
		if got == nil || *got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})
}

func TestClaimsContext(t *testing.T) {
	t.Run("no claims in context", func(t *testing.T) {
		if got := GetClaimsFromContext(context.Background()); got != nil {
			t.Errorf("expected nil claims for empty context, got %+v", got)
		}
	})

	t.Run("claims round trip", func(t *testing.T) {
		claims := &Claims{GroupID: "group-1"}
		ctx := WithClaims(context.Background(), claims)
		if got := GetClaimsFromContext(ctx); got != claims {
			t.Errorf("expected stored claims back, got %+v", got)
		}
	})

	t.Run("wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), claimsContextKey, "not-claims")
		if got := GetClaimsFromContext(ctx); got != nil {
			t.Errorf("expected nil claims for wrong type, got %+v", got)
		}
	})
}
