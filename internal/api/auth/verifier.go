package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Common errors for token verification.
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token has expired")
	ErrInvalidSecretLength = errors.New("token secret must be at least 32 characters")
)

// Config holds configuration for token verification.
//
// Token issuance belongs to the identity provider; the backend only verifies
// signatures with the shared HMAC secret and checks the issuer claim.
type Config struct {
	// Secret is the HMAC key shared with the identity provider.
	// Must be at least 32 characters.
	Secret string

	// Issuer, when set, must match the token's issuer claim.
	Issuer string
}

// Verifier validates bearer tokens and extracts the caller's claims.
type Verifier struct {
	config Config
}

// NewVerifier creates a new token verifier with the given configuration.
func NewVerifier(config Config) (*Verifier, error) {
	if len(config.Secret) < 32 {
		return nil, ErrInvalidSecretLength
	}
	return &Verifier{config: config}, nil
}

// VerifyToken validates a token and returns its claims.
// Returns an error if the token is invalid, expired, or from a wrong issuer.
func (v *Verifier) VerifyToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.config.Secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
