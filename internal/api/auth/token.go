package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenRequest describes the identity to embed in a locally signed token.
//
// Production tokens come from the identity provider; local signing exists
// for development and testing against a server sharing the same secret.
type TokenRequest struct {
	// UserID becomes the token subject.
	UserID string

	// GroupID is the caller's tenant group.
	GroupID string

	// Admin grants the administrator role.
	Admin bool

	// TTL is the token lifetime.
	TTL time.Duration
}

// SignToken creates a signed bearer token for the given identity using the
// verifier's shared secret. The resulting token passes VerifyToken on any
// server configured with the same secret and issuer.
func SignToken(config Config, req TokenRequest) (string, error) {
	if len(config.Secret) < 32 {
		return "", ErrInvalidSecretLength
	}

	now := time.Now()
	ttl := req.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	var roles []string
	if req.Admin {
		roles = []string{AdminRole}
	}

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.UserID,
			Issuer:    config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		GroupID: req.GroupID,
		Roles:   roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Secret))
}
