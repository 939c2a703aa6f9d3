// Package auth verifies the bearer tokens issued by the external identity
// provider and exposes the caller's identity to the API handlers.
package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"

	"github.com/demoworks/surveyd/pkg/survey/policy"
)

// AdminRole is the role claim value that grants unrestricted access.
const AdminRole = "admin"

// Claims represents the identity the provider asserts for one request.
//
// The backend consumes these as opaque values: the subject is the user id,
// GroupID is the tenant boundary derived from provider-side group
// membership, and Roles carries provider-managed realm roles.
type Claims struct {
	jwt.RegisteredClaims

	// GroupID is the caller's tenant group.
	GroupID string `json:"group_id"`

	// Roles is the list of realm roles granted to the caller.
	Roles []string `json:"roles,omitempty"`
}

// UserID returns the caller's opaque user id (the token subject).
func (c *Claims) UserID() string {
	return c.Subject
}

// IsAdmin returns true if the caller holds the administrator role.
func (c *Claims) IsAdmin() bool {
	return slices.Contains(c.Roles, AdminRole)
}

// Principal converts the claims into the policy layer's view of the caller.
// Returns nil for nil claims, which the policy treats as unauthenticated.
func (c *Claims) Principal() *policy.Principal {
	if c == nil {
		return nil
	}
	return &policy.Principal{
		UserID:  c.UserID(),
		GroupID: c.GroupID,
		Admin:   c.IsAdmin(),
	}
}
