package auth

import "context"

// Context key type for storing claims
type contextKey string

const claimsContextKey contextKey = "claims"

// GetClaimsFromContext retrieves verified claims from the request context.
// Returns nil if no claims are present.
//
// This function should only be called within handler code that runs after
// the bearer auth middleware has processed the request. In routes without
// bearer auth it returns nil, which handlers must treat as anonymous.
func GetClaimsFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// WithClaims returns a context carrying the given claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}
