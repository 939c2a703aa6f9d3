package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/demoworks/surveyd/internal/api/auth"
	"github.com/demoworks/surveyd/internal/api/handlers"
)

const testSecret = "test-secret-that-is-long-enough-for-hmac"

func signTestToken(t *testing.T, req auth.TokenRequest) string {
	t.Helper()
	token, err := auth.SignToken(auth.Config{Secret: testSecret}, req)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// requireErrorBody asserts a denial response carries the structured JSON
// error body with the status code repeated in the code field.
func requireErrorBody(t *testing.T, rr *httptest.ResponseRecorder, wantStatus int) {
	t.Helper()
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	var body handlers.Error
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", rr.Body.String(), err)
	}
	if body.Code != wantStatus {
		t.Errorf("expected code %d in error body, got %d", wantStatus, body.Code)
	}
	if body.Message == "" {
		t.Error("expected non-empty message in error body")
	}
}

func TestBearerAuth(t *testing.T) {
	verifier, err := auth.NewVerifier(auth.Config{Secret: testSecret})
	if err != nil {
		t.Fatalf("failed to create verifier: %v", err)
	}

	var gotClaims *auth.Claims
	handler := BearerAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = auth.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + signTestToken(t, auth.TokenRequest{UserID: "user-1", GroupID: "group-1"}),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signTestToken(t, auth.TokenRequest{UserID: "user-1", TTL: -time.Minute}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims = nil
			req := httptest.NewRequest(http.MethodGet, "/surveys", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus == http.StatusOK {
				if gotClaims == nil || gotClaims.UserID() != "user-1" {
					t.Errorf("expected claims for user-1 in context, got %+v", gotClaims)
				}
			} else {
				if gotClaims != nil {
					t.Error("expected handler not to run for rejected request")
				}
				requireErrorBody(t, rr, tt.wantStatus)
			}
		})
	}

	t.Run("case-insensitive bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/surveys", nil)
		req.Header.Set("Authorization", "bearer "+signTestToken(t, auth.TokenRequest{UserID: "user-1"}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rr.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		claims     *auth.Claims
		wantStatus int
	}{
		{
			name:       "admin allowed",
			claims:     &auth.Claims{Roles: []string{auth.AdminRole}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "regular user forbidden",
			claims:     &auth.Claims{GroupID: "group-1"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no claims unauthorized",
			claims:     nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/catalogs/building-types", nil)
			if tt.claims != nil {
				req = req.WithContext(auth.WithClaims(req.Context(), tt.claims))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus != http.StatusOK {
				requireErrorBody(t, rr, tt.wantStatus)
			}
		})
	}
}
