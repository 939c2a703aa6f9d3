package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/demoworks/surveyd/internal/api/auth"
	"github.com/demoworks/surveyd/pkg/survey/policy"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the shared request validator.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// decodeJSONBody decodes a JSON request body into the provided pointer and
// runs struct validation on it. Returns true if successful, false if decoding
// or validation fails (an error response is written automatically).
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	if err := getValidator().Struct(v); err != nil {
		BadRequest(w, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// requestPrincipal extracts the authenticated principal from the request
// context. Returns nil when no token was presented; the policy layer maps
// that to an authentication error.
func requestPrincipal(r *http.Request) *policy.Principal {
	return auth.GetClaimsFromContext(r.Context()).Principal()
}

// queryInt parses an optional non-negative integer query parameter.
// Returns def when the parameter is absent, and ok=false when it is
// present but malformed.
func queryInt(r *http.Request, name string, def int) (value int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
