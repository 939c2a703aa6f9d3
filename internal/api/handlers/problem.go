// Package handlers provides HTTP handlers for the survey API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// Error is the wire shape of every error response.
//
//   - Message is a human-readable explanation of the failure.
//   - Code repeats the HTTP status code so clients that discard the
//     transport status can still branch on it.
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// WriteError writes an error response with the given status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&Error{Message: message, Code: status})
}

// Common error helper functions for standard HTTP statuses.

// BadRequest writes a 400 Bad Request error response.
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 Unauthorized error response.
func Unauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// Forbidden writes a 403 Forbidden error response.
func Forbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, message)
}

// NotFound writes a 404 Not Found error response.
func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// Conflict writes a 409 Conflict error response.
func Conflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, message)
}

// InternalServerError writes a 500 Internal Server Error error response.
func InternalServerError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONOK writes a 200 OK JSON response.
func WriteJSONOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteJSONCreated writes a 201 Created JSON response.
func WriteJSONCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

// WriteNoContent writes a 204 No Content response.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps storage and policy errors to error responses.
// Not-found sentinels (including dangling catalog references caught at
// write time) become 404s; everything unrecognized becomes a 500 without
// leaking internals to the client.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		return
	case models.IsNotFound(err):
		NotFound(w, err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, models.ErrForbidden):
		Forbidden(w, "Access denied")
	case errors.Is(err, models.ErrSurveyHasChildren):
		Conflict(w, "Survey still has dependent entities")
	case errors.Is(err, models.ErrCatalogInUse):
		Conflict(w, "Entity is still referenced by other entities")
	default:
		InternalServerError(w, "Unexpected error")
	}
}
