package handlers

import (
	"net/http"
	"time"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// Response represents a standard health/status response wrapper.
//
//   - Status indicates the overall result ("healthy", "unhealthy")
//   - Timestamp provides response time for debugging and caching
//   - Data contains the response payload (optional)
//   - Error contains error details when Status indicates failure (optional)
type Response struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// healthyResponse creates a successful health check response.
func healthyResponse(data any) Response {
	return Response{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// unhealthyResponse creates a failed health check response with an error message.
func unhealthyResponse(errMsg string) Response {
	return Response{
		Status:    "unhealthy",
		Timestamp: time.Now().UTC(),
		Error:     errMsg,
	}
}

// MetadataResponse is the audit envelope present on every entity response.
type MetadataResponse struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatorID  string    `json:"creator_id"`
	ModifierID string    `json:"modifier_id"`
}

// metadataResponse converts the stored audit fields to their wire shape.
func metadataResponse(m *models.Metadata) MetadataResponse {
	return MetadataResponse{
		ID:         m.ID,
		CreatedAt:  m.CreatedAt,
		ModifiedAt: m.ModifiedAt,
		CreatorID:  m.CreatorID,
		ModifierID: m.ModifierID,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, data)
}
