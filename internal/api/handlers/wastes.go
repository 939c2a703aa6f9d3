package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// WasteHandler handles non-hazardous waste endpoints under a survey.
type WasteHandler struct {
	store store.WasteStore
	guard *policy.Guard
}

// NewWasteHandler creates a new WasteHandler.
func NewWasteHandler(s store.WasteStore, guard *policy.Guard) *WasteHandler {
	return &WasteHandler{store: s, guard: guard}
}

// CreateWasteRequest is the request body for POST /v1/surveys/{surveyId}/wastes.
type CreateWasteRequest struct {
	WasteMaterialID string   `json:"waste_material_id" validate:"required"`
	WasteUsageID    string   `json:"waste_usage_id" validate:"required"`
	Amount          *float64 `json:"amount,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// UpdateWasteRequest is the request body for PUT /v1/surveys/{surveyId}/wastes/{wasteId}.
type UpdateWasteRequest struct {
	WasteMaterialID *string  `json:"waste_material_id,omitempty"`
	WasteUsageID    *string  `json:"waste_usage_id,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Description     *string  `json:"description,omitempty"`
}

// WasteResponse is the wire representation of a waste entry.
type WasteResponse struct {
	MetadataResponse
	SurveyID        string   `json:"survey_id"`
	WasteMaterialID string   `json:"waste_material_id"`
	WasteUsageID    string   `json:"waste_usage_id"`
	Amount          *float64 `json:"amount,omitempty"`
	Description     string   `json:"description,omitempty"`
}

func wasteToResponse(ws *models.Waste) WasteResponse {
	return WasteResponse{
		MetadataResponse: metadataResponse(&ws.Metadata),
		SurveyID:         ws.SurveyID,
		WasteMaterialID:  ws.WasteMaterialID,
		WasteUsageID:     ws.WasteUsageID,
		Amount:           ws.Amount,
		Description:      ws.Description,
	}
}

// Create handles POST /v1/surveys/{surveyId}/wastes.
// Both catalog references must exist.
func (h *WasteHandler) Create(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req CreateWasteRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	waste := &models.Waste{
		Metadata:        models.Metadata{CreatorID: p.UserID},
		SurveyID:        surveyID,
		WasteMaterialID: req.WasteMaterialID,
		WasteUsageID:    req.WasteUsageID,
		Amount:          req.Amount,
		Description:     req.Description,
	}

	if err := h.store.CreateWaste(r.Context(), waste); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, wasteToResponse(waste))
}

// List handles GET /v1/surveys/{surveyId}/wastes.
func (h *WasteHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	wastes, err := h.store.ListWastes(r.Context(), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]WasteResponse, len(wastes))
	for i, ws := range wastes {
		response[i] = wasteToResponse(ws)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}/wastes/{wasteId}.
func (h *WasteHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	wasteID := chi.URLParam(r, "wasteId")
	if surveyID == "" || wasteID == "" {
		BadRequest(w, "Survey id and waste id are required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	waste, err := h.store.GetWaste(r.Context(), surveyID, wasteID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, wasteToResponse(waste))
}

// Update handles PUT /v1/surveys/{surveyId}/wastes/{wasteId}.
func (h *WasteHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	wasteID := chi.URLParam(r, "wasteId")
	if surveyID == "" || wasteID == "" {
		BadRequest(w, "Survey id and waste id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateWasteRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	waste, err := h.store.GetWaste(r.Context(), surveyID, wasteID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.WasteMaterialID != nil {
		if *req.WasteMaterialID == "" {
			BadRequest(w, "Waste material id cannot be empty")
			return
		}
		waste.WasteMaterialID = *req.WasteMaterialID
	}
	if req.WasteUsageID != nil {
		if *req.WasteUsageID == "" {
			BadRequest(w, "Waste usage id cannot be empty")
			return
		}
		waste.WasteUsageID = *req.WasteUsageID
	}
	if req.Amount != nil {
		waste.Amount = req.Amount
	}
	if req.Description != nil {
		waste.Description = *req.Description
	}
	waste.Touch(p.UserID, time.Now())

	if err := h.store.UpdateWaste(r.Context(), waste); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, wasteToResponse(waste))
}

// Delete handles DELETE /v1/surveys/{surveyId}/wastes/{wasteId}.
func (h *WasteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	wasteID := chi.URLParam(r, "wasteId")
	if surveyID == "" || wasteID == "" {
		BadRequest(w, "Survey id and waste id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteWaste(r.Context(), surveyID, wasteID, p.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
