package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// HazardousWasteHandler handles hazardous waste endpoints under a survey.
type HazardousWasteHandler struct {
	store store.HazardousWasteStore
	guard *policy.Guard
}

// NewHazardousWasteHandler creates a new HazardousWasteHandler.
func NewHazardousWasteHandler(s store.HazardousWasteStore, guard *policy.Guard) *HazardousWasteHandler {
	return &HazardousWasteHandler{store: s, guard: guard}
}

// CreateHazardousWasteRequest is the request body for POST /v1/surveys/{surveyId}/hazardous-wastes.
// The specifier reference is optional.
type CreateHazardousWasteRequest struct {
	HazardousMaterialID string   `json:"hazardous_material_id" validate:"required"`
	WasteSpecifierID    *string  `json:"waste_specifier_id,omitempty"`
	Amount              *float64 `json:"amount,omitempty"`
	Description         string   `json:"description,omitempty"`
}

// UpdateHazardousWasteRequest is the request body for PUT /v1/surveys/{surveyId}/hazardous-wastes/{hazardousWasteId}.
type UpdateHazardousWasteRequest struct {
	HazardousMaterialID *string  `json:"hazardous_material_id,omitempty"`
	WasteSpecifierID    *string  `json:"waste_specifier_id,omitempty"`
	Amount              *float64 `json:"amount,omitempty"`
	Description         *string  `json:"description,omitempty"`
}

// HazardousWasteResponse is the wire representation of a hazardous waste entry.
type HazardousWasteResponse struct {
	MetadataResponse
	SurveyID            string   `json:"survey_id"`
	HazardousMaterialID string   `json:"hazardous_material_id"`
	WasteSpecifierID    *string  `json:"waste_specifier_id,omitempty"`
	Amount              *float64 `json:"amount,omitempty"`
	Description         string   `json:"description,omitempty"`
}

func hazardousWasteToResponse(hw *models.HazardousWaste) HazardousWasteResponse {
	return HazardousWasteResponse{
		MetadataResponse:    metadataResponse(&hw.Metadata),
		SurveyID:            hw.SurveyID,
		HazardousMaterialID: hw.HazardousMaterialID,
		WasteSpecifierID:    hw.WasteSpecifierID,
		Amount:              hw.Amount,
		Description:         hw.Description,
	}
}

// Create handles POST /v1/surveys/{surveyId}/hazardous-wastes.
func (h *HazardousWasteHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateHazardousWasteRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	hw := &models.HazardousWaste{
		Metadata:            models.Metadata{CreatorID: p.UserID},
		SurveyID:            surveyID,
		HazardousMaterialID: req.HazardousMaterialID,
		WasteSpecifierID:    req.WasteSpecifierID,
		Amount:              req.Amount,
		Description:         req.Description,
	}

	if err := h.store.CreateHazardousWaste(r.Context(), hw); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, hazardousWasteToResponse(hw))
}

// List handles GET /v1/surveys/{surveyId}/hazardous-wastes.
func (h *HazardousWasteHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	wastes, err := h.store.ListHazardousWastes(r.Context(), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]HazardousWasteResponse, len(wastes))
	for i, hw := range wastes {
		response[i] = hazardousWasteToResponse(hw)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}/hazardous-wastes/{hazardousWasteId}.
func (h *HazardousWasteHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	hazardousWasteID := chi.URLParam(r, "hazardousWasteId")
	if surveyID == "" || hazardousWasteID == "" {
		BadRequest(w, "Survey id and hazardous waste id are required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	hw, err := h.store.GetHazardousWaste(r.Context(), surveyID, hazardousWasteID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, hazardousWasteToResponse(hw))
}

// Update handles PUT /v1/surveys/{surveyId}/hazardous-wastes/{hazardousWasteId}.
func (h *HazardousWasteHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	hazardousWasteID := chi.URLParam(r, "hazardousWasteId")
	if surveyID == "" || hazardousWasteID == "" {
		BadRequest(w, "Survey id and hazardous waste id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateHazardousWasteRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	hw, err := h.store.GetHazardousWaste(r.Context(), surveyID, hazardousWasteID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.HazardousMaterialID != nil {
		if *req.HazardousMaterialID == "" {
			BadRequest(w, "Hazardous material id cannot be empty")
			return
		}
		hw.HazardousMaterialID = *req.HazardousMaterialID
	}
	if req.WasteSpecifierID != nil {
		// An explicit empty string clears the optional specifier.
		if *req.WasteSpecifierID == "" {
			hw.WasteSpecifierID = nil
		} else {
			hw.WasteSpecifierID = req.WasteSpecifierID
		}
	}
	if req.Amount != nil {
		hw.Amount = req.Amount
	}
	if req.Description != nil {
		hw.Description = *req.Description
	}
	hw.Touch(p.UserID, time.Now())

	if err := h.store.UpdateHazardousWaste(r.Context(), hw); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, hazardousWasteToResponse(hw))
}

// Delete handles DELETE /v1/surveys/{surveyId}/hazardous-wastes/{hazardousWasteId}.
func (h *HazardousWasteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	hazardousWasteID := chi.URLParam(r, "hazardousWasteId")
	if surveyID == "" || hazardousWasteID == "" {
		BadRequest(w, "Survey id and hazardous waste id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteHazardousWaste(r.Context(), surveyID, hazardousWasteID, p.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
