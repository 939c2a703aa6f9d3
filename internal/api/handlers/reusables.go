package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// ReusableHandler handles reusable component endpoints under a survey.
type ReusableHandler struct {
	store store.ReusableStore
	guard *policy.Guard
}

// NewReusableHandler creates a new ReusableHandler.
func NewReusableHandler(s store.ReusableStore, guard *policy.Guard) *ReusableHandler {
	return &ReusableHandler{store: s, guard: guard}
}

// CreateReusableRequest is the request body for POST /v1/surveys/{surveyId}/reusables.
type CreateReusableRequest struct {
	ReusableMaterialID string   `json:"reusable_material_id" validate:"required"`
	ComponentName      string   `json:"component_name" validate:"required"`
	Usability          string   `json:"usability,omitempty" validate:"omitempty,oneof=excellent good poor not_validated"`
	Amount             *float64 `json:"amount,omitempty"`
	Unit               string   `json:"unit,omitempty" validate:"omitempty,oneof=kg tn m2 m3 pcs rm"`
	Description        string   `json:"description,omitempty"`
	Images             []string `json:"images,omitempty"`
}

// UpdateReusableRequest is the request body for PUT /v1/surveys/{surveyId}/reusables/{reusableId}.
type UpdateReusableRequest struct {
	ReusableMaterialID *string   `json:"reusable_material_id,omitempty"`
	ComponentName      *string   `json:"component_name,omitempty"`
	Usability          *string   `json:"usability,omitempty" validate:"omitempty,oneof=excellent good poor not_validated"`
	Amount             *float64  `json:"amount,omitempty"`
	Unit               *string   `json:"unit,omitempty" validate:"omitempty,oneof=kg tn m2 m3 pcs rm"`
	Description        *string   `json:"description,omitempty"`
	Images             *[]string `json:"images,omitempty"`
}

// ReusableResponse is the wire representation of a reusable component.
type ReusableResponse struct {
	MetadataResponse
	SurveyID           string           `json:"survey_id"`
	ReusableMaterialID string           `json:"reusable_material_id"`
	ComponentName      string           `json:"component_name"`
	Usability          models.Usability `json:"usability"`
	Amount             *float64         `json:"amount,omitempty"`
	Unit               models.Unit      `json:"unit,omitempty"`
	Description        string           `json:"description,omitempty"`
	Images             []string         `json:"images,omitempty"`
}

func reusableToResponse(re *models.Reusable) ReusableResponse {
	return ReusableResponse{
		MetadataResponse:   metadataResponse(&re.Metadata),
		SurveyID:           re.SurveyID,
		ReusableMaterialID: re.ReusableMaterialID,
		ComponentName:      re.ComponentName,
		Usability:          re.Usability,
		Amount:             re.Amount,
		Unit:               re.Unit,
		Description:        re.Description,
		Images:             re.Images,
	}
}

// Create handles POST /v1/surveys/{surveyId}/reusables.
// The referenced reusable material must exist.
func (h *ReusableHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateReusableRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	usability := models.UsabilityNotValidated
	if req.Usability != "" {
		usability = models.Usability(req.Usability)
	}

	reusable := &models.Reusable{
		Metadata:           models.Metadata{CreatorID: p.UserID},
		SurveyID:           surveyID,
		ReusableMaterialID: req.ReusableMaterialID,
		ComponentName:      req.ComponentName,
		Usability:          usability,
		Amount:             req.Amount,
		Unit:               models.Unit(req.Unit),
		Description:        req.Description,
		Images:             req.Images,
	}
	if err := reusable.Validate(); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.store.CreateReusable(r.Context(), reusable); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, reusableToResponse(reusable))
}

// List handles GET /v1/surveys/{surveyId}/reusables.
func (h *ReusableHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	reusables, err := h.store.ListReusables(r.Context(), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]ReusableResponse, len(reusables))
	for i, re := range reusables {
		response[i] = reusableToResponse(re)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}/reusables/{reusableId}.
func (h *ReusableHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	reusableID := chi.URLParam(r, "reusableId")
	if surveyID == "" || reusableID == "" {
		BadRequest(w, "Survey id and reusable id are required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	reusable, err := h.store.GetReusable(r.Context(), surveyID, reusableID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, reusableToResponse(reusable))
}

// Update handles PUT /v1/surveys/{surveyId}/reusables/{reusableId}.
func (h *ReusableHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	reusableID := chi.URLParam(r, "reusableId")
	if surveyID == "" || reusableID == "" {
		BadRequest(w, "Survey id and reusable id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateReusableRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	reusable, err := h.store.GetReusable(r.Context(), surveyID, reusableID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.ReusableMaterialID != nil {
		if *req.ReusableMaterialID == "" {
			BadRequest(w, "Reusable material id cannot be empty")
			return
		}
		reusable.ReusableMaterialID = *req.ReusableMaterialID
	}
	if req.ComponentName != nil {
		if *req.ComponentName == "" {
			BadRequest(w, "Component name cannot be empty")
			return
		}
		reusable.ComponentName = *req.ComponentName
	}
	if req.Usability != nil {
		reusable.Usability = models.Usability(*req.Usability)
	}
	if req.Amount != nil {
		reusable.Amount = req.Amount
	}
	if req.Unit != nil {
		reusable.Unit = models.Unit(*req.Unit)
	}
	if req.Description != nil {
		reusable.Description = *req.Description
	}
	if req.Images != nil {
		reusable.Images = *req.Images
	}
	if err := reusable.Validate(); err != nil {
		BadRequest(w, err.Error())
		return
	}
	reusable.Touch(p.UserID, time.Now())

	if err := h.store.UpdateReusable(r.Context(), reusable); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, reusableToResponse(reusable))
}

// Delete handles DELETE /v1/surveys/{surveyId}/reusables/{reusableId}.
func (h *ReusableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	reusableID := chi.URLParam(r, "reusableId")
	if surveyID == "" || reusableID == "" {
		BadRequest(w, "Survey id and reusable id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteReusable(r.Context(), surveyID, reusableID, p.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
