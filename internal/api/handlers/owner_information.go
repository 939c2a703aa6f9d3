package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// OwnerInformationHandler handles owner information endpoints under a survey.
type OwnerInformationHandler struct {
	store store.OwnerInformationStore
	guard *policy.Guard
}

// NewOwnerInformationHandler creates a new OwnerInformationHandler.
func NewOwnerInformationHandler(s store.OwnerInformationStore, guard *policy.Guard) *OwnerInformationHandler {
	return &OwnerInformationHandler{store: s, guard: guard}
}

// CreateOwnerInformationRequest is the request body for POST /v1/surveys/{surveyId}/owners.
type CreateOwnerInformationRequest struct {
	OwnerName     string               `json:"owner_name,omitempty"`
	BusinessID    string               `json:"business_id,omitempty"`
	ContactPerson models.ContactPerson `json:"contact_person"`
}

// UpdateOwnerInformationRequest is the request body for PUT /v1/surveys/{surveyId}/owners/{ownerId}.
type UpdateOwnerInformationRequest struct {
	OwnerName     *string               `json:"owner_name,omitempty"`
	BusinessID    *string               `json:"business_id,omitempty"`
	ContactPerson *models.ContactPerson `json:"contact_person,omitempty"`
}

// OwnerInformationResponse is the wire representation of an owner record.
type OwnerInformationResponse struct {
	MetadataResponse
	SurveyID      string               `json:"survey_id"`
	OwnerName     string               `json:"owner_name,omitempty"`
	BusinessID    string               `json:"business_id,omitempty"`
	ContactPerson models.ContactPerson `json:"contact_person"`
}

func ownerInformationToResponse(o *models.OwnerInformation) OwnerInformationResponse {
	return OwnerInformationResponse{
		MetadataResponse: metadataResponse(&o.Metadata),
		SurveyID:         o.SurveyID,
		OwnerName:        o.OwnerName,
		BusinessID:       o.BusinessID,
		ContactPerson:    o.ContactPerson,
	}
}

// Create handles POST /v1/surveys/{surveyId}/owners.
func (h *OwnerInformationHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateOwnerInformationRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	owner := &models.OwnerInformation{
		Metadata:      models.Metadata{CreatorID: p.UserID},
		SurveyID:      surveyID,
		OwnerName:     req.OwnerName,
		BusinessID:    req.BusinessID,
		ContactPerson: req.ContactPerson,
	}

	if err := h.store.CreateOwnerInformation(r.Context(), owner); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, ownerInformationToResponse(owner))
}

// List handles GET /v1/surveys/{surveyId}/owners.
func (h *OwnerInformationHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	owners, err := h.store.ListOwnerInformation(r.Context(), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]OwnerInformationResponse, len(owners))
	for i, o := range owners {
		response[i] = ownerInformationToResponse(o)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}/owners/{ownerId}.
func (h *OwnerInformationHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	ownerID := chi.URLParam(r, "ownerId")
	if surveyID == "" || ownerID == "" {
		BadRequest(w, "Survey id and owner id are required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	owner, err := h.store.GetOwnerInformation(r.Context(), surveyID, ownerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, ownerInformationToResponse(owner))
}

// Update handles PUT /v1/surveys/{surveyId}/owners/{ownerId}.
func (h *OwnerInformationHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	ownerID := chi.URLParam(r, "ownerId")
	if surveyID == "" || ownerID == "" {
		BadRequest(w, "Survey id and owner id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateOwnerInformationRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	owner, err := h.store.GetOwnerInformation(r.Context(), surveyID, ownerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.OwnerName != nil {
		owner.OwnerName = *req.OwnerName
	}
	if req.BusinessID != nil {
		owner.BusinessID = *req.BusinessID
	}
	if req.ContactPerson != nil {
		owner.ContactPerson = *req.ContactPerson
	}
	owner.Touch(p.UserID, time.Now())

	if err := h.store.UpdateOwnerInformation(r.Context(), owner); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, ownerInformationToResponse(owner))
}

// Delete handles DELETE /v1/surveys/{surveyId}/owners/{ownerId}.
func (h *OwnerInformationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	ownerID := chi.URLParam(r, "ownerId")
	if surveyID == "" || ownerID == "" {
		BadRequest(w, "Survey id and owner id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteOwnerInformation(r.Context(), surveyID, ownerID, p.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
