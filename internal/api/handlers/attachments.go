package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// AttachmentHandler handles attachment endpoints under a survey.
type AttachmentHandler struct {
	store store.AttachmentStore
	guard *policy.Guard
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(s store.AttachmentStore, guard *policy.Guard) *AttachmentHandler {
	return &AttachmentHandler{store: s, guard: guard}
}

// CreateAttachmentRequest is the request body for POST /v1/surveys/{surveyId}/attachments.
type CreateAttachmentRequest struct {
	Name        string `json:"name" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description,omitempty"`
}

// UpdateAttachmentRequest is the request body for PUT /v1/surveys/{surveyId}/attachments/{attachmentId}.
type UpdateAttachmentRequest struct {
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty"`
}

// AttachmentResponse is the wire representation of an attachment.
type AttachmentResponse struct {
	MetadataResponse
	SurveyID    string `json:"survey_id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

func attachmentToResponse(a *models.Attachment) AttachmentResponse {
	return AttachmentResponse{
		MetadataResponse: metadataResponse(&a.Metadata),
		SurveyID:         a.SurveyID,
		Name:             a.Name,
		URL:              a.URL,
		Description:      a.Description,
	}
}

// Create handles POST /v1/surveys/{surveyId}/attachments.
func (h *AttachmentHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateAttachmentRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	attachment := &models.Attachment{
		Metadata:    models.Metadata{CreatorID: p.UserID},
		SurveyID:    surveyID,
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
	}

	if err := h.store.CreateAttachment(r.Context(), attachment); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, attachmentToResponse(attachment))
}

// List handles GET /v1/surveys/{surveyId}/attachments.
func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	attachments, err := h.store.ListAttachments(r.Context(), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]AttachmentResponse, len(attachments))
	for i, a := range attachments {
		response[i] = attachmentToResponse(a)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}/attachments/{attachmentId}.
func (h *AttachmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	attachmentID := chi.URLParam(r, "attachmentId")
	if surveyID == "" || attachmentID == "" {
		BadRequest(w, "Survey id and attachment id are required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	attachment, err := h.store.GetAttachment(r.Context(), surveyID, attachmentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, attachmentToResponse(attachment))
}

// Update handles PUT /v1/surveys/{surveyId}/attachments/{attachmentId}.
func (h *AttachmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	attachmentID := chi.URLParam(r, "attachmentId")
	if surveyID == "" || attachmentID == "" {
		BadRequest(w, "Survey id and attachment id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateAttachmentRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	attachment, err := h.store.GetAttachment(r.Context(), surveyID, attachmentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		attachment.Name = *req.Name
	}
	if req.URL != nil {
		attachment.URL = *req.URL
	}
	if req.Description != nil {
		attachment.Description = *req.Description
	}
	attachment.Touch(p.UserID, time.Now())

	if err := h.store.UpdateAttachment(r.Context(), attachment); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, attachmentToResponse(attachment))
}

// Delete handles DELETE /v1/surveys/{surveyId}/attachments/{attachmentId}.
func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	attachmentID := chi.URLParam(r, "attachmentId")
	if surveyID == "" || attachmentID == "" {
		BadRequest(w, "Survey id and attachment id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteAttachment(r.Context(), surveyID, attachmentID, p.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
