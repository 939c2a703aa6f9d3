package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// SurveyHandler handles survey management API endpoints.
type SurveyHandler struct {
	store store.SurveyStore
	guard *policy.Guard
}

// NewSurveyHandler creates a new SurveyHandler.
func NewSurveyHandler(s store.SurveyStore, guard *policy.Guard) *SurveyHandler {
	return &SurveyHandler{store: s, guard: guard}
}

// CreateSurveyRequest is the request body for POST /v1/surveys.
//
// GroupID is optional: it defaults to the caller's group and only an
// administrator may set it to a foreign group.
type CreateSurveyRequest struct {
	Status    string     `json:"status,omitempty" validate:"omitempty,oneof=draft done"`
	Type      string     `json:"type,omitempty" validate:"omitempty,oneof=demolition renovation partial_demolition"`
	GroupID   string     `json:"group_id,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// UpdateSurveyRequest is the request body for PUT /v1/surveys/{surveyId}.
// The survey's group is immutable and cannot be changed here.
type UpdateSurveyRequest struct {
	Status    *string    `json:"status,omitempty" validate:"omitempty,oneof=draft done"`
	Type      *string    `json:"type,omitempty" validate:"omitempty,oneof=demolition renovation partial_demolition"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// SurveyResponse is the wire representation of a survey.
type SurveyResponse struct {
	MetadataResponse
	Status    models.SurveyStatus `json:"status"`
	Type      models.SurveyType   `json:"type,omitempty"`
	GroupID   string              `json:"group_id"`
	StartDate *time.Time          `json:"start_date,omitempty"`
	EndDate   *time.Time          `json:"end_date,omitempty"`
}

func surveyToResponse(s *models.Survey) SurveyResponse {
	return SurveyResponse{
		MetadataResponse: metadataResponse(&s.Metadata),
		Status:           s.Status,
		Type:             s.Type,
		GroupID:          s.GroupID,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
	}
}

// Create handles POST /v1/surveys.
// Creates a survey owned by the caller's group.
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := requestPrincipal(r)
	if p == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	var req CreateSurveyRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	group := p.GroupID
	if req.GroupID != "" && req.GroupID != p.GroupID {
		if !p.Admin {
			Forbidden(w, "Cannot create a survey for a foreign group")
			return
		}
		group = req.GroupID
	}
	if group == "" {
		BadRequest(w, "Group is required")
		return
	}

	status := models.SurveyStatusDraft
	if req.Status != "" {
		status = models.SurveyStatus(req.Status)
	}

	survey := &models.Survey{
		Metadata:  models.Metadata{CreatorID: p.UserID},
		Status:    status,
		Type:      models.SurveyType(req.Type),
		GroupID:   group,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := survey.Validate(); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.store.CreateSurvey(r.Context(), survey); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, surveyToResponse(survey))
}

// List handles GET /v1/surveys.
//
// Non-administrators see only their own group's surveys; an administrator
// sees every group and may narrow with the groupId parameter. Results are
// ordered oldest first and paginated with firstResult/maxResults.
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	p := requestPrincipal(r)
	if p == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	filter := store.SurveyFilter{
		Status:  models.SurveyStatus(r.URL.Query().Get("status")),
		Address: r.URL.Query().Get("address"),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		BadRequest(w, "Invalid status filter. Must be 'draft' or 'done'")
		return
	}

	var ok bool
	if filter.FirstResult, ok = queryInt(r, "firstResult", 0); !ok {
		BadRequest(w, "Invalid firstResult parameter")
		return
	}
	if filter.MaxResults, ok = queryInt(r, "maxResults", 0); !ok {
		BadRequest(w, "Invalid maxResults parameter")
		return
	}

	if p.Admin {
		filter.GroupID = r.URL.Query().Get("groupId")
	} else {
		filter.GroupID = p.GroupID
	}

	surveys, err := h.store.ListSurveys(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]SurveyResponse, len(surveys))
	for i, s := range surveys {
		response[i] = surveyToResponse(s)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}.
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	survey, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, surveyToResponse(survey))
}

// Update handles PUT /v1/surveys/{surveyId}.
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	p := requestPrincipal(r)
	survey, err := h.guard.RequireSurvey(r.Context(), p, surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateSurveyRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Status != nil {
		survey.Status = models.SurveyStatus(*req.Status)
	}
	if req.Type != nil {
		survey.Type = models.SurveyType(*req.Type)
	}
	if req.StartDate != nil {
		survey.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		survey.EndDate = req.EndDate
	}
	survey.Touch(p.UserID, time.Now())

	if err := h.store.UpdateSurvey(r.Context(), survey); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, surveyToResponse(survey))
}

// Delete handles DELETE /v1/surveys/{surveyId}.
// A survey that still has child entities is rejected with 409.
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteSurvey(r.Context(), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
