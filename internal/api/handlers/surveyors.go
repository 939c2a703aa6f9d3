package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// SurveyorHandler handles surveyor endpoints under a survey.
type SurveyorHandler struct {
	store store.SurveyorStore
	guard *policy.Guard
}

// NewSurveyorHandler creates a new SurveyorHandler.
func NewSurveyorHandler(s store.SurveyorStore, guard *policy.Guard) *SurveyorHandler {
	return &SurveyorHandler{store: s, guard: guard}
}

// CreateSurveyorRequest is the request body for POST /v1/surveys/{surveyId}/surveyors.
type CreateSurveyorRequest struct {
	FirstName  string     `json:"first_name,omitempty"`
	LastName   string     `json:"last_name,omitempty"`
	Company    string     `json:"company,omitempty"`
	Role       string     `json:"role,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty" validate:"omitempty,email"`
	ReportDate *time.Time `json:"report_date,omitempty"`
	Visits     string     `json:"visits,omitempty"`
}

// UpdateSurveyorRequest is the request body for PUT /v1/surveys/{surveyId}/surveyors/{surveyorId}.
type UpdateSurveyorRequest struct {
	FirstName  *string    `json:"first_name,omitempty"`
	LastName   *string    `json:"last_name,omitempty"`
	Company    *string    `json:"company,omitempty"`
	Role       *string    `json:"role,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	ReportDate *time.Time `json:"report_date,omitempty"`
	Visits     *string    `json:"visits,omitempty"`
}

// SurveyorResponse is the wire representation of a surveyor.
type SurveyorResponse struct {
	MetadataResponse
	SurveyID   string     `json:"survey_id"`
	FirstName  string     `json:"first_name,omitempty"`
	LastName   string     `json:"last_name,omitempty"`
	Company    string     `json:"company,omitempty"`
	Role       string     `json:"role,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty"`
	ReportDate *time.Time `json:"report_date,omitempty"`
	Visits     string     `json:"visits,omitempty"`
}

func surveyorToResponse(s *models.Surveyor) SurveyorResponse {
	return SurveyorResponse{
		MetadataResponse: metadataResponse(&s.Metadata),
		SurveyID:         s.SurveyID,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		Company:          s.Company,
		Role:             s.Role,
		Phone:            s.Phone,
		Email:            s.Email,
		ReportDate:       s.ReportDate,
		Visits:           s.Visits,
	}
}

// Create handles POST /v1/surveys/{surveyId}/surveyors.
func (h *SurveyorHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateSurveyorRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	surveyor := &models.Surveyor{
		Metadata:   models.Metadata{CreatorID: p.UserID},
		SurveyID:   surveyID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Company:    req.Company,
		Role:       req.Role,
		Phone:      req.Phone,
		Email:      req.Email,
		ReportDate: req.ReportDate,
		Visits:     req.Visits,
	}

	if err := h.store.CreateSurveyor(r.Context(), surveyor); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, surveyorToResponse(surveyor))
}

// List handles GET /v1/surveys/{surveyId}/surveyors.
func (h *SurveyorHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	surveyors, err := h.store.ListSurveyors(r.Context(), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]SurveyorResponse, len(surveyors))
	for i, s := range surveyors {
		response[i] = surveyorToResponse(s)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}/surveyors/{surveyorId}.
func (h *SurveyorHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	surveyorID := chi.URLParam(r, "surveyorId")
	if surveyID == "" || surveyorID == "" {
		BadRequest(w, "Survey id and surveyor id are required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	surveyor, err := h.store.GetSurveyor(r.Context(), surveyID, surveyorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, surveyorToResponse(surveyor))
}

// Update handles PUT /v1/surveys/{surveyId}/surveyors/{surveyorId}.
func (h *SurveyorHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	surveyorID := chi.URLParam(r, "surveyorId")
	if surveyID == "" || surveyorID == "" {
		BadRequest(w, "Survey id and surveyor id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateSurveyorRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	surveyor, err := h.store.GetSurveyor(r.Context(), surveyID, surveyorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.FirstName != nil {
		surveyor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		surveyor.LastName = *req.LastName
	}
	if req.Company != nil {
		surveyor.Company = *req.Company
	}
	if req.Role != nil {
		surveyor.Role = *req.Role
	}
	if req.Phone != nil {
		surveyor.Phone = *req.Phone
	}
	if req.Email != nil {
		surveyor.Email = *req.Email
	}
	if req.ReportDate != nil {
		surveyor.ReportDate = req.ReportDate
	}
	if req.Visits != nil {
		surveyor.Visits = *req.Visits
	}
	surveyor.Touch(p.UserID, time.Now())

	if err := h.store.UpdateSurveyor(r.Context(), surveyor); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, surveyorToResponse(surveyor))
}

// Delete handles DELETE /v1/surveys/{surveyId}/surveyors/{surveyorId}.
func (h *SurveyorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	surveyorID := chi.URLParam(r, "surveyorId")
	if surveyID == "" || surveyorID == "" {
		BadRequest(w, "Survey id and surveyor id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteSurveyor(r.Context(), surveyID, surveyorID, p.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
