package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// BuildingHandler handles building endpoints under a survey.
type BuildingHandler struct {
	store store.BuildingStore
	guard *policy.Guard
}

// NewBuildingHandler creates a new BuildingHandler.
func NewBuildingHandler(s store.BuildingStore, guard *policy.Guard) *BuildingHandler {
	return &BuildingHandler{store: s, guard: guard}
}

// CreateBuildingRequest is the request body for POST /v1/surveys/{surveyId}/buildings.
type CreateBuildingRequest struct {
	BuildingTypeID   *string                 `json:"building_type_id,omitempty"`
	PropertyName     string                  `json:"property_name,omitempty"`
	Address          models.Address          `json:"address"`
	ConstructionYear *int                    `json:"construction_year,omitempty"`
	FloorCount       *int                    `json:"floor_count,omitempty"`
	BasementCount    *int                    `json:"basement_count,omitempty"`
	FloorAreaM2      *int                    `json:"floor_area_m2,omitempty"`
	OtherStructures  []models.OtherStructure `json:"other_structures,omitempty"`
}

// UpdateBuildingRequest is the request body for PUT /v1/surveys/{surveyId}/buildings/{buildingId}.
type UpdateBuildingRequest struct {
	BuildingTypeID   *string                  `json:"building_type_id,omitempty"`
	PropertyName     *string                  `json:"property_name,omitempty"`
	Address          *models.Address          `json:"address,omitempty"`
	ConstructionYear *int                     `json:"construction_year,omitempty"`
	FloorCount       *int                     `json:"floor_count,omitempty"`
	BasementCount    *int                     `json:"basement_count,omitempty"`
	FloorAreaM2      *int                     `json:"floor_area_m2,omitempty"`
	OtherStructures  *[]models.OtherStructure `json:"other_structures,omitempty"`
}

// BuildingResponse is the wire representation of a building.
type BuildingResponse struct {
	MetadataResponse
	SurveyID         string                  `json:"survey_id"`
	BuildingTypeID   *string                 `json:"building_type_id,omitempty"`
	PropertyName     string                  `json:"property_name,omitempty"`
	Address          models.Address          `json:"address"`
	ConstructionYear *int                    `json:"construction_year,omitempty"`
	FloorCount       *int                    `json:"floor_count,omitempty"`
	BasementCount    *int                    `json:"basement_count,omitempty"`
	FloorAreaM2      *int                    `json:"floor_area_m2,omitempty"`
	OtherStructures  []models.OtherStructure `json:"other_structures,omitempty"`
}

func buildingToResponse(b *models.Building) BuildingResponse {
	return BuildingResponse{
		MetadataResponse: metadataResponse(&b.Metadata),
		SurveyID:         b.SurveyID,
		BuildingTypeID:   b.BuildingTypeID,
		PropertyName:     b.PropertyName,
		Address:          b.Address,
		ConstructionYear: b.ConstructionYear,
		FloorCount:       b.FloorCount,
		BasementCount:    b.BasementCount,
		FloorAreaM2:      b.FloorAreaM2,
		OtherStructures:  b.OtherStructures,
	}
}

// Create handles POST /v1/surveys/{surveyId}/buildings.
func (h *BuildingHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateBuildingRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	building := &models.Building{
		Metadata:         models.Metadata{CreatorID: p.UserID},
		SurveyID:         surveyID,
		BuildingTypeID:   req.BuildingTypeID,
		PropertyName:     req.PropertyName,
		Address:          req.Address,
		ConstructionYear: req.ConstructionYear,
		FloorCount:       req.FloorCount,
		BasementCount:    req.BasementCount,
		FloorAreaM2:      req.FloorAreaM2,
		OtherStructures:  req.OtherStructures,
	}

	if err := h.store.CreateBuilding(r.Context(), building); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONCreated(w, buildingToResponse(building))
}

// List handles GET /v1/surveys/{surveyId}/buildings.
func (h *BuildingHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	if surveyID == "" {
		BadRequest(w, "Survey id is required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	buildings, err := h.store.ListBuildings(r.Context(), surveyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]BuildingResponse, len(buildings))
	for i, b := range buildings {
		response[i] = buildingToResponse(b)
	}
	WriteJSONOK(w, response)
}

// Get handles GET /v1/surveys/{surveyId}/buildings/{buildingId}.
func (h *BuildingHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	buildingID := chi.URLParam(r, "buildingId")
	if surveyID == "" || buildingID == "" {
		BadRequest(w, "Survey id and building id are required")
		return
	}

	if _, err := h.guard.RequireSurvey(r.Context(), requestPrincipal(r), surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	building, err := h.store.GetBuilding(r.Context(), surveyID, buildingID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, buildingToResponse(building))
}

// Update handles PUT /v1/surveys/{surveyId}/buildings/{buildingId}.
func (h *BuildingHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	buildingID := chi.URLParam(r, "buildingId")
	if surveyID == "" || buildingID == "" {
		BadRequest(w, "Survey id and building id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	var req UpdateBuildingRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	building, err := h.store.GetBuilding(r.Context(), surveyID, buildingID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.BuildingTypeID != nil {
		building.BuildingTypeID = req.BuildingTypeID
	}
	if req.PropertyName != nil {
		building.PropertyName = *req.PropertyName
	}
	if req.Address != nil {
		building.Address = *req.Address
	}
	if req.ConstructionYear != nil {
		building.ConstructionYear = req.ConstructionYear
	}
	if req.FloorCount != nil {
		building.FloorCount = req.FloorCount
	}
	if req.BasementCount != nil {
		building.BasementCount = req.BasementCount
	}
	if req.FloorAreaM2 != nil {
		building.FloorAreaM2 = req.FloorAreaM2
	}
	if req.OtherStructures != nil {
		building.OtherStructures = *req.OtherStructures
	}
	building.Touch(p.UserID, time.Now())

	if err := h.store.UpdateBuilding(r.Context(), building); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONOK(w, buildingToResponse(building))
}

// Delete handles DELETE /v1/surveys/{surveyId}/buildings/{buildingId}.
func (h *BuildingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	buildingID := chi.URLParam(r, "buildingId")
	if surveyID == "" || buildingID == "" {
		BadRequest(w, "Survey id and building id are required")
		return
	}

	p := requestPrincipal(r)
	if _, err := h.guard.RequireSurvey(r.Context(), p, surveyID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.store.DeleteBuilding(r.Context(), surveyID, buildingID, p.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteNoContent(w)
}
