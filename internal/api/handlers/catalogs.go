package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// CatalogHandler handles the global material catalog endpoints.
//
// Catalogs are reference data shared by every tenant: reads are open to any
// authenticated principal, mutation is administrator-only, and entities still
// referenced by survey data cannot be deleted.
type CatalogHandler struct {
	store store.CatalogStore
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s store.CatalogStore) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// authorizeCatalog runs the catalog access policy for the request, writing
// the error response on denial. Returns false when the caller is denied.
func authorizeCatalog(w http.ResponseWriter, r *http.Request, action policy.Action) bool {
	if err := policy.AuthorizeCatalog(requestPrincipal(r), action); err != nil {
		writeDomainError(w, err)
		return false
	}
	return true
}

// CreateBuildingTypeRequest is the request body for POST /v1/building-types.
type CreateBuildingTypeRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code,omitempty"`
}

// UpdateBuildingTypeRequest is the request body for PUT /v1/building-types/{buildingTypeId}.
type UpdateBuildingTypeRequest struct {
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`
}

// BuildingTypeResponse is the wire representation of a building type.
type BuildingTypeResponse struct {
	MetadataResponse
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

func buildingTypeToResponse(bt *models.BuildingType) BuildingTypeResponse {
	return BuildingTypeResponse{
		MetadataResponse: metadataResponse(&bt.Metadata),
		Name:             bt.Name,
		Code:             bt.Code,
	}
}

// CreateBuildingType handles POST /v1/building-types (admin only).
func (h *CatalogHandler) CreateBuildingType(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionCreate) {
		return
	}

	var req CreateBuildingTypeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	bt := &models.BuildingType{
		Metadata: models.Metadata{CreatorID: requestPrincipal(r).UserID},
		Name:     req.Name,
		Code:     req.Code,
	}
	if err := h.store.CreateBuildingType(r.Context(), bt); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONCreated(w, buildingTypeToResponse(bt))
}

// ListBuildingTypes handles GET /v1/building-types.
func (h *CatalogHandler) ListBuildingTypes(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	types, err := h.store.ListBuildingTypes(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]BuildingTypeResponse, len(types))
	for i, bt := range types {
		response[i] = buildingTypeToResponse(bt)
	}
	WriteJSONOK(w, response)
}

// GetBuildingType handles GET /v1/building-types/{buildingTypeId}.
func (h *CatalogHandler) GetBuildingType(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	bt, err := h.store.GetBuildingType(r.Context(), chi.URLParam(r, "buildingTypeId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, buildingTypeToResponse(bt))
}

// UpdateBuildingType handles PUT /v1/building-types/{buildingTypeId} (admin only).
func (h *CatalogHandler) UpdateBuildingType(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionUpdate) {
		return
	}

	var req UpdateBuildingTypeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	bt, err := h.store.GetBuildingType(r.Context(), chi.URLParam(r, "buildingTypeId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		bt.Name = *req.Name
	}
	if req.Code != nil {
		bt.Code = *req.Code
	}
	bt.Touch(requestPrincipal(r).UserID, time.Now())

	if err := h.store.UpdateBuildingType(r.Context(), bt); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, buildingTypeToResponse(bt))
}

// DeleteBuildingType handles DELETE /v1/building-types/{buildingTypeId} (admin only).
// A type still referenced by buildings is rejected with 409.
func (h *CatalogHandler) DeleteBuildingType(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionDelete) {
		return
	}

	if err := h.store.DeleteBuildingType(r.Context(), chi.URLParam(r, "buildingTypeId")); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteNoContent(w)
}

// CreateWasteCategoryRequest is the request body for POST /v1/waste-categories.
type CreateWasteCategoryRequest struct {
	Name    string `json:"name" validate:"required"`
	EwcCode string `json:"ewc_code,omitempty"`
}

// UpdateWasteCategoryRequest is the request body for PUT /v1/waste-categories/{wasteCategoryId}.
type UpdateWasteCategoryRequest struct {
	Name    *string `json:"name,omitempty"`
	EwcCode *string `json:"ewc_code,omitempty"`
}

// WasteCategoryResponse is the wire representation of a waste category.
type WasteCategoryResponse struct {
	MetadataResponse
	Name    string `json:"name"`
	EwcCode string `json:"ewc_code,omitempty"`
}

func wasteCategoryToResponse(wc *models.WasteCategory) WasteCategoryResponse {
	return WasteCategoryResponse{
		MetadataResponse: metadataResponse(&wc.Metadata),
		Name:             wc.Name,
		EwcCode:          wc.EwcCode,
	}
}

// CreateWasteCategory handles POST /v1/waste-categories (admin only).
func (h *CatalogHandler) CreateWasteCategory(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionCreate) {
		return
	}

	var req CreateWasteCategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	wc := &models.WasteCategory{
		Metadata: models.Metadata{CreatorID: requestPrincipal(r).UserID},
		Name:     req.Name,
		EwcCode:  req.EwcCode,
	}
	if err := h.store.CreateWasteCategory(r.Context(), wc); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONCreated(w, wasteCategoryToResponse(wc))
}

// ListWasteCategories handles GET /v1/waste-categories.
func (h *CatalogHandler) ListWasteCategories(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	categories, err := h.store.ListWasteCategories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]WasteCategoryResponse, len(categories))
	for i, wc := range categories {
		response[i] = wasteCategoryToResponse(wc)
	}
	WriteJSONOK(w, response)
}

// GetWasteCategory handles GET /v1/waste-categories/{wasteCategoryId}.
func (h *CatalogHandler) GetWasteCategory(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	wc, err := h.store.GetWasteCategory(r.Context(), chi.URLParam(r, "wasteCategoryId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteCategoryToResponse(wc))
}

// UpdateWasteCategory handles PUT /v1/waste-categories/{wasteCategoryId} (admin only).
func (h *CatalogHandler) UpdateWasteCategory(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionUpdate) {
		return
	}

	var req UpdateWasteCategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	wc, err := h.store.GetWasteCategory(r.Context(), chi.URLParam(r, "wasteCategoryId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		wc.Name = *req.Name
	}
	if req.EwcCode != nil {
		wc.EwcCode = *req.EwcCode
	}
	wc.Touch(requestPrincipal(r).UserID, time.Now())

	if err := h.store.UpdateWasteCategory(r.Context(), wc); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteCategoryToResponse(wc))
}

// DeleteWasteCategory handles DELETE /v1/waste-categories/{wasteCategoryId} (admin only).
// A category still referenced by waste or hazardous materials is rejected with 409.
func (h *CatalogHandler) DeleteWasteCategory(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionDelete) {
		return
	}

	if err := h.store.DeleteWasteCategory(r.Context(), chi.URLParam(r, "wasteCategoryId")); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteNoContent(w)
}
