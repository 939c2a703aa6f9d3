package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
)

// MaterialRequest is the request body for creating a waste material or a
// hazardous material. Both catalogs carry the same shape: a name, the waste
// category they belong to, and an optional EWC specification code.
type MaterialRequest struct {
	Name                 string `json:"name" validate:"required"`
	WasteCategoryID      string `json:"waste_category_id" validate:"required"`
	EwcSpecificationCode string `json:"ewc_specification_code,omitempty"`
}

// UpdateMaterialRequest is the request body for updating a waste material or
// a hazardous material.
type UpdateMaterialRequest struct {
	Name                 *string `json:"name,omitempty"`
	WasteCategoryID      *string `json:"waste_category_id,omitempty"`
	EwcSpecificationCode *string `json:"ewc_specification_code,omitempty"`
}

// MaterialResponse is the wire representation of a waste or hazardous material.
type MaterialResponse struct {
	MetadataResponse
	Name                 string `json:"name"`
	WasteCategoryID      string `json:"waste_category_id"`
	EwcSpecificationCode string `json:"ewc_specification_code,omitempty"`
}

func wasteMaterialToResponse(wm *models.WasteMaterial) MaterialResponse {
	return MaterialResponse{
		MetadataResponse:     metadataResponse(&wm.Metadata),
		Name:                 wm.Name,
		WasteCategoryID:      wm.WasteCategoryID,
		EwcSpecificationCode: wm.EwcSpecificationCode,
	}
}

func hazardousMaterialToResponse(hm *models.HazardousMaterial) MaterialResponse {
	return MaterialResponse{
		MetadataResponse:     metadataResponse(&hm.Metadata),
		Name:                 hm.Name,
		WasteCategoryID:      hm.WasteCategoryID,
		EwcSpecificationCode: hm.EwcSpecificationCode,
	}
}

// CreateWasteMaterial handles POST /v1/waste-materials (admin only).
// The referenced waste category must exist.
func (h *CatalogHandler) CreateWasteMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionCreate) {
		return
	}

	var req MaterialRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	wm := &models.WasteMaterial{
		Metadata:             models.Metadata{CreatorID: requestPrincipal(r).UserID},
		Name:                 req.Name,
		WasteCategoryID:      req.WasteCategoryID,
		EwcSpecificationCode: req.EwcSpecificationCode,
	}
	if err := h.store.CreateWasteMaterial(r.Context(), wm); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONCreated(w, wasteMaterialToResponse(wm))
}

// ListWasteMaterials handles GET /v1/waste-materials.
func (h *CatalogHandler) ListWasteMaterials(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	materials, err := h.store.ListWasteMaterials(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]MaterialResponse, len(materials))
	for i, wm := range materials {
		response[i] = wasteMaterialToResponse(wm)
	}
	WriteJSONOK(w, response)
}

// GetWasteMaterial handles GET /v1/waste-materials/{wasteMaterialId}.
func (h *CatalogHandler) GetWasteMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	wm, err := h.store.GetWasteMaterial(r.Context(), chi.URLParam(r, "wasteMaterialId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteMaterialToResponse(wm))
}

// UpdateWasteMaterial handles PUT /v1/waste-materials/{wasteMaterialId} (admin only).
func (h *CatalogHandler) UpdateWasteMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionUpdate) {
		return
	}

	var req UpdateMaterialRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	wm, err := h.store.GetWasteMaterial(r.Context(), chi.URLParam(r, "wasteMaterialId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		wm.Name = *req.Name
	}
	if req.WasteCategoryID != nil {
		if *req.WasteCategoryID == "" {
			BadRequest(w, "Waste category id cannot be empty")
			return
		}
		wm.WasteCategoryID = *req.WasteCategoryID
	}
	if req.EwcSpecificationCode != nil {
		wm.EwcSpecificationCode = *req.EwcSpecificationCode
	}
	wm.Touch(requestPrincipal(r).UserID, time.Now())

	if err := h.store.UpdateWasteMaterial(r.Context(), wm); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteMaterialToResponse(wm))
}

// DeleteWasteMaterial handles DELETE /v1/waste-materials/{wasteMaterialId} (admin only).
// A material still referenced by waste entries is rejected with 409.
func (h *CatalogHandler) DeleteWasteMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionDelete) {
		return
	}

	if err := h.store.DeleteWasteMaterial(r.Context(), chi.URLParam(r, "wasteMaterialId")); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteNoContent(w)
}

// CreateHazardousMaterial handles POST /v1/hazardous-materials (admin only).
// The referenced waste category must exist.
func (h *CatalogHandler) CreateHazardousMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionCreate) {
		return
	}

	var req MaterialRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	hm := &models.HazardousMaterial{
		Metadata:             models.Metadata{CreatorID: requestPrincipal(r).UserID},
		Name:                 req.Name,
		WasteCategoryID:      req.WasteCategoryID,
		EwcSpecificationCode: req.EwcSpecificationCode,
	}
	if err := h.store.CreateHazardousMaterial(r.Context(), hm); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONCreated(w, hazardousMaterialToResponse(hm))
}

// ListHazardousMaterials handles GET /v1/hazardous-materials.
func (h *CatalogHandler) ListHazardousMaterials(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	materials, err := h.store.ListHazardousMaterials(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]MaterialResponse, len(materials))
	for i, hm := range materials {
		response[i] = hazardousMaterialToResponse(hm)
	}
	WriteJSONOK(w, response)
}

// GetHazardousMaterial handles GET /v1/hazardous-materials/{hazardousMaterialId}.
func (h *CatalogHandler) GetHazardousMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	hm, err := h.store.GetHazardousMaterial(r.Context(), chi.URLParam(r, "hazardousMaterialId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, hazardousMaterialToResponse(hm))
}

// UpdateHazardousMaterial handles PUT /v1/hazardous-materials/{hazardousMaterialId} (admin only).
func (h *CatalogHandler) UpdateHazardousMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionUpdate) {
		return
	}

	var req UpdateMaterialRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	hm, err := h.store.GetHazardousMaterial(r.Context(), chi.URLParam(r, "hazardousMaterialId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		hm.Name = *req.Name
	}
	if req.WasteCategoryID != nil {
		if *req.WasteCategoryID == "" {
			BadRequest(w, "Waste category id cannot be empty")
			return
		}
		hm.WasteCategoryID = *req.WasteCategoryID
	}
	if req.EwcSpecificationCode != nil {
		hm.EwcSpecificationCode = *req.EwcSpecificationCode
	}
	hm.Touch(requestPrincipal(r).UserID, time.Now())

	if err := h.store.UpdateHazardousMaterial(r.Context(), hm); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, hazardousMaterialToResponse(hm))
}

// DeleteHazardousMaterial handles DELETE /v1/hazardous-materials/{hazardousMaterialId} (admin only).
// A material still referenced by hazardous waste entries is rejected with 409.
func (h *CatalogHandler) DeleteHazardousMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionDelete) {
		return
	}

	if err := h.store.DeleteHazardousMaterial(r.Context(), chi.URLParam(r, "hazardousMaterialId")); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteNoContent(w)
}
