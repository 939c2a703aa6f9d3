package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/policy"
)

// NamedCatalogRequest is the request body for creating a reusable material,
// waste specifier or waste usage. These catalogs carry only a name.
type NamedCatalogRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateNamedCatalogRequest is the request body for updating a name-only
// catalog entity.
type UpdateNamedCatalogRequest struct {
	Name *string `json:"name,omitempty"`
}

// NamedCatalogResponse is the wire representation of a name-only catalog entity.
type NamedCatalogResponse struct {
	MetadataResponse
	Name string `json:"name"`
}

func reusableMaterialToResponse(rm *models.ReusableMaterial) NamedCatalogResponse {
	return NamedCatalogResponse{MetadataResponse: metadataResponse(&rm.Metadata), Name: rm.Name}
}

func wasteSpecifierToResponse(ws *models.WasteSpecifier) NamedCatalogResponse {
	return NamedCatalogResponse{MetadataResponse: metadataResponse(&ws.Metadata), Name: ws.Name}
}

func wasteUsageToResponse(wu *models.WasteUsage) NamedCatalogResponse {
	return NamedCatalogResponse{MetadataResponse: metadataResponse(&wu.Metadata), Name: wu.Name}
}

// CreateReusableMaterial handles POST /v1/reusable-materials (admin only).
func (h *CatalogHandler) CreateReusableMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionCreate) {
		return
	}

	var req NamedCatalogRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	rm := &models.ReusableMaterial{
		Metadata: models.Metadata{CreatorID: requestPrincipal(r).UserID},
		Name:     req.Name,
	}
	if err := h.store.CreateReusableMaterial(r.Context(), rm); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONCreated(w, reusableMaterialToResponse(rm))
}

// ListReusableMaterials handles GET /v1/reusable-materials.
func (h *CatalogHandler) ListReusableMaterials(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	materials, err := h.store.ListReusableMaterials(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]NamedCatalogResponse, len(materials))
	for i, rm := range materials {
		response[i] = reusableMaterialToResponse(rm)
	}
	WriteJSONOK(w, response)
}

// GetReusableMaterial handles GET /v1/reusable-materials/{reusableMaterialId}.
func (h *CatalogHandler) GetReusableMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	rm, err := h.store.GetReusableMaterial(r.Context(), chi.URLParam(r, "reusableMaterialId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, reusableMaterialToResponse(rm))
}

// UpdateReusableMaterial handles PUT /v1/reusable-materials/{reusableMaterialId} (admin only).
func (h *CatalogHandler) UpdateReusableMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionUpdate) {
		return
	}

	var req UpdateNamedCatalogRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	rm, err := h.store.GetReusableMaterial(r.Context(), chi.URLParam(r, "reusableMaterialId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		rm.Name = *req.Name
	}
	rm.Touch(requestPrincipal(r).UserID, time.Now())

	if err := h.store.UpdateReusableMaterial(r.Context(), rm); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, reusableMaterialToResponse(rm))
}

// DeleteReusableMaterial handles DELETE /v1/reusable-materials/{reusableMaterialId} (admin only).
// A material still referenced by reusable components is rejected with 409.
func (h *CatalogHandler) DeleteReusableMaterial(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionDelete) {
		return
	}

	if err := h.store.DeleteReusableMaterial(r.Context(), chi.URLParam(r, "reusableMaterialId")); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteNoContent(w)
}

// CreateWasteSpecifier handles POST /v1/waste-specifiers (admin only).
func (h *CatalogHandler) CreateWasteSpecifier(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionCreate) {
		return
	}

	var req NamedCatalogRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	ws := &models.WasteSpecifier{
		Metadata: models.Metadata{CreatorID: requestPrincipal(r).UserID},
		Name:     req.Name,
	}
	if err := h.store.CreateWasteSpecifier(r.Context(), ws); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONCreated(w, wasteSpecifierToResponse(ws))
}

// ListWasteSpecifiers handles GET /v1/waste-specifiers.
func (h *CatalogHandler) ListWasteSpecifiers(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	specifiers, err := h.store.ListWasteSpecifiers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]NamedCatalogResponse, len(specifiers))
	for i, ws := range specifiers {
		response[i] = wasteSpecifierToResponse(ws)
	}
	WriteJSONOK(w, response)
}

// GetWasteSpecifier handles GET /v1/waste-specifiers/{wasteSpecifierId}.
func (h *CatalogHandler) GetWasteSpecifier(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	ws, err := h.store.GetWasteSpecifier(r.Context(), chi.URLParam(r, "wasteSpecifierId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteSpecifierToResponse(ws))
}

// UpdateWasteSpecifier handles PUT /v1/waste-specifiers/{wasteSpecifierId} (admin only).
func (h *CatalogHandler) UpdateWasteSpecifier(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionUpdate) {
		return
	}

	var req UpdateNamedCatalogRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	ws, err := h.store.GetWasteSpecifier(r.Context(), chi.URLParam(r, "wasteSpecifierId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		ws.Name = *req.Name
	}
	ws.Touch(requestPrincipal(r).UserID, time.Now())

	if err := h.store.UpdateWasteSpecifier(r.Context(), ws); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteSpecifierToResponse(ws))
}

// DeleteWasteSpecifier handles DELETE /v1/waste-specifiers/{wasteSpecifierId} (admin only).
// A specifier still referenced by hazardous waste entries is rejected with 409.
func (h *CatalogHandler) DeleteWasteSpecifier(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionDelete) {
		return
	}

	if err := h.store.DeleteWasteSpecifier(r.Context(), chi.URLParam(r, "wasteSpecifierId")); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteNoContent(w)
}

// CreateWasteUsage handles POST /v1/waste-usages (admin only).
func (h *CatalogHandler) CreateWasteUsage(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionCreate) {
		return
	}

	var req NamedCatalogRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	wu := &models.WasteUsage{
		Metadata: models.Metadata{CreatorID: requestPrincipal(r).UserID},
		Name:     req.Name,
	}
	if err := h.store.CreateWasteUsage(r.Context(), wu); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONCreated(w, wasteUsageToResponse(wu))
}

// ListWasteUsages handles GET /v1/waste-usages.
func (h *CatalogHandler) ListWasteUsages(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	usages, err := h.store.ListWasteUsages(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := make([]NamedCatalogResponse, len(usages))
	for i, wu := range usages {
		response[i] = wasteUsageToResponse(wu)
	}
	WriteJSONOK(w, response)
}

// GetWasteUsage handles GET /v1/waste-usages/{wasteUsageId}.
func (h *CatalogHandler) GetWasteUsage(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionRead) {
		return
	}

	wu, err := h.store.GetWasteUsage(r.Context(), chi.URLParam(r, "wasteUsageId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteUsageToResponse(wu))
}

// UpdateWasteUsage handles PUT /v1/waste-usages/{wasteUsageId} (admin only).
func (h *CatalogHandler) UpdateWasteUsage(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionUpdate) {
		return
	}

	var req UpdateNamedCatalogRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	wu, err := h.store.GetWasteUsage(r.Context(), chi.URLParam(r, "wasteUsageId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(w, "Name cannot be empty")
			return
		}
		wu.Name = *req.Name
	}
	wu.Touch(requestPrincipal(r).UserID, time.Now())

	if err := h.store.UpdateWasteUsage(r.Context(), wu); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteJSONOK(w, wasteUsageToResponse(wu))
}

// DeleteWasteUsage handles DELETE /v1/waste-usages/{wasteUsageId} (admin only).
// A usage still referenced by waste entries is rejected with 409.
func (h *CatalogHandler) DeleteWasteUsage(w http.ResponseWriter, r *http.Request) {
	if !authorizeCatalog(w, r, policy.ActionDelete) {
		return
	}

	if err := h.store.DeleteWasteUsage(r.Context(), chi.URLParam(r, "wasteUsageId")); err != nil {
		writeDomainError(w, err)
		return
	}
	WriteNoContent(w)
}
