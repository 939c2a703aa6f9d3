package models

import "errors"

// Common errors for survey and catalog operations.
var (
	// Authorization errors
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")

	// Survey errors
	ErrSurveyNotFound    = errors.New("survey not found")
	ErrSurveyHasChildren = errors.New("survey still has dependent entities")

	// Survey-scoped entity errors
	ErrBuildingNotFound         = errors.New("building not found")
	ErrOwnerInformationNotFound = errors.New("owner information not found")
	ErrSurveyorNotFound         = errors.New("surveyor not found")
	ErrAttachmentNotFound       = errors.New("attachment not found")
	ErrReusableNotFound         = errors.New("reusable not found")
	ErrWasteNotFound            = errors.New("waste not found")
	ErrHazardousWasteNotFound   = errors.New("hazardous waste not found")

	// Catalog errors
	ErrBuildingTypeNotFound      = errors.New("building type not found")
	ErrReusableMaterialNotFound  = errors.New("reusable material not found")
	ErrWasteCategoryNotFound     = errors.New("waste category not found")
	ErrWasteMaterialNotFound     = errors.New("waste material not found")
	ErrHazardousMaterialNotFound = errors.New("hazardous material not found")
	ErrWasteSpecifierNotFound    = errors.New("waste specifier not found")
	ErrWasteUsageNotFound        = errors.New("waste usage not found")

	// ErrCatalogInUse rejects deletion of a catalog entity that is still
	// referenced by survey-scoped entities or other catalog entities.
	ErrCatalogInUse = errors.New("catalog entity is still referenced")
)

// notFoundErrors lists every sentinel that maps to a missing resource,
// including dangling catalog references discovered at write time.
var notFoundErrors = []error{
	ErrSurveyNotFound,
	ErrBuildingNotFound,
	ErrOwnerInformationNotFound,
	ErrSurveyorNotFound,
	ErrAttachmentNotFound,
	ErrReusableNotFound,
	ErrWasteNotFound,
	ErrHazardousWasteNotFound,
	ErrBuildingTypeNotFound,
	ErrReusableMaterialNotFound,
	ErrWasteCategoryNotFound,
	ErrWasteMaterialNotFound,
	ErrHazardousMaterialNotFound,
	ErrWasteSpecifierNotFound,
	ErrWasteUsageNotFound,
}

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
