package store

import (
	"context"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// SurveyStore persists the root survey aggregate.
type SurveyStore interface {
	CreateSurvey(ctx context.Context, survey *models.Survey) error
	GetSurvey(ctx context.Context, id string) (*models.Survey, error)
	ListSurveys(ctx context.Context, filter SurveyFilter) ([]*models.Survey, error)
	UpdateSurvey(ctx context.Context, survey *models.Survey) error
	DeleteSurvey(ctx context.Context, id string) error

	// TouchSurvey updates only the survey's modifier id and modified-at so
	// the survey reflects the freshest child change.
	TouchSurvey(ctx context.Context, surveyID, modifierID string) error
}

// BuildingStore persists buildings under a survey.
type BuildingStore interface {
	CreateBuilding(ctx context.Context, building *models.Building) error
	GetBuilding(ctx context.Context, surveyID, id string) (*models.Building, error)
	ListBuildings(ctx context.Context, surveyID string) ([]*models.Building, error)
	UpdateBuilding(ctx context.Context, building *models.Building) error
	DeleteBuilding(ctx context.Context, surveyID, id, modifierID string) error
}

// OwnerInformationStore persists owner records under a survey.
type OwnerInformationStore interface {
	CreateOwnerInformation(ctx context.Context, owner *models.OwnerInformation) error
	GetOwnerInformation(ctx context.Context, surveyID, id string) (*models.OwnerInformation, error)
	ListOwnerInformation(ctx context.Context, surveyID string) ([]*models.OwnerInformation, error)
	UpdateOwnerInformation(ctx context.Context, owner *models.OwnerInformation) error
	DeleteOwnerInformation(ctx context.Context, surveyID, id, modifierID string) error
}

// SurveyorStore persists surveyor records under a survey.
type SurveyorStore interface {
	CreateSurveyor(ctx context.Context, surveyor *models.Surveyor) error
	GetSurveyor(ctx context.Context, surveyID, id string) (*models.Surveyor, error)
	ListSurveyors(ctx context.Context, surveyID string) ([]*models.Surveyor, error)
	UpdateSurveyor(ctx context.Context, surveyor *models.Surveyor) error
	DeleteSurveyor(ctx context.Context, surveyID, id, modifierID string) error
}

// AttachmentStore persists attachments under a survey.
type AttachmentStore interface {
	CreateAttachment(ctx context.Context, attachment *models.Attachment) error
	GetAttachment(ctx context.Context, surveyID, id string) (*models.Attachment, error)
	ListAttachments(ctx context.Context, surveyID string) ([]*models.Attachment, error)
	UpdateAttachment(ctx context.Context, attachment *models.Attachment) error
	DeleteAttachment(ctx context.Context, surveyID, id, modifierID string) error
}

// ReusableStore persists reusable component records under a survey.
type ReusableStore interface {
	CreateReusable(ctx context.Context, reusable *models.Reusable) error
	GetReusable(ctx context.Context, surveyID, id string) (*models.Reusable, error)
	ListReusables(ctx context.Context, surveyID string) ([]*models.Reusable, error)
	UpdateReusable(ctx context.Context, reusable *models.Reusable) error
	DeleteReusable(ctx context.Context, surveyID, id, modifierID string) error
}

// WasteStore persists waste records under a survey.
type WasteStore interface {
	CreateWaste(ctx context.Context, waste *models.Waste) error
	GetWaste(ctx context.Context, surveyID, id string) (*models.Waste, error)
	ListWastes(ctx context.Context, surveyID string) ([]*models.Waste, error)
	UpdateWaste(ctx context.Context, waste *models.Waste) error
	DeleteWaste(ctx context.Context, surveyID, id, modifierID string) error
}

// HazardousWasteStore persists hazardous waste records under a survey.
type HazardousWasteStore interface {
	CreateHazardousWaste(ctx context.Context, hw *models.HazardousWaste) error
	GetHazardousWaste(ctx context.Context, surveyID, id string) (*models.HazardousWaste, error)
	ListHazardousWastes(ctx context.Context, surveyID string) ([]*models.HazardousWaste, error)
	UpdateHazardousWaste(ctx context.Context, hw *models.HazardousWaste) error
	DeleteHazardousWaste(ctx context.Context, surveyID, id, modifierID string) error
}

// CatalogStore persists the global, administrator-managed reference data.
type CatalogStore interface {
	CreateBuildingType(ctx context.Context, bt *models.BuildingType) error
	GetBuildingType(ctx context.Context, id string) (*models.BuildingType, error)
	ListBuildingTypes(ctx context.Context) ([]*models.BuildingType, error)
	UpdateBuildingType(ctx context.Context, bt *models.BuildingType) error
	DeleteBuildingType(ctx context.Context, id string) error

	CreateReusableMaterial(ctx context.Context, rm *models.ReusableMaterial) error
	GetReusableMaterial(ctx context.Context, id string) (*models.ReusableMaterial, error)
	ListReusableMaterials(ctx context.Context) ([]*models.ReusableMaterial, error)
	UpdateReusableMaterial(ctx context.Context, rm *models.ReusableMaterial) error
	DeleteReusableMaterial(ctx context.Context, id string) error

	CreateWasteCategory(ctx context.Context, wc *models.WasteCategory) error
	GetWasteCategory(ctx context.Context, id string) (*models.WasteCategory, error)
	ListWasteCategories(ctx context.Context) ([]*models.WasteCategory, error)
	UpdateWasteCategory(ctx context.Context, wc *models.WasteCategory) error
	DeleteWasteCategory(ctx context.Context, id string) error

	CreateWasteMaterial(ctx context.Context, wm *models.WasteMaterial) error
	GetWasteMaterial(ctx context.Context, id string) (*models.WasteMaterial, error)
	ListWasteMaterials(ctx context.Context) ([]*models.WasteMaterial, error)
	UpdateWasteMaterial(ctx context.Context, wm *models.WasteMaterial) error
	DeleteWasteMaterial(ctx context.Context, id string) error

	CreateHazardousMaterial(ctx context.Context, hm *models.HazardousMaterial) error
	GetHazardousMaterial(ctx context.Context, id string) (*models.HazardousMaterial, error)
	ListHazardousMaterials(ctx context.Context) ([]*models.HazardousMaterial, error)
	UpdateHazardousMaterial(ctx context.Context, hm *models.HazardousMaterial) error
	DeleteHazardousMaterial(ctx context.Context, id string) error

	CreateWasteSpecifier(ctx context.Context, ws *models.WasteSpecifier) error
	GetWasteSpecifier(ctx context.Context, id string) (*models.WasteSpecifier, error)
	ListWasteSpecifiers(ctx context.Context) ([]*models.WasteSpecifier, error)
	UpdateWasteSpecifier(ctx context.Context, ws *models.WasteSpecifier) error
	DeleteWasteSpecifier(ctx context.Context, id string) error

	CreateWasteUsage(ctx context.Context, wu *models.WasteUsage) error
	GetWasteUsage(ctx context.Context, id string) (*models.WasteUsage, error)
	ListWasteUsages(ctx context.Context) ([]*models.WasteUsage, error)
	UpdateWasteUsage(ctx context.Context, wu *models.WasteUsage) error
	DeleteWasteUsage(ctx context.Context, id string) error
}

// Store is the full persistence contract of the survey backend.
type Store interface {
	SurveyStore
	BuildingStore
	OwnerInformationStore
	SurveyorStore
	AttachmentStore
	ReusableStore
	WasteStore
	HazardousWasteStore
	CatalogStore

	// Ping verifies database connectivity for health probes.
	Ping() error
}

// Compile-time check that GORMStore satisfies the full contract.
var _ Store = (*GORMStore)(nil)
