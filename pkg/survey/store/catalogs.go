package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// Catalog entities are global reference data. Deletion is a referential
// integrity policy enforced here rather than by database cascades: a catalog
// entity still referenced by survey entities (or by other catalog entities)
// is rejected with ErrCatalogInUse.

// ============================================
// BUILDING TYPES
// ============================================

func (s *GORMStore) CreateBuildingType(ctx context.Context, bt *models.BuildingType) error {
	return createEntity(s.db, ctx, bt)
}

func (s *GORMStore) GetBuildingType(ctx context.Context, id string) (*models.BuildingType, error) {
	return getByID[models.BuildingType](s.db, ctx, id, models.ErrBuildingTypeNotFound)
}

func (s *GORMStore) ListBuildingTypes(ctx context.Context) ([]*models.BuildingType, error) {
	return listAll[models.BuildingType](s.db, ctx)
}

func (s *GORMStore) UpdateBuildingType(ctx context.Context, bt *models.BuildingType) error {
	return saveEntity(s.db, ctx, bt)
}

func (s *GORMStore) DeleteBuildingType(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := countWhere[models.Building](tx, ctx, "building_type_id = ?", id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrCatalogInUse
		}
		return deleteCatalog[models.BuildingType](tx, ctx, id, models.ErrBuildingTypeNotFound)
	})
}

// ============================================
// REUSABLE MATERIALS
// ============================================

func (s *GORMStore) CreateReusableMaterial(ctx context.Context, rm *models.ReusableMaterial) error {
	return createEntity(s.db, ctx, rm)
}

func (s *GORMStore) GetReusableMaterial(ctx context.Context, id string) (*models.ReusableMaterial, error) {
	return getByID[models.ReusableMaterial](s.db, ctx, id, models.ErrReusableMaterialNotFound)
}

func (s *GORMStore) ListReusableMaterials(ctx context.Context) ([]*models.ReusableMaterial, error) {
	return listAll[models.ReusableMaterial](s.db, ctx)
}

func (s *GORMStore) UpdateReusableMaterial(ctx context.Context, rm *models.ReusableMaterial) error {
	return saveEntity(s.db, ctx, rm)
}

func (s *GORMStore) DeleteReusableMaterial(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := countWhere[models.Reusable](tx, ctx, "reusable_material_id = ?", id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrCatalogInUse
		}
		return deleteCatalog[models.ReusableMaterial](tx, ctx, id, models.ErrReusableMaterialNotFound)
	})
}

// ============================================
// WASTE CATEGORIES
// ============================================

func (s *GORMStore) CreateWasteCategory(ctx context.Context, wc *models.WasteCategory) error {
	return createEntity(s.db, ctx, wc)
}

func (s *GORMStore) GetWasteCategory(ctx context.Context, id string) (*models.WasteCategory, error) {
	return getByID[models.WasteCategory](s.db, ctx, id, models.ErrWasteCategoryNotFound)
}

func (s *GORMStore) ListWasteCategories(ctx context.Context) ([]*models.WasteCategory, error) {
	return listAll[models.WasteCategory](s.db, ctx)
}

func (s *GORMStore) UpdateWasteCategory(ctx context.Context, wc *models.WasteCategory) error {
	return saveEntity(s.db, ctx, wc)
}

func (s *GORMStore) DeleteWasteCategory(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		materialRefs, err := countWhere[models.WasteMaterial](tx, ctx, "waste_category_id = ?", id)
		if err != nil {
			return err
		}
		hazardousRefs, err := countWhere[models.HazardousMaterial](tx, ctx, "waste_category_id = ?", id)
		if err != nil {
			return err
		}
		if materialRefs+hazardousRefs > 0 {
			return models.ErrCatalogInUse
		}
		return deleteCatalog[models.WasteCategory](tx, ctx, id, models.ErrWasteCategoryNotFound)
	})
}

// ============================================
// WASTE MATERIALS
// ============================================

func (s *GORMStore) CreateWasteMaterial(ctx context.Context, wm *models.WasteMaterial) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.WasteCategory](tx, ctx, wm.WasteCategoryID, models.ErrWasteCategoryNotFound); err != nil {
			return err
		}
		return createEntity(tx, ctx, wm)
	})
}

func (s *GORMStore) GetWasteMaterial(ctx context.Context, id string) (*models.WasteMaterial, error) {
	return getByID[models.WasteMaterial](s.db, ctx, id, models.ErrWasteMaterialNotFound)
}

func (s *GORMStore) ListWasteMaterials(ctx context.Context) ([]*models.WasteMaterial, error) {
	return listAll[models.WasteMaterial](s.db, ctx)
}

func (s *GORMStore) UpdateWasteMaterial(ctx context.Context, wm *models.WasteMaterial) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.WasteCategory](tx, ctx, wm.WasteCategoryID, models.ErrWasteCategoryNotFound); err != nil {
			return err
		}
		return saveEntity(tx, ctx, wm)
	})
}

func (s *GORMStore) DeleteWasteMaterial(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := countWhere[models.Waste](tx, ctx, "waste_material_id = ?", id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrCatalogInUse
		}
		return deleteCatalog[models.WasteMaterial](tx, ctx, id, models.ErrWasteMaterialNotFound)
	})
}

// ============================================
// HAZARDOUS MATERIALS
// ============================================

func (s *GORMStore) CreateHazardousMaterial(ctx context.Context, hm *models.HazardousMaterial) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.WasteCategory](tx, ctx, hm.WasteCategoryID, models.ErrWasteCategoryNotFound); err != nil {
			return err
		}
		return createEntity(tx, ctx, hm)
	})
}

func (s *GORMStore) GetHazardousMaterial(ctx context.Context, id string) (*models.HazardousMaterial, error) {
	return getByID[models.HazardousMaterial](s.db, ctx, id, models.ErrHazardousMaterialNotFound)
}

func (s *GORMStore) ListHazardousMaterials(ctx context.Context) ([]*models.HazardousMaterial, error) {
	return listAll[models.HazardousMaterial](s.db, ctx)
}

func (s *GORMStore) UpdateHazardousMaterial(ctx context.Context, hm *models.HazardousMaterial) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.WasteCategory](tx, ctx, hm.WasteCategoryID, models.ErrWasteCategoryNotFound); err != nil {
			return err
		}
		return saveEntity(tx, ctx, hm)
	})
}

func (s *GORMStore) DeleteHazardousMaterial(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := countWhere[models.HazardousWaste](tx, ctx, "hazardous_material_id = ?", id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrCatalogInUse
		}
		return deleteCatalog[models.HazardousMaterial](tx, ctx, id, models.ErrHazardousMaterialNotFound)
	})
}

// ============================================
// WASTE SPECIFIERS
// ============================================

func (s *GORMStore) CreateWasteSpecifier(ctx context.Context, ws *models.WasteSpecifier) error {
	return createEntity(s.db, ctx, ws)
}

func (s *GORMStore) GetWasteSpecifier(ctx context.Context, id string) (*models.WasteSpecifier, error) {
	return getByID[models.WasteSpecifier](s.db, ctx, id, models.ErrWasteSpecifierNotFound)
}

func (s *GORMStore) ListWasteSpecifiers(ctx context.Context) ([]*models.WasteSpecifier, error) {
	return listAll[models.WasteSpecifier](s.db, ctx)
}

func (s *GORMStore) UpdateWasteSpecifier(ctx context.Context, ws *models.WasteSpecifier) error {
	return saveEntity(s.db, ctx, ws)
}

func (s *GORMStore) DeleteWasteSpecifier(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := countWhere[models.HazardousWaste](tx, ctx, "waste_specifier_id = ?", id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrCatalogInUse
		}
		return deleteCatalog[models.WasteSpecifier](tx, ctx, id, models.ErrWasteSpecifierNotFound)
	})
}

// ============================================
// WASTE USAGES
// ============================================

func (s *GORMStore) CreateWasteUsage(ctx context.Context, wu *models.WasteUsage) error {
	return createEntity(s.db, ctx, wu)
}

func (s *GORMStore) GetWasteUsage(ctx context.Context, id string) (*models.WasteUsage, error) {
	return getByID[models.WasteUsage](s.db, ctx, id, models.ErrWasteUsageNotFound)
}

func (s *GORMStore) ListWasteUsages(ctx context.Context) ([]*models.WasteUsage, error) {
	return listAll[models.WasteUsage](s.db, ctx)
}

func (s *GORMStore) UpdateWasteUsage(ctx context.Context, wu *models.WasteUsage) error {
	return saveEntity(s.db, ctx, wu)
}

func (s *GORMStore) DeleteWasteUsage(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := countWhere[models.Waste](tx, ctx, "waste_usage_id = ?", id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return models.ErrCatalogInUse
		}
		return deleteCatalog[models.WasteUsage](tx, ctx, id, models.ErrWasteUsageNotFound)
	})
}

// deleteCatalog deletes a catalog row by id, after the caller has verified
// no references remain. Returns notFoundErr if no row matched.
func deleteCatalog[T any](db *gorm.DB, ctx context.Context, id string, notFoundErr error) error {
	var zero T
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&zero)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundErr
	}
	return nil
}
