package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// Child-entity writes run in a single transaction together with the parent
// survey touch, so a request either persists the mutation and the survey's
// refreshed audit fields or nothing at all.

func (s *GORMStore) CreateBuilding(ctx context.Context, building *models.Building) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if building.BuildingTypeID != nil {
			if err := refExists[models.BuildingType](tx, ctx, *building.BuildingTypeID, models.ErrBuildingTypeNotFound); err != nil {
				return err
			}
		}
		if err := createEntity(tx, ctx, building); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, building.SurveyID, building.CreatorID, building.CreatedAt)
	})
}

func (s *GORMStore) GetBuilding(ctx context.Context, surveyID, id string) (*models.Building, error) {
	return getScoped[models.Building](s.db, ctx, surveyID, id, models.ErrBuildingNotFound)
}

func (s *GORMStore) ListBuildings(ctx context.Context, surveyID string) ([]*models.Building, error) {
	return listBySurvey[models.Building](s.db, ctx, surveyID)
}

func (s *GORMStore) UpdateBuilding(ctx context.Context, building *models.Building) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if building.BuildingTypeID != nil {
			if err := refExists[models.BuildingType](tx, ctx, *building.BuildingTypeID, models.ErrBuildingTypeNotFound); err != nil {
				return err
			}
		}
		if err := saveEntity(tx, ctx, building); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, building.SurveyID, building.ModifierID, building.ModifiedAt)
	})
}

func (s *GORMStore) DeleteBuilding(ctx context.Context, surveyID, id, modifierID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteScoped[models.Building](tx, ctx, surveyID, id, models.ErrBuildingNotFound); err != nil {
			return err
		}
		return touchNow(tx, ctx, surveyID, modifierID)
	})
}
