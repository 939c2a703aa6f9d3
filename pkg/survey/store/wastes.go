package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

func (s *GORMStore) CreateWaste(ctx context.Context, waste *models.Waste) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.WasteMaterial](tx, ctx, waste.WasteMaterialID, models.ErrWasteMaterialNotFound); err != nil {
			return err
		}
		if err := refExists[models.WasteUsage](tx, ctx, waste.WasteUsageID, models.ErrWasteUsageNotFound); err != nil {
			return err
		}
		if err := createEntity(tx, ctx, waste); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, waste.SurveyID, waste.CreatorID, waste.CreatedAt)
	})
}

func (s *GORMStore) GetWaste(ctx context.Context, surveyID, id string) (*models.Waste, error) {
	return getScoped[models.Waste](s.db, ctx, surveyID, id, models.ErrWasteNotFound)
}

func (s *GORMStore) ListWastes(ctx context.Context, surveyID string) ([]*models.Waste, error) {
	return listBySurvey[models.Waste](s.db, ctx, surveyID)
}

func (s *GORMStore) UpdateWaste(ctx context.Context, waste *models.Waste) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.WasteMaterial](tx, ctx, waste.WasteMaterialID, models.ErrWasteMaterialNotFound); err != nil {
			return err
		}
		if err := refExists[models.WasteUsage](tx, ctx, waste.WasteUsageID, models.ErrWasteUsageNotFound); err != nil {
			return err
		}
		if err := saveEntity(tx, ctx, waste); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, waste.SurveyID, waste.ModifierID, waste.ModifiedAt)
	})
}

func (s *GORMStore) DeleteWaste(ctx context.Context, surveyID, id, modifierID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteScoped[models.Waste](tx, ctx, surveyID, id, models.ErrWasteNotFound); err != nil {
			return err
		}
		return touchNow(tx, ctx, surveyID, modifierID)
	})
}
