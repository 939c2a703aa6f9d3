package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

func (s *GORMStore) CreateHazardousWaste(ctx context.Context, hw *models.HazardousWaste) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.HazardousMaterial](tx, ctx, hw.HazardousMaterialID, models.ErrHazardousMaterialNotFound); err != nil {
			return err
		}
		if hw.WasteSpecifierID != nil {
			if err := refExists[models.WasteSpecifier](tx, ctx, *hw.WasteSpecifierID, models.ErrWasteSpecifierNotFound); err != nil {
				return err
			}
		}
		if err := createEntity(tx, ctx, hw); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, hw.SurveyID, hw.CreatorID, hw.CreatedAt)
	})
}

func (s *GORMStore) GetHazardousWaste(ctx context.Context, surveyID, id string) (*models.HazardousWaste, error) {
	return getScoped[models.HazardousWaste](s.db, ctx, surveyID, id, models.ErrHazardousWasteNotFound)
}

func (s *GORMStore) ListHazardousWastes(ctx context.Context, surveyID string) ([]*models.HazardousWaste, error) {
	return listBySurvey[models.HazardousWaste](s.db, ctx, surveyID)
}

func (s *GORMStore) UpdateHazardousWaste(ctx context.Context, hw *models.HazardousWaste) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.HazardousMaterial](tx, ctx, hw.HazardousMaterialID, models.ErrHazardousMaterialNotFound); err != nil {
			return err
		}
		if hw.WasteSpecifierID != nil {
			if err := refExists[models.WasteSpecifier](tx, ctx, *hw.WasteSpecifierID, models.ErrWasteSpecifierNotFound); err != nil {
				return err
			}
		}
		if err := saveEntity(tx, ctx, hw); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, hw.SurveyID, hw.ModifierID, hw.ModifiedAt)
	})
}

func (s *GORMStore) DeleteHazardousWaste(ctx context.Context, surveyID, id, modifierID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteScoped[models.HazardousWaste](tx, ctx, surveyID, id, models.ErrHazardousWasteNotFound); err != nil {
			return err
		}
		return touchNow(tx, ctx, surveyID, modifierID)
	})
}
