package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

func (s *GORMStore) CreateSurveyor(ctx context.Context, surveyor *models.Surveyor) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := createEntity(tx, ctx, surveyor); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, surveyor.SurveyID, surveyor.CreatorID, surveyor.CreatedAt)
	})
}

func (s *GORMStore) GetSurveyor(ctx context.Context, surveyID, id string) (*models.Surveyor, error) {
	return getScoped[models.Surveyor](s.db, ctx, surveyID, id, models.ErrSurveyorNotFound)
}

func (s *GORMStore) ListSurveyors(ctx context.Context, surveyID string) ([]*models.Surveyor, error) {
	return listBySurvey[models.Surveyor](s.db, ctx, surveyID)
}

func (s *GORMStore) UpdateSurveyor(ctx context.Context, surveyor *models.Surveyor) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := saveEntity(tx, ctx, surveyor); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, surveyor.SurveyID, surveyor.ModifierID, surveyor.ModifiedAt)
	})
}

func (s *GORMStore) DeleteSurveyor(ctx context.Context, surveyID, id, modifierID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteScoped[models.Surveyor](tx, ctx, surveyID, id, models.ErrSurveyorNotFound); err != nil {
			return err
		}
		return touchNow(tx, ctx, surveyID, modifierID)
	})
}
