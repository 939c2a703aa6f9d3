package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

func (s *GORMStore) CreateReusable(ctx context.Context, reusable *models.Reusable) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.ReusableMaterial](tx, ctx, reusable.ReusableMaterialID, models.ErrReusableMaterialNotFound); err != nil {
			return err
		}
		if err := createEntity(tx, ctx, reusable); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, reusable.SurveyID, reusable.CreatorID, reusable.CreatedAt)
	})
}

func (s *GORMStore) GetReusable(ctx context.Context, surveyID, id string) (*models.Reusable, error) {
	return getScoped[models.Reusable](s.db, ctx, surveyID, id, models.ErrReusableNotFound)
}

func (s *GORMStore) ListReusables(ctx context.Context, surveyID string) ([]*models.Reusable, error) {
	return listBySurvey[models.Reusable](s.db, ctx, surveyID)
}

func (s *GORMStore) UpdateReusable(ctx context.Context, reusable *models.Reusable) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.ReusableMaterial](tx, ctx, reusable.ReusableMaterialID, models.ErrReusableMaterialNotFound); err != nil {
			return err
		}
		if err := saveEntity(tx, ctx, reusable); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, reusable.SurveyID, reusable.ModifierID, reusable.ModifiedAt)
	})
}

func (s *GORMStore) DeleteReusable(ctx context.Context, surveyID, id, modifierID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteScoped[models.Reusable](tx, ctx, surveyID, id, models.ErrReusableNotFound); err != nil {
			return err
		}
		return touchNow(tx, ctx, surveyID, modifierID)
	})
}
