package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

func (s *GORMStore) CreateOwnerInformation(ctx context.Context, owner *models.OwnerInformation) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := createEntity(tx, ctx, owner); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, owner.SurveyID, owner.CreatorID, owner.CreatedAt)
	})
}

func (s *GORMStore) GetOwnerInformation(ctx context.Context, surveyID, id string) (*models.OwnerInformation, error) {
	return getScoped[models.OwnerInformation](s.db, ctx, surveyID, id, models.ErrOwnerInformationNotFound)
}

func (s *GORMStore) ListOwnerInformation(ctx context.Context, surveyID string) ([]*models.OwnerInformation, error) {
	return listBySurvey[models.OwnerInformation](s.db, ctx, surveyID)
}

func (s *GORMStore) UpdateOwnerInformation(ctx context.Context, owner *models.OwnerInformation) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := saveEntity(tx, ctx, owner); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, owner.SurveyID, owner.ModifierID, owner.ModifiedAt)
	})
}

func (s *GORMStore) DeleteOwnerInformation(ctx context.Context, surveyID, id, modifierID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteScoped[models.OwnerInformation](tx, ctx, surveyID, id, models.ErrOwnerInformationNotFound); err != nil {
			return err
		}
		return touchNow(tx, ctx, surveyID, modifierID)
	})
}
