package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

func (s *GORMStore) CreateAttachment(ctx context.Context, attachment *models.Attachment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := createEntity(tx, ctx, attachment); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, attachment.SurveyID, attachment.CreatorID, attachment.CreatedAt)
	})
}

func (s *GORMStore) GetAttachment(ctx context.Context, surveyID, id string) (*models.Attachment, error) {
	return getScoped[models.Attachment](s.db, ctx, surveyID, id, models.ErrAttachmentNotFound)
}

func (s *GORMStore) ListAttachments(ctx context.Context, surveyID string) ([]*models.Attachment, error) {
	return listBySurvey[models.Attachment](s.db, ctx, surveyID)
}

func (s *GORMStore) UpdateAttachment(ctx context.Context, attachment *models.Attachment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := saveEntity(tx, ctx, attachment); err != nil {
			return err
		}
		return touchSurvey(tx, ctx, attachment.SurveyID, attachment.ModifierID, attachment.ModifiedAt)
	})
}

func (s *GORMStore) DeleteAttachment(ctx context.Context, surveyID, id, modifierID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteScoped[models.Attachment](tx, ctx, surveyID, id, models.ErrAttachmentNotFound); err != nil {
			return err
		}
		return touchNow(tx, ctx, surveyID, modifierID)
	})
}
