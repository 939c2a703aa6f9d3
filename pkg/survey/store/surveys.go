package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// SurveyFilter narrows and paginates survey listings.
//
// A zero GroupID means no group restriction (administrator listing). Address
// matches case-insensitively against the street address and city of the
// survey's buildings. MaxResults of zero means no limit.
type SurveyFilter struct {
	GroupID     string
	Status      models.SurveyStatus
	Address     string
	FirstResult int
	MaxResults  int
}

func (s *GORMStore) CreateSurvey(ctx context.Context, survey *models.Survey) error {
	return createEntity(s.db, ctx, survey)
}

func (s *GORMStore) GetSurvey(ctx context.Context, id string) (*models.Survey, error) {
	return getByID[models.Survey](s.db, ctx, id, models.ErrSurveyNotFound)
}

func (s *GORMStore) ListSurveys(ctx context.Context, filter SurveyFilter) ([]*models.Survey, error) {
	q := s.db.WithContext(ctx).Model(&models.Survey{})

	if filter.GroupID != "" {
		q = q.Where("group_id = ?", filter.GroupID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Address != "" {
		pattern := "%" + filter.Address + "%"
		q = q.Where("id IN (?)", s.db.Model(&models.Building{}).
			Select("survey_id").
			Where("lower(address_street_address) LIKE lower(?) OR lower(address_city) LIKE lower(?)",
				pattern, pattern))
	}

	q = q.Order("created_at ASC")
	if filter.FirstResult > 0 {
		q = q.Offset(filter.FirstResult)
	}
	if filter.MaxResults > 0 {
		q = q.Limit(filter.MaxResults)
	}

	surveys := []*models.Survey{}
	if err := q.Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

func (s *GORMStore) UpdateSurvey(ctx context.Context, survey *models.Survey) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := refExists[models.Survey](tx, ctx, survey.ID, models.ErrSurveyNotFound); err != nil {
			return err
		}
		return saveEntity(tx, ctx, survey)
	})
}

// DeleteSurvey hard-deletes a survey. Deletion is rejected with
// ErrSurveyHasChildren while any dependent entity remains: children must be
// deleted first instead of cascading silently.
func (s *GORMStore) DeleteSurvey(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var survey models.Survey
		if err := tx.WithContext(ctx).Where("id = ?", id).First(&survey).Error; err != nil {
			return convertNotFoundError(err, models.ErrSurveyNotFound)
		}

		counts := []func() (int64, error){
			func() (int64, error) { return countWhere[models.Building](tx, ctx, "survey_id = ?", id) },
			func() (int64, error) { return countWhere[models.OwnerInformation](tx, ctx, "survey_id = ?", id) },
			func() (int64, error) { return countWhere[models.Surveyor](tx, ctx, "survey_id = ?", id) },
			func() (int64, error) { return countWhere[models.Attachment](tx, ctx, "survey_id = ?", id) },
			func() (int64, error) { return countWhere[models.Reusable](tx, ctx, "survey_id = ?", id) },
			func() (int64, error) { return countWhere[models.Waste](tx, ctx, "survey_id = ?", id) },
			func() (int64, error) { return countWhere[models.HazardousWaste](tx, ctx, "survey_id = ?", id) },
		}
		for _, count := range counts {
			n, err := count()
			if err != nil {
				return err
			}
			if n > 0 {
				return models.ErrSurveyHasChildren
			}
		}

		return tx.WithContext(ctx).Delete(&survey).Error
	})
}

// TouchSurvey updates only the survey's modifier id and modification time,
// leaving every other survey field untouched.
func (s *GORMStore) TouchSurvey(ctx context.Context, surveyID, modifierID string) error {
	return touchSurvey(s.db, ctx, surveyID, modifierID, time.Now())
}
