package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// ============================================================================
// Generic GORM Helpers
// ============================================================================
//
// These helpers reduce repetitive CRUD boilerplate across store implementation
// files. They are unexported (package-internal) and operate on the raw *gorm.DB
// so they can run either against the base connection or inside a transaction.
// Each helper handles standard concerns like context propagation, creation-time
// ordering, and not-found error conversion.

// auditable is satisfied by every entity through the embedded Metadata.
type auditable interface {
	GetMetadata() *models.Metadata
}

// getByID retrieves a single record of type T by primary key, converting
// gorm.ErrRecordNotFound to the provided notFoundErr for consistent domain
// error mapping.
func getByID[T any](db *gorm.DB, ctx context.Context, id string, notFoundErr error) (*T, error) {
	var result T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		return nil, convertNotFoundError(err, notFoundErr)
	}
	return &result, nil
}

// getScoped retrieves a single record of type T by primary key, constrained
// to the given survey. A record that exists under a different survey is
// reported as notFoundErr rather than leaked.
func getScoped[T any](db *gorm.DB, ctx context.Context, surveyID, id string, notFoundErr error) (*T, error) {
	var result T
	err := db.WithContext(ctx).Where("survey_id = ? AND id = ?", surveyID, id).First(&result).Error
	if err != nil {
		return nil, convertNotFoundError(err, notFoundErr)
	}
	return &result, nil
}

// listBySurvey retrieves all records of type T under the given survey,
// ordered by ascending creation time. Returns an empty slice (not nil) on
// success with no records.
func listBySurvey[T any](db *gorm.DB, ctx context.Context, surveyID string) ([]*T, error) {
	results := []*T{}
	err := db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// listAll retrieves all records of type T ordered by ascending creation time.
func listAll[T any](db *gorm.DB, ctx context.Context) ([]*T, error) {
	results := []*T{}
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// createEntity assigns a UUID and the creation audit fields, then inserts the
// entity. ModifierID is expected to be set by the caller (it mirrors
// CreatorID on creation).
func createEntity(db *gorm.DB, ctx context.Context, e auditable) error {
	meta := e.GetMetadata()
	if meta.ID == "" {
		meta.ID = uuid.New().String()
	}
	now := time.Now()
	meta.CreatedAt = now
	meta.ModifiedAt = now
	if meta.ModifierID == "" {
		meta.ModifierID = meta.CreatorID
	}
	return db.WithContext(ctx).Create(e).Error
}

// saveEntity refreshes the modification timestamp and persists all fields of
// an already-loaded entity. The caller sets ModifierID before saving.
func saveEntity(db *gorm.DB, ctx context.Context, e auditable) error {
	e.GetMetadata().ModifiedAt = time.Now()
	return db.WithContext(ctx).Save(e).Error
}

// deleteScoped deletes the record of type T with the given id under the given
// survey. Returns notFoundErr if no row matched.
func deleteScoped[T any](db *gorm.DB, ctx context.Context, surveyID, id string, notFoundErr error) error {
	var zero T
	result := db.WithContext(ctx).Where("survey_id = ? AND id = ?", surveyID, id).Delete(&zero)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundErr
	}
	return nil
}

// countWhere counts records of type T matching the condition.
func countWhere[T any](db *gorm.DB, ctx context.Context, query string, args ...any) (int64, error) {
	var zero T
	var count int64
	if err := db.WithContext(ctx).Model(&zero).Where(query, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// refExists validates that a catalog reference resolves. A dangling reference
// is reported as notFoundErr, never silently accepted.
func refExists[T any](db *gorm.DB, ctx context.Context, id string, notFoundErr error) error {
	count, err := countWhere[T](db, ctx, "id = ?", id)
	if err != nil {
		return err
	}
	if count == 0 {
		return notFoundErr
	}
	return nil
}

// touchSurvey updates only the survey's modification audit fields so the
// survey reflects the freshest child change. Run inside the same transaction
// as the child mutation.
func touchSurvey(db *gorm.DB, ctx context.Context, surveyID, modifierID string, at time.Time) error {
	result := db.WithContext(ctx).
		Model(&models.Survey{}).
		Where("id = ?", surveyID).
		Updates(map[string]any{"modifier_id": modifierID, "modified_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrSurveyNotFound
	}
	return nil
}

// touchNow is touchSurvey at the current time, for deletions where no child
// timestamp remains to borrow.
func touchNow(db *gorm.DB, ctx context.Context, surveyID, modifierID string) error {
	return touchSurvey(db, ctx, surveyID, modifierID, time.Now())
}
