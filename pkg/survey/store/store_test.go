//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// createTestStore creates an in-memory SQLite store for testing.
func createTestStore(t *testing.T) *GORMStore {
	t.Helper()
	store, err := New(&Config{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: ":memory:",
		},
	})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

// createTestSurvey inserts a survey owned by the given group.
func createTestSurvey(t *testing.T, s *GORMStore, groupID string) *models.Survey {
	t.Helper()
	survey := &models.Survey{
		Metadata: models.Metadata{CreatorID: "creator"},
		Status:   models.SurveyStatusDraft,
		Type:     models.SurveyTypeDemolition,
		GroupID:  groupID,
	}
	if err := s.CreateSurvey(context.Background(), survey); err != nil {
		t.Fatalf("failed to create survey: %v", err)
	}
	return survey
}

func TestNew(t *testing.T) {
	t.Run("default config uses sqlite", func(t *testing.T) {
		config := &Config{}
		config.ApplyDefaults()

		if config.Type != DatabaseTypeSQLite {
			t.Errorf("expected SQLite, got %s", config.Type)
		}
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		config := &Config{
			Type: "invalid",
		}
		_, err := New(config)
		if err == nil {
			t.Error("expected error for invalid config")
		}
	})

	t.Run("creates in-memory store", func(t *testing.T) {
		store := createTestStore(t)
		defer store.Close()

		if err := store.Ping(); err != nil {
			t.Errorf("expected healthy store, got %v", err)
		}
	})
}

func TestSurveyOperations(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("create assigns id and audit fields", func(t *testing.T) {
		survey := createTestSurvey(t, store, "g1")

		if survey.ID == "" {
			t.Error("expected non-empty survey ID")
		}
		if survey.CreatedAt.IsZero() || survey.ModifiedAt.IsZero() {
			t.Error("expected audit timestamps to be set")
		}
		if survey.ModifierID != "creator" {
			t.Errorf("expected modifier to mirror creator, got %q", survey.ModifierID)
		}
	})

	t.Run("get survey", func(t *testing.T) {
		created := createTestSurvey(t, store, "g1")

		got, err := store.GetSurvey(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get survey: %v", err)
		}
		if got.GroupID != "g1" {
			t.Errorf("expected group g1, got %q", got.GroupID)
		}
		if got.Status != models.SurveyStatusDraft {
			t.Errorf("expected draft status, got %q", got.Status)
		}
	})

	t.Run("get survey not found", func(t *testing.T) {
		_, err := store.GetSurvey(ctx, "nonexistent")
		if !errors.Is(err, models.ErrSurveyNotFound) {
			t.Errorf("expected ErrSurveyNotFound, got %v", err)
		}
	})

	t.Run("update survey", func(t *testing.T) {
		survey := createTestSurvey(t, store, "g1")

		survey.Status = models.SurveyStatusDone
		survey.Touch("editor", time.Now())
		if err := store.UpdateSurvey(ctx, survey); err != nil {
			t.Fatalf("failed to update survey: %v", err)
		}

		updated, _ := store.GetSurvey(ctx, survey.ID)
		if updated.Status != models.SurveyStatusDone {
			t.Errorf("expected done status, got %q", updated.Status)
		}
		if updated.ModifierID != "editor" {
			t.Errorf("expected modifier 'editor', got %q", updated.ModifierID)
		}
	})

	t.Run("update missing survey", func(t *testing.T) {
		survey := &models.Survey{
			Metadata: models.Metadata{ID: "ghost"},
			Status:   models.SurveyStatusDraft,
			GroupID:  "g1",
		}
		err := store.UpdateSurvey(ctx, survey)
		if !errors.Is(err, models.ErrSurveyNotFound) {
			t.Errorf("expected ErrSurveyNotFound, got %v", err)
		}
	})

	t.Run("delete survey", func(t *testing.T) {
		survey := createTestSurvey(t, store, "g1")

		if err := store.DeleteSurvey(ctx, survey.ID); err != nil {
			t.Fatalf("failed to delete survey: %v", err)
		}
		_, err := store.GetSurvey(ctx, survey.ID)
		if !errors.Is(err, models.ErrSurveyNotFound) {
			t.Errorf("expected ErrSurveyNotFound after delete, got %v", err)
		}
	})

	t.Run("delete survey with children rejected", func(t *testing.T) {
		survey := createTestSurvey(t, store, "g1")
		surveyor := &models.Surveyor{
			Metadata:  models.Metadata{CreatorID: "creator"},
			SurveyID:  survey.ID,
			FirstName: "Anna",
		}
		if err := store.CreateSurveyor(ctx, surveyor); err != nil {
			t.Fatalf("failed to create surveyor: %v", err)
		}

		err := store.DeleteSurvey(ctx, survey.ID)
		if !errors.Is(err, models.ErrSurveyHasChildren) {
			t.Errorf("expected ErrSurveyHasChildren, got %v", err)
		}

		// After removing the child, deletion succeeds.
		if err := store.DeleteSurveyor(ctx, survey.ID, surveyor.ID, "creator"); err != nil {
			t.Fatalf("failed to delete surveyor: %v", err)
		}
		if err := store.DeleteSurvey(ctx, survey.ID); err != nil {
			t.Errorf("expected delete to succeed after removing children, got %v", err)
		}
	})
}

func TestListSurveys(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	g1a := createTestSurvey(t, store, "g1")
	g1b := createTestSurvey(t, store, "g1")
	g2 := createTestSurvey(t, store, "g2")

	g1b.Status = models.SurveyStatusDone
	g1b.Touch("editor", time.Now())
	if err := store.UpdateSurvey(ctx, g1b); err != nil {
		t.Fatalf("failed to update survey: %v", err)
	}

	t.Run("filter by group", func(t *testing.T) {
		surveys, err := store.ListSurveys(ctx, SurveyFilter{GroupID: "g1"})
		if err != nil {
			t.Fatalf("failed to list surveys: %v", err)
		}
		if len(surveys) != 2 {
			t.Fatalf("expected 2 surveys for g1, got %d", len(surveys))
		}
		// Ordered by ascending creation time.
		if surveys[0].ID != g1a.ID || surveys[1].ID != g1b.ID {
			t.Error("expected surveys ordered by creation time")
		}
	})

	t.Run("no group filter returns all", func(t *testing.T) {
		surveys, err := store.ListSurveys(ctx, SurveyFilter{})
		if err != nil {
			t.Fatalf("failed to list surveys: %v", err)
		}
		if len(surveys) != 3 {
			t.Errorf("expected 3 surveys, got %d", len(surveys))
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		surveys, err := store.ListSurveys(ctx, SurveyFilter{GroupID: "g1", Status: models.SurveyStatusDone})
		if err != nil {
			t.Fatalf("failed to list surveys: %v", err)
		}
		if len(surveys) != 1 || surveys[0].ID != g1b.ID {
			t.Errorf("expected only the done survey, got %d results", len(surveys))
		}
	})

	t.Run("pagination", func(t *testing.T) {
		surveys, err := store.ListSurveys(ctx, SurveyFilter{FirstResult: 1, MaxResults: 1})
		if err != nil {
			t.Fatalf("failed to list surveys: %v", err)
		}
		if len(surveys) != 1 || surveys[0].ID != g1b.ID {
			t.Error("expected second survey via offset/limit")
		}
	})

	t.Run("address filter matches building address", func(t *testing.T) {
		building := &models.Building{
			Metadata: models.Metadata{CreatorID: "creator"},
			SurveyID: g2.ID,
			Address: models.Address{
				StreetAddress: "Factory Road 7",
				City:          "Tampere",
			},
		}
		if err := store.CreateBuilding(ctx, building); err != nil {
			t.Fatalf("failed to create building: %v", err)
		}

		surveys, err := store.ListSurveys(ctx, SurveyFilter{Address: "factory"})
		if err != nil {
			t.Fatalf("failed to list surveys: %v", err)
		}
		if len(surveys) != 1 || surveys[0].ID != g2.ID {
			t.Errorf("expected address filter to match survey %s, got %d results", g2.ID, len(surveys))
		}

		surveys, err = store.ListSurveys(ctx, SurveyFilter{Address: "TAMPERE"})
		if err != nil {
			t.Fatalf("failed to list surveys: %v", err)
		}
		if len(surveys) != 1 {
			t.Errorf("expected case-insensitive city match, got %d results", len(surveys))
		}

		surveys, err = store.ListSurveys(ctx, SurveyFilter{Address: "helsinki"})
		if err != nil {
			t.Fatalf("failed to list surveys: %v", err)
		}
		if len(surveys) != 0 {
			t.Errorf("expected no match for unknown address, got %d results", len(surveys))
		}
	})
}

func TestChildMutationsTouchSurvey(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	survey := createTestSurvey(t, store, "g1")

	t.Run("create touches survey", func(t *testing.T) {
		before, _ := store.GetSurvey(ctx, survey.ID)

		surveyor := &models.Surveyor{
			Metadata:  models.Metadata{CreatorID: "child-creator"},
			SurveyID:  survey.ID,
			FirstName: "Anna",
		}
		if err := store.CreateSurveyor(ctx, surveyor); err != nil {
			t.Fatalf("failed to create surveyor: %v", err)
		}

		after, _ := store.GetSurvey(ctx, survey.ID)
		if after.ModifierID != "child-creator" {
			t.Errorf("expected survey modifier 'child-creator', got %q", after.ModifierID)
		}
		if !after.ModifiedAt.After(before.ModifiedAt) && !after.ModifiedAt.Equal(surveyor.CreatedAt) {
			t.Error("expected survey modified_at to advance with child creation")
		}
		// Creator is never rewritten by a touch.
		if after.CreatorID != "creator" {
			t.Errorf("expected survey creator unchanged, got %q", after.CreatorID)
		}
	})

	t.Run("update touches survey", func(t *testing.T) {
		surveyors, _ := store.ListSurveyors(ctx, survey.ID)
		surveyor := surveyors[0]

		surveyor.Company = "Acme Surveys"
		surveyor.Touch("child-editor", time.Now())
		if err := store.UpdateSurveyor(ctx, surveyor); err != nil {
			t.Fatalf("failed to update surveyor: %v", err)
		}

		after, _ := store.GetSurvey(ctx, survey.ID)
		if after.ModifierID != "child-editor" {
			t.Errorf("expected survey modifier 'child-editor', got %q", after.ModifierID)
		}
	})

	t.Run("delete touches survey", func(t *testing.T) {
		surveyors, _ := store.ListSurveyors(ctx, survey.ID)
		if err := store.DeleteSurveyor(ctx, survey.ID, surveyors[0].ID, "child-deleter"); err != nil {
			t.Fatalf("failed to delete surveyor: %v", err)
		}

		after, _ := store.GetSurvey(ctx, survey.ID)
		if after.ModifierID != "child-deleter" {
			t.Errorf("expected survey modifier 'child-deleter', got %q", after.ModifierID)
		}
	})
}

func TestScopedLookups(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	surveyA := createTestSurvey(t, store, "g1")
	surveyB := createTestSurvey(t, store, "g2")

	attachment := &models.Attachment{
		Metadata: models.Metadata{CreatorID: "creator"},
		SurveyID: surveyA.ID,
		Name:     "floor plan",
		URL:      "https://files.example.com/plan.pdf",
	}
	if err := store.CreateAttachment(ctx, attachment); err != nil {
		t.Fatalf("failed to create attachment: %v", err)
	}

	t.Run("found under owning survey", func(t *testing.T) {
		got, err := store.GetAttachment(ctx, surveyA.ID, attachment.ID)
		if err != nil {
			t.Fatalf("failed to get attachment: %v", err)
		}
		if got.Name != "floor plan" {
			t.Errorf("expected 'floor plan', got %q", got.Name)
		}
	})

	t.Run("not found under foreign survey", func(t *testing.T) {
		// An existing entity id under the wrong survey is reported as
		// missing, never leaked.
		_, err := store.GetAttachment(ctx, surveyB.ID, attachment.ID)
		if !errors.Is(err, models.ErrAttachmentNotFound) {
			t.Errorf("expected ErrAttachmentNotFound, got %v", err)
		}
	})

	t.Run("delete scoped to survey", func(t *testing.T) {
		err := store.DeleteAttachment(ctx, surveyB.ID, attachment.ID, "deleter")
		if !errors.Is(err, models.ErrAttachmentNotFound) {
			t.Errorf("expected ErrAttachmentNotFound, got %v", err)
		}
		// The attachment survives the misdirected delete.
		if _, err := store.GetAttachment(ctx, surveyA.ID, attachment.ID); err != nil {
			t.Errorf("expected attachment to survive, got %v", err)
		}
	})
}

func TestChildListOrdering(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	survey := createTestSurvey(t, store, "g1")

	names := []string{"site photo", "floor plan", "asbestos report", "permit"}
	for _, name := range names {
		attachment := &models.Attachment{
			Metadata: models.Metadata{CreatorID: "creator"},
			SurveyID: survey.ID,
			Name:     name,
			URL:      "https://files.example.com/" + name,
		}
		if err := store.CreateAttachment(ctx, attachment); err != nil {
			t.Fatalf("failed to create attachment %q: %v", name, err)
		}
		// Creation timestamps drive the listing order; keep them distinct.
		time.Sleep(2 * time.Millisecond)
	}

	attachments, err := store.ListAttachments(ctx, survey.ID)
	if err != nil {
		t.Fatalf("failed to list attachments: %v", err)
	}
	if len(attachments) != len(names) {
		t.Fatalf("expected %d attachments, got %d", len(names), len(attachments))
	}
	for i, a := range attachments {
		if a.Name != names[i] {
			t.Errorf("position %d: expected %q, got %q", i, names[i], a.Name)
		}
		if i > 0 && a.CreatedAt.Before(attachments[i-1].CreatedAt) {
			t.Errorf("position %d: created_at %v precedes previous %v",
				i, a.CreatedAt, attachments[i-1].CreatedAt)
		}
	}
}

func TestCatalogReferenceValidation(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	survey := createTestSurvey(t, store, "g1")

	t.Run("dangling building type rejected without partial state", func(t *testing.T) {
		before, _ := store.GetSurvey(ctx, survey.ID)

		dangling := "no-such-type"
		building := &models.Building{
			Metadata:       models.Metadata{CreatorID: "creator"},
			SurveyID:       survey.ID,
			BuildingTypeID: &dangling,
		}
		err := store.CreateBuilding(ctx, building)
		if !errors.Is(err, models.ErrBuildingTypeNotFound) {
			t.Fatalf("expected ErrBuildingTypeNotFound, got %v", err)
		}

		// Nothing was persisted and the survey was not touched.
		buildings, _ := store.ListBuildings(ctx, survey.ID)
		if len(buildings) != 0 {
			t.Errorf("expected no buildings after rejected create, got %d", len(buildings))
		}
		after, _ := store.GetSurvey(ctx, survey.ID)
		if !after.ModifiedAt.Equal(before.ModifiedAt) {
			t.Error("expected survey untouched after rejected create")
		}
	})

	t.Run("valid building type accepted", func(t *testing.T) {
		bt := &models.BuildingType{
			Metadata: models.Metadata{CreatorID: "admin"},
			Name:     "Warehouse",
		}
		if err := store.CreateBuildingType(ctx, bt); err != nil {
			t.Fatalf("failed to create building type: %v", err)
		}

		building := &models.Building{
			Metadata:       models.Metadata{CreatorID: "creator"},
			SurveyID:       survey.ID,
			BuildingTypeID: &bt.ID,
		}
		if err := store.CreateBuilding(ctx, building); err != nil {
			t.Fatalf("expected create to succeed, got %v", err)
		}
	})

	t.Run("waste requires material and usage", func(t *testing.T) {
		wc := &models.WasteCategory{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Concrete", EwcCode: "17 01"}
		if err := store.CreateWasteCategory(ctx, wc); err != nil {
			t.Fatalf("failed to create waste category: %v", err)
		}
		wm := &models.WasteMaterial{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Concrete rubble", WasteCategoryID: wc.ID}
		if err := store.CreateWasteMaterial(ctx, wm); err != nil {
			t.Fatalf("failed to create waste material: %v", err)
		}

		waste := &models.Waste{
			Metadata:        models.Metadata{CreatorID: "creator"},
			SurveyID:        survey.ID,
			WasteMaterialID: wm.ID,
			WasteUsageID:    "no-such-usage",
		}
		err := store.CreateWaste(ctx, waste)
		if !errors.Is(err, models.ErrWasteUsageNotFound) {
			t.Fatalf("expected ErrWasteUsageNotFound, got %v", err)
		}

		wu := &models.WasteUsage{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Landfill"}
		if err := store.CreateWasteUsage(ctx, wu); err != nil {
			t.Fatalf("failed to create waste usage: %v", err)
		}
		waste.WasteUsageID = wu.ID
		if err := store.CreateWaste(ctx, waste); err != nil {
			t.Fatalf("expected create to succeed, got %v", err)
		}
	})
}

func TestCatalogDeleteInUse(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	survey := createTestSurvey(t, store, "g1")

	rm := &models.ReusableMaterial{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Bricks"}
	if err := store.CreateReusableMaterial(ctx, rm); err != nil {
		t.Fatalf("failed to create reusable material: %v", err)
	}

	reusable := &models.Reusable{
		Metadata:           models.Metadata{CreatorID: "creator"},
		SurveyID:           survey.ID,
		ReusableMaterialID: rm.ID,
		ComponentName:      "Facade bricks",
	}
	if err := store.CreateReusable(ctx, reusable); err != nil {
		t.Fatalf("failed to create reusable: %v", err)
	}

	t.Run("referenced catalog entity cannot be deleted", func(t *testing.T) {
		err := store.DeleteReusableMaterial(ctx, rm.ID)
		if !errors.Is(err, models.ErrCatalogInUse) {
			t.Errorf("expected ErrCatalogInUse, got %v", err)
		}
	})

	t.Run("deletable once dereferenced", func(t *testing.T) {
		if err := store.DeleteReusable(ctx, survey.ID, reusable.ID, "creator"); err != nil {
			t.Fatalf("failed to delete reusable: %v", err)
		}
		if err := store.DeleteReusableMaterial(ctx, rm.ID); err != nil {
			t.Errorf("expected catalog delete to succeed, got %v", err)
		}
	})

	t.Run("category with materials cannot be deleted", func(t *testing.T) {
		wc := &models.WasteCategory{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Metals", EwcCode: "17 04"}
		if err := store.CreateWasteCategory(ctx, wc); err != nil {
			t.Fatalf("failed to create waste category: %v", err)
		}
		hm := &models.HazardousMaterial{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Lead sheeting", WasteCategoryID: wc.ID}
		if err := store.CreateHazardousMaterial(ctx, hm); err != nil {
			t.Fatalf("failed to create hazardous material: %v", err)
		}

		err := store.DeleteWasteCategory(ctx, wc.ID)
		if !errors.Is(err, models.ErrCatalogInUse) {
			t.Errorf("expected ErrCatalogInUse, got %v", err)
		}

		if err := store.DeleteHazardousMaterial(ctx, hm.ID); err != nil {
			t.Fatalf("failed to delete hazardous material: %v", err)
		}
		if err := store.DeleteWasteCategory(ctx, wc.ID); err != nil {
			t.Errorf("expected category delete to succeed, got %v", err)
		}
	})
}

func TestHazardousWasteSpecifier(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	survey := createTestSurvey(t, store, "g1")

	wc := &models.WasteCategory{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Insulation", EwcCode: "17 06"}
	if err := store.CreateWasteCategory(ctx, wc); err != nil {
		t.Fatalf("failed to create waste category: %v", err)
	}
	hm := &models.HazardousMaterial{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Asbestos", WasteCategoryID: wc.ID}
	if err := store.CreateHazardousMaterial(ctx, hm); err != nil {
		t.Fatalf("failed to create hazardous material: %v", err)
	}

	t.Run("optional specifier may be nil", func(t *testing.T) {
		hw := &models.HazardousWaste{
			Metadata:            models.Metadata{CreatorID: "creator"},
			SurveyID:            survey.ID,
			HazardousMaterialID: hm.ID,
		}
		if err := store.CreateHazardousWaste(ctx, hw); err != nil {
			t.Fatalf("expected create without specifier to succeed, got %v", err)
		}
	})

	t.Run("dangling specifier rejected", func(t *testing.T) {
		dangling := "no-such-specifier"
		hw := &models.HazardousWaste{
			Metadata:            models.Metadata{CreatorID: "creator"},
			SurveyID:            survey.ID,
			HazardousMaterialID: hm.ID,
			WasteSpecifierID:    &dangling,
		}
		err := store.CreateHazardousWaste(ctx, hw)
		if !errors.Is(err, models.ErrWasteSpecifierNotFound) {
			t.Errorf("expected ErrWasteSpecifierNotFound, got %v", err)
		}
	})
}
