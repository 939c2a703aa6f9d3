//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/demoworks/surveyd/pkg/survey/models"
)

// createPostgresStore starts a throwaway PostgreSQL container and opens a
// store against it. Skipped when Docker is unavailable.
func createPostgresStore(t *testing.T) *GORMStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("surveyd_test"),
		tcpostgres.WithUsername("surveyd"),
		tcpostgres.WithPassword("surveyd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("skipping: could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	store, err := New(&Config{
		Type: DatabaseTypePostgres,
		Postgres: PostgresConfig{
			Host:     host,
			Port:     port.Int(),
			Database: "surveyd_test",
			User:     "surveyd",
			Password: "surveyd",
			SSLMode:  "disable",
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPostgresStore(t *testing.T) {
	store := createPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, store.Ping())

	t.Run("survey round trip", func(t *testing.T) {
		survey := &models.Survey{
			Metadata: models.Metadata{CreatorID: "creator"},
			Status:   models.SurveyStatusDraft,
			Type:     models.SurveyTypeRenovation,
			GroupID:  "g1",
		}
		require.NoError(t, store.CreateSurvey(ctx, survey))
		require.NotEmpty(t, survey.ID)

		got, err := store.GetSurvey(ctx, survey.ID)
		require.NoError(t, err)
		require.Equal(t, models.SurveyTypeRenovation, got.Type)
		require.Equal(t, "g1", got.GroupID)
	})

	t.Run("child create touches survey in one transaction", func(t *testing.T) {
		survey := &models.Survey{
			Metadata: models.Metadata{CreatorID: "creator"},
			Status:   models.SurveyStatusDraft,
			GroupID:  "g1",
		}
		require.NoError(t, store.CreateSurvey(ctx, survey))

		owner := &models.OwnerInformation{
			Metadata: models.Metadata{CreatorID: "owner-creator"},
			SurveyID: survey.ID,
			LastName: "Virtanen",
		}
		require.NoError(t, store.CreateOwnerInformation(ctx, owner))

		touched, err := store.GetSurvey(ctx, survey.ID)
		require.NoError(t, err)
		require.Equal(t, "owner-creator", touched.ModifierID)
	})

	t.Run("dangling catalog reference rolls back", func(t *testing.T) {
		survey := &models.Survey{
			Metadata: models.Metadata{CreatorID: "creator"},
			Status:   models.SurveyStatusDraft,
			GroupID:  "g1",
		}
		require.NoError(t, store.CreateSurvey(ctx, survey))

		waste := &models.Waste{
			Metadata:        models.Metadata{CreatorID: "creator"},
			SurveyID:        survey.ID,
			WasteMaterialID: "no-such-material",
			WasteUsageID:    "no-such-usage",
		}
		err := store.CreateWaste(ctx, waste)
		require.True(t, errors.Is(err, models.ErrWasteMaterialNotFound))

		wastes, err := store.ListWastes(ctx, survey.ID)
		require.NoError(t, err)
		require.Empty(t, wastes)
	})

	t.Run("catalog in use", func(t *testing.T) {
		bt := &models.BuildingType{Metadata: models.Metadata{CreatorID: "admin"}, Name: "Office"}
		require.NoError(t, store.CreateBuildingType(ctx, bt))

		survey := &models.Survey{
			Metadata: models.Metadata{CreatorID: "creator"},
			Status:   models.SurveyStatusDraft,
			GroupID:  "g1",
		}
		require.NoError(t, store.CreateSurvey(ctx, survey))

		building := &models.Building{
			Metadata:       models.Metadata{CreatorID: "creator"},
			SurveyID:       survey.ID,
			BuildingTypeID: &bt.ID,
		}
		require.NoError(t, store.CreateBuilding(ctx, building))

		err := store.DeleteBuildingType(ctx, bt.ID)
		require.True(t, errors.Is(err, models.ErrCatalogInUse))

		require.NoError(t, store.DeleteBuilding(ctx, survey.ID, building.ID, "creator"))
		require.NoError(t, store.DeleteBuildingType(ctx, bt.ID))
	})
}
