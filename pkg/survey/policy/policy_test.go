package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/demoworks/surveyd/pkg/survey/models"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

func TestAuthorizeSurveyScoped(t *testing.T) {
	tests := []struct {
		name          string
		principal     *Principal
		surveyGroupID string
		wantErr       error
	}{
		{
			name:          "no principal",
			principal:     nil,
			surveyGroupID: "g1",
			wantErr:       models.ErrUnauthorized,
		},
		{
			name:          "same group",
			principal:     &Principal{UserID: "u1", GroupID: "g1"},
			surveyGroupID: "g1",
		},
		{
			name:          "foreign group",
			principal:     &Principal{UserID: "u1", GroupID: "g1"},
			surveyGroupID: "g2",
			wantErr:       models.ErrForbidden,
		},
		{
			name:          "admin crosses groups",
			principal:     &Principal{UserID: "u1", GroupID: "g1", Admin: true},
			surveyGroupID: "g2",
		},
		{
			name:          "admin without group",
			principal:     &Principal{UserID: "u1", Admin: true},
			surveyGroupID: "g2",
		},
		{
			name:          "empty principal group never matches",
			principal:     &Principal{UserID: "u1"},
			surveyGroupID: "",
			wantErr:       models.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeSurveyScoped(tt.principal, tt.surveyGroupID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AuthorizeSurveyScoped() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeCatalog(t *testing.T) {
	user := &Principal{UserID: "u1", GroupID: "g1"}
	admin := &Principal{UserID: "a1", GroupID: "g1", Admin: true}

	tests := []struct {
		name      string
		principal *Principal
		action    Action
		wantErr   error
	}{
		{name: "anonymous read", principal: nil, action: ActionRead, wantErr: models.ErrUnauthorized},
		{name: "anonymous write", principal: nil, action: ActionCreate, wantErr: models.ErrUnauthorized},
		{name: "user read", principal: user, action: ActionRead},
		{name: "user create", principal: user, action: ActionCreate, wantErr: models.ErrForbidden},
		{name: "user update", principal: user, action: ActionUpdate, wantErr: models.ErrForbidden},
		{name: "user delete", principal: user, action: ActionDelete, wantErr: models.ErrForbidden},
		{name: "admin read", principal: admin, action: ActionRead},
		{name: "admin write", principal: admin, action: ActionDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeCatalog(tt.principal, tt.action)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AuthorizeCatalog() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAction_IsWrite(t *testing.T) {
	if ActionRead.IsWrite() {
		t.Error("read is not a write")
	}
	for _, a := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		if !a.IsWrite() {
			t.Errorf("expected %q to be a write", a)
		}
	}
}

// fakeSurveyStore resolves survey ownership from a fixed map.
type fakeSurveyStore struct {
	store.SurveyStore
	surveys map[string]*models.Survey
}

func (f *fakeSurveyStore) GetSurvey(ctx context.Context, id string) (*models.Survey, error) {
	s, ok := f.surveys[id]
	if !ok {
		return nil, models.ErrSurveyNotFound
	}
	return s, nil
}

func TestGuard_RequireSurvey(t *testing.T) {
	guard := NewGuard(&fakeSurveyStore{
		surveys: map[string]*models.Survey{
			"s1": {Metadata: models.Metadata{ID: "s1"}, GroupID: "g1"},
		},
	})
	ctx := context.Background()

	t.Run("missing survey reported before authorization", func(t *testing.T) {
		// A foreign-group caller probing a nonexistent id learns "not
		// found", not "forbidden".
		_, err := guard.RequireSurvey(ctx, &Principal{UserID: "u1", GroupID: "g2"}, "nope")
		if !errors.Is(err, models.ErrSurveyNotFound) {
			t.Errorf("expected ErrSurveyNotFound, got %v", err)
		}
	})

	t.Run("foreign group denied on existing survey", func(t *testing.T) {
		_, err := guard.RequireSurvey(ctx, &Principal{UserID: "u1", GroupID: "g2"}, "s1")
		if !errors.Is(err, models.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("anonymous denied with unauthorized", func(t *testing.T) {
		_, err := guard.RequireSurvey(ctx, nil, "s1")
		if !errors.Is(err, models.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("same group allowed", func(t *testing.T) {
		survey, err := guard.RequireSurvey(ctx, &Principal{UserID: "u1", GroupID: "g1"}, "s1")
		if err != nil {
			t.Fatalf("expected access, got %v", err)
		}
		if survey.ID != "s1" {
			t.Errorf("expected survey s1, got %q", survey.ID)
		}
	})

	t.Run("admin allowed across groups", func(t *testing.T) {
		_, err := guard.RequireSurvey(ctx, &Principal{UserID: "a1", GroupID: "g9", Admin: true}, "s1")
		if err != nil {
			t.Errorf("expected admin access, got %v", err)
		}
	})
}
