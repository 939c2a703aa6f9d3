package models

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMetadata_Touch(t *testing.T) {
	m := Metadata{
		ID:         "id-1",
		CreatorID:  "creator",
		ModifierID: "creator",
	}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m.Touch("editor", at)

	if m.ModifierID != "editor" {
		t.Errorf("expected modifier 'editor', got %q", m.ModifierID)
	}
	if !m.ModifiedAt.Equal(at) {
		t.Errorf("expected modified_at %v, got %v", at, m.ModifiedAt)
	}
	if m.CreatorID != "creator" {
		t.Error("Touch must not change creator")
	}
}

func TestSurveyStatus_IsValid(t *testing.T) {
	valid := []SurveyStatus{SurveyStatusDraft, SurveyStatusDone}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if SurveyStatus("archived").IsValid() {
		t.Error("expected 'archived' to be invalid")
	}
	if SurveyStatus("").IsValid() {
		t.Error("expected empty status to be invalid")
	}
}

func TestSurveyType_IsValid(t *testing.T) {
	valid := []SurveyType{SurveyTypeDemolition, SurveyTypeRenovation, SurveyTypePartialDemolition}
	for _, st := range valid {
		if !st.IsValid() {
			t.Errorf("expected %q to be valid", st)
		}
	}
	if SurveyType("construction").IsValid() {
		t.Error("expected 'construction' to be invalid")
	}
}

func TestSurvey_Validate(t *testing.T) {
	tests := []struct {
		name    string
		survey  Survey
		wantErr bool
	}{
		{
			name:   "valid draft",
			survey: Survey{Status: SurveyStatusDraft, Type: SurveyTypeDemolition, GroupID: "g1"},
		},
		{
			name:   "type optional",
			survey: Survey{Status: SurveyStatusDone, GroupID: "g1"},
		},
		{
			name:    "invalid status",
			survey:  Survey{Status: "archived", GroupID: "g1"},
			wantErr: true,
		},
		{
			name:    "invalid type",
			survey:  Survey{Status: SurveyStatusDraft, Type: "construction", GroupID: "g1"},
			wantErr: true,
		},
		{
			name:    "missing group",
			survey:  Survey{Status: SurveyStatusDraft},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.survey.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUsability_IsValid(t *testing.T) {
	for _, u := range []Usability{UsabilityExcellent, UsabilityGood, UsabilityPoor, UsabilityNotValidated} {
		if !u.IsValid() {
			t.Errorf("expected %q to be valid", u)
		}
	}
	if Usability("pristine").IsValid() {
		t.Error("expected 'pristine' to be invalid")
	}
}

func TestUnit_IsValid(t *testing.T) {
	for _, u := range []Unit{UnitKg, UnitTn, UnitM2, UnitM3, UnitPcs, UnitRm} {
		if !u.IsValid() {
			t.Errorf("expected %q to be valid", u)
		}
	}
	if Unit("liters").IsValid() {
		t.Error("expected 'liters' to be invalid")
	}
}

func TestReusable_Validate(t *testing.T) {
	r := Reusable{Usability: UsabilityGood, Unit: UnitKg}
	if err := r.Validate(); err != nil {
		t.Errorf("expected valid reusable, got %v", err)
	}

	r = Reusable{Usability: "pristine"}
	if err := r.Validate(); err == nil {
		t.Error("expected error for invalid usability")
	}

	r = Reusable{Unit: "liters"}
	if err := r.Validate(); err == nil {
		t.Error("expected error for invalid unit")
	}

	// Empty enum values are allowed; the store applies defaults.
	r = Reusable{}
	if err := r.Validate(); err != nil {
		t.Errorf("expected empty enums to be valid, got %v", err)
	}
}

func TestIsNotFound(t *testing.T) {
	notFound := []error{
		ErrSurveyNotFound,
		ErrBuildingNotFound,
		ErrOwnerInformationNotFound,
		ErrSurveyorNotFound,
		ErrAttachmentNotFound,
		ErrReusableNotFound,
		ErrWasteNotFound,
		ErrHazardousWasteNotFound,
		ErrBuildingTypeNotFound,
		ErrReusableMaterialNotFound,
		ErrWasteCategoryNotFound,
		ErrWasteMaterialNotFound,
		ErrHazardousMaterialNotFound,
		ErrWasteSpecifierNotFound,
		ErrWasteUsageNotFound,
	}
	for _, err := range notFound {
		if !IsNotFound(err) {
			t.Errorf("expected IsNotFound(%v) = true", err)
		}
	}

	// Wrapped sentinels still match.
	if !IsNotFound(fmt.Errorf("resolving survey group: %w", ErrSurveyNotFound)) {
		t.Error("expected wrapped sentinel to match")
	}

	for _, err := range []error{ErrUnauthorized, ErrForbidden, ErrSurveyHasChildren, ErrCatalogInUse, errors.New("boom"), nil} {
		if IsNotFound(err) {
			t.Errorf("expected IsNotFound(%v) = false", err)
		}
	}
}
