package models

import (
	"fmt"
	"time"
)

// SurveyStatus represents the lifecycle state of a survey.
//
// The status is caller-supplied data: the server enforces no transition
// rules, any status may replace any other.
type SurveyStatus string

const (
	// SurveyStatusDraft is a survey still being filled in.
	SurveyStatusDraft SurveyStatus = "draft"
	// SurveyStatusDone is a completed survey.
	SurveyStatusDone SurveyStatus = "done"
)

// IsValid checks if the status is a known SurveyStatus.
func (s SurveyStatus) IsValid() bool {
	return s == SurveyStatusDraft || s == SurveyStatusDone
}

// SurveyType classifies the kind of assessment a survey records.
type SurveyType string

const (
	SurveyTypeDemolition        SurveyType = "demolition"
	SurveyTypeRenovation        SurveyType = "renovation"
	SurveyTypePartialDemolition SurveyType = "partial_demolition"
)

// IsValid checks if the type is a known SurveyType.
func (t SurveyType) IsValid() bool {
	switch t {
	case SurveyTypeDemolition, SurveyTypeRenovation, SurveyTypePartialDemolition:
		return true
	}
	return false
}

// Survey is the root aggregate of one demolition/renovation assessment.
//
// GroupID is the tenant boundary: every child entity belongs to the survey's
// group transitively, and access decisions always resolve through the survey.
type Survey struct {
	Metadata
	Status    SurveyStatus `gorm:"not null;size:50;default:draft;index" json:"status"`
	Type      SurveyType   `gorm:"size:50" json:"type"`
	GroupID   string       `gorm:"not null;size:36;index" json:"group_id"`
	StartDate *time.Time   `json:"start_date,omitempty"`
	EndDate   *time.Time   `json:"end_date,omitempty"`
}

// TableName returns the table name for Survey.
func (Survey) TableName() string {
	return "surveys"
}

// Validate checks if the survey has valid configuration.
func (s *Survey) Validate() error {
	if !s.Status.IsValid() {
		return fmt.Errorf("invalid survey status: %s", s.Status)
	}
	if s.Type != "" && !s.Type.IsValid() {
		return fmt.Errorf("invalid survey type: %s", s.Type)
	}
	if s.GroupID == "" {
		return fmt.Errorf("survey group is required")
	}
	return nil
}
