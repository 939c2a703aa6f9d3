package models

import "time"

// Surveyor records one person who performed or will perform a survey visit.
type Surveyor struct {
	Metadata
	SurveyID   string     `gorm:"not null;size:36;index" json:"survey_id"`
	FirstName  string     `gorm:"size:255" json:"first_name,omitempty"`
	LastName   string     `gorm:"size:255" json:"last_name,omitempty"`
	Company    string     `gorm:"size:255" json:"company,omitempty"`
	Role       string     `gorm:"size:255" json:"role,omitempty"`
	Phone      string     `gorm:"size:64" json:"phone,omitempty"`
	Email      string     `gorm:"size:255" json:"email,omitempty"`
	ReportDate *time.Time `json:"report_date,omitempty"`
	Visits     string     `gorm:"size:1024" json:"visits,omitempty"`
}

// TableName returns the table name for Surveyor.
func (Surveyor) TableName() string {
	return "surveyors"
}

// Attachment is a named link to survey material stored elsewhere.
type Attachment struct {
	Metadata
	SurveyID    string `gorm:"not null;size:36;index" json:"survey_id"`
	Name        string `gorm:"not null;size:255" json:"name"`
	URL         string `gorm:"not null;size:2048" json:"url"`
	Description string `gorm:"size:1024" json:"description,omitempty"`
}

// TableName returns the table name for Attachment.
func (Attachment) TableName() string {
	return "attachments"
}
