package models

// ContactPerson is the contact value embedded in owner information.
type ContactPerson struct {
	FirstName  string `gorm:"size:255" json:"first_name,omitempty"`
	LastName   string `gorm:"size:255" json:"last_name,omitempty"`
	Phone      string `gorm:"size:64" json:"phone,omitempty"`
	Email      string `gorm:"size:255" json:"email,omitempty"`
	Profession string `gorm:"size:255" json:"profession,omitempty"`
}

// OwnerInformation records the property owner of a survey.
type OwnerInformation struct {
	Metadata
	SurveyID      string        `gorm:"not null;size:36;index" json:"survey_id"`
	OwnerName     string        `gorm:"size:255" json:"owner_name,omitempty"`
	BusinessID    string        `gorm:"size:64" json:"business_id,omitempty"`
	ContactPerson ContactPerson `gorm:"embedded;embeddedPrefix:contact_" json:"contact_person"`
}

// TableName returns the table name for OwnerInformation.
func (OwnerInformation) TableName() string {
	return "owner_information"
}
