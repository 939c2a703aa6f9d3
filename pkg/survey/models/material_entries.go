package models

import "fmt"

// Usability grades the condition of a reusable building component.
type Usability string

const (
	UsabilityExcellent    Usability = "excellent"
	UsabilityGood         Usability = "good"
	UsabilityPoor         Usability = "poor"
	UsabilityNotValidated Usability = "not_validated"
)

// IsValid checks if the value is a known Usability.
func (u Usability) IsValid() bool {
	switch u {
	case UsabilityExcellent, UsabilityGood, UsabilityPoor, UsabilityNotValidated:
		return true
	}
	return false
}

// Unit is the measurement unit for material amounts.
type Unit string

const (
	UnitKg  Unit = "kg"
	UnitTn  Unit = "tn"
	UnitM2  Unit = "m2"
	UnitM3  Unit = "m3"
	UnitPcs Unit = "pcs"
	UnitRm  Unit = "rm"
)

// IsValid checks if the value is a known Unit.
func (u Unit) IsValid() bool {
	switch u {
	case UnitKg, UnitTn, UnitM2, UnitM3, UnitPcs, UnitRm:
		return true
	}
	return false
}

// Reusable is a building component that can be salvaged and reused.
// It references the reusable material catalog by id.
type Reusable struct {
	Metadata
	SurveyID           string    `gorm:"not null;size:36;index" json:"survey_id"`
	ReusableMaterialID string    `gorm:"not null;size:36;index" json:"reusable_material_id"`
	ComponentName      string    `gorm:"not null;size:255" json:"component_name"`
	Usability          Usability `gorm:"size:50;default:not_validated" json:"usability"`
	Amount             *float64  `json:"amount,omitempty"`
	Unit               Unit      `gorm:"size:16" json:"unit,omitempty"`
	Description        string    `gorm:"size:1024" json:"description,omitempty"`
	Images             []string  `gorm:"serializer:json" json:"images,omitempty"`
}

// TableName returns the table name for Reusable.
func (Reusable) TableName() string {
	return "reusables"
}

// Validate checks enum fields on the reusable.
func (r *Reusable) Validate() error {
	if r.Usability != "" && !r.Usability.IsValid() {
		return fmt.Errorf("invalid usability: %s", r.Usability)
	}
	if r.Unit != "" && !r.Unit.IsValid() {
		return fmt.Errorf("invalid unit: %s", r.Unit)
	}
	return nil
}

// Waste is a non-hazardous waste estimate for a survey, referencing the
// waste material and waste usage catalogs.
type Waste struct {
	Metadata
	SurveyID        string   `gorm:"not null;size:36;index" json:"survey_id"`
	WasteMaterialID string   `gorm:"not null;size:36;index" json:"waste_material_id"`
	WasteUsageID    string   `gorm:"not null;size:36;index" json:"waste_usage_id"`
	Amount          *float64 `json:"amount,omitempty"`
	Description     string   `gorm:"size:1024" json:"description,omitempty"`
}

// TableName returns the table name for Waste.
func (Waste) TableName() string {
	return "wastes"
}

// HazardousWaste is a hazardous waste estimate for a survey. The specifier
// reference is optional; the material reference is required.
type HazardousWaste struct {
	Metadata
	SurveyID            string   `gorm:"not null;size:36;index" json:"survey_id"`
	HazardousMaterialID string   `gorm:"not null;size:36;index" json:"hazardous_material_id"`
	WasteSpecifierID    *string  `gorm:"size:36;index" json:"waste_specifier_id,omitempty"`
	Amount              *float64 `json:"amount,omitempty"`
	Description         string   `gorm:"size:1024" json:"description,omitempty"`
}

// TableName returns the table name for HazardousWaste.
func (HazardousWaste) TableName() string {
	return "hazardous_wastes"
}
