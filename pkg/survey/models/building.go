package models

// OtherStructure is a secondary structure on the property, embedded in the
// building record. It has no identity of its own: its lifecycle is bound to
// the building that carries it.
type OtherStructure struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Address holds the location fields of a building.
type Address struct {
	StreetAddress string `gorm:"size:255" json:"street_address,omitempty"`
	City          string `gorm:"size:255" json:"city,omitempty"`
	PostalCode    string `gorm:"size:16" json:"postal_code,omitempty"`
}

// Building describes one building under a survey.
//
// BuildingTypeID references the shared building type catalog; the reference
// must resolve at write time when set.
type Building struct {
	Metadata
	SurveyID         string           `gorm:"not null;size:36;index" json:"survey_id"`
	BuildingTypeID   *string          `gorm:"size:36;index" json:"building_type_id,omitempty"`
	PropertyName     string           `gorm:"size:255" json:"property_name,omitempty"`
	Address          Address          `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	ConstructionYear *int             `json:"construction_year,omitempty"`
	FloorCount       *int             `json:"floor_count,omitempty"`
	BasementCount    *int             `json:"basement_count,omitempty"`
	FloorAreaM2      *int             `json:"floor_area_m2,omitempty"`
	OtherStructures  []OtherStructure `gorm:"serializer:json" json:"other_structures,omitempty"`
}

// TableName returns the table name for Building.
func (Building) TableName() string {
	return "buildings"
}
