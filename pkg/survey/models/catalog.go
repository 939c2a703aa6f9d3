package models

// Catalog entities are global reference data managed by administrators.
// They are never survey-scoped: survey entities reference them by id, and a
// catalog entity cannot be deleted while referenced.

// BuildingType classifies buildings (e.g. residential block, warehouse).
type BuildingType struct {
	Metadata
	Name string `gorm:"not null;size:255" json:"name"`
	Code string `gorm:"size:64" json:"code,omitempty"`
}

// TableName returns the table name for BuildingType.
func (BuildingType) TableName() string {
	return "building_types"
}

// ReusableMaterial is a material category for salvageable components.
type ReusableMaterial struct {
	Metadata
	Name string `gorm:"not null;size:255" json:"name"`
}

// TableName returns the table name for ReusableMaterial.
func (ReusableMaterial) TableName() string {
	return "reusable_materials"
}

// WasteCategory groups waste materials under a European Waste Catalogue
// prefix code.
type WasteCategory struct {
	Metadata
	Name    string `gorm:"not null;size:255" json:"name"`
	EwcCode string `gorm:"size:16" json:"ewc_code,omitempty"`
}

// TableName returns the table name for WasteCategory.
func (WasteCategory) TableName() string {
	return "waste_categories"
}

// WasteMaterial is a concrete non-hazardous waste material within a category.
type WasteMaterial struct {
	Metadata
	Name                 string `gorm:"not null;size:255" json:"name"`
	WasteCategoryID      string `gorm:"not null;size:36;index" json:"waste_category_id"`
	EwcSpecificationCode string `gorm:"size:16" json:"ewc_specification_code,omitempty"`
}

// TableName returns the table name for WasteMaterial.
func (WasteMaterial) TableName() string {
	return "waste_materials"
}

// HazardousMaterial is a hazardous waste material within a category.
type HazardousMaterial struct {
	Metadata
	Name                 string `gorm:"not null;size:255" json:"name"`
	WasteCategoryID      string `gorm:"not null;size:36;index" json:"waste_category_id"`
	EwcSpecificationCode string `gorm:"size:16" json:"ewc_specification_code,omitempty"`
}

// TableName returns the table name for HazardousMaterial.
func (HazardousMaterial) TableName() string {
	return "hazardous_materials"
}

// WasteSpecifier refines a hazardous waste entry (e.g. asbestos type).
type WasteSpecifier struct {
	Metadata
	Name string `gorm:"not null;size:255" json:"name"`
}

// TableName returns the table name for WasteSpecifier.
func (WasteSpecifier) TableName() string {
	return "waste_specifiers"
}

// WasteUsage is a post-demolition usage for a waste material (e.g. landfill,
// crushed aggregate).
type WasteUsage struct {
	Metadata
	Name string `gorm:"not null;size:255" json:"name"`
}

// TableName returns the table name for WasteUsage.
func (WasteUsage) TableName() string {
	return "waste_usages"
}
