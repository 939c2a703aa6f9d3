// Package models defines the persistent entities of the demolition survey
// backend: the survey aggregate, its survey-scoped children, and the global
// material catalogs referenced by them.
package models

import "time"

// Metadata carries the identity and audit fields shared by every entity.
//
// ID is a UUID assigned by the store at creation. CreatedAt/CreatorID are set
// exactly once; ModifiedAt/ModifierID are refreshed on every persisted
// mutation, including the parent survey when a child entity changes.
type Metadata struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatorID  string    `gorm:"size:36" json:"creator_id"`
	ModifierID string    `gorm:"size:36" json:"modifier_id"`
}

// Touch updates the modification audit fields to the given actor and time.
func (m *Metadata) Touch(modifierID string, at time.Time) {
	m.ModifierID = modifierID
	m.ModifiedAt = at
}

// GetMetadata exposes the embedded audit fields; entities satisfy the store's
// generic helpers through this promoted method.
func (m *Metadata) GetMetadata() *Metadata { return m }

// AllModels returns every entity type for schema auto-migration.
func AllModels() []any {
	return []any{
		&Survey{},
		&Building{},
		&OwnerInformation{},
		&Surveyor{},
		&Attachment{},
		&Reusable{},
		&Waste{},
		&HazardousWaste{},
		&BuildingType{},
		&ReusableMaterial{},
		&WasteCategory{},
		&WasteMaterial{},
		&HazardousMaterial{},
		&WasteSpecifier{},
		&WasteUsage{},
	}
}
