package models

import (
	"time"

	"gorm.io/datatypes"
)

// Character represents a G.I. Joe or Cobra character in the database
type Character struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Name            string            `gorm:"uniqueIndex;not null" json:"name"`
	RealName        string            `json:"real_name"`
	CodeName        string            `json:"code_name"`
	Faction         string            `gorm:"index" json:"faction"`
	Rank            string            `json:"rank"`
	Specialty       string            `json:"specialty"`
	Birthplace      string            `json:"birthplace"`
	Bio             string            `gorm:"type:text" json:"bio"`
	FirstAppearance string            `json:"first_appearance"`
	VoiceActor      string            `json:"voice_actor"`
	WikiURL         string            `json:"wiki_url"`
	ImageURL        string            `json:"image_url"`
	Status          string            `gorm:"index" json:"status"`
	RawData         datatypes.JSONMap `json:"raw_data,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	VehicleRelations []CharacterVehicleRelation `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
	WeaponRelations  []CharacterWeaponRelation  `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Character
func (Character) TableName() string {
	return "characters"
}
