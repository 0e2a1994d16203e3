package models

import "time"

// CharacterVehicleRelation links a character to a vehicle with a label such
// as "Primary Driver". The (character, vehicle, type) triple is unique.
type CharacterVehicleRelation struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CharacterID      uint      `gorm:"uniqueIndex:idx_character_vehicle_relation;not null" json:"character_id"`
	VehicleID        uint      `gorm:"uniqueIndex:idx_character_vehicle_relation;index;not null" json:"vehicle_id"`
	RelationshipType string    `gorm:"uniqueIndex:idx_character_vehicle_relation;not null" json:"relationship_type"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	Character Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
	Vehicle   Vehicle   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"-"`
}

// CharacterWeaponRelation links a character to a weapon
type CharacterWeaponRelation struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CharacterID      uint      `gorm:"uniqueIndex:idx_character_weapon_relation;not null" json:"character_id"`
	WeaponID         uint      `gorm:"uniqueIndex:idx_character_weapon_relation;index;not null" json:"weapon_id"`
	RelationshipType string    `gorm:"uniqueIndex:idx_character_weapon_relation;not null" json:"relationship_type"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	Character Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
	Weapon    Weapon    `gorm:"foreignKey:WeaponID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for CharacterVehicleRelation
func (CharacterVehicleRelation) TableName() string {
	return "character_vehicle_relations"
}

// TableName returns the table name for CharacterWeaponRelation
func (CharacterWeaponRelation) TableName() string {
	return "character_weapon_relations"
}
