package models

import (
	"time"

	"gorm.io/datatypes"
)

// Vehicle represents a vehicle from either faction's motor pool
type Vehicle struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Name           string            `gorm:"uniqueIndex;not null" json:"name"`
	YearIntroduced int               `json:"year_introduced"`
	Faction        string            `gorm:"index" json:"faction"`
	Category       string            `gorm:"index" json:"category"`
	VehicleType    string            `gorm:"index" json:"vehicle_type"`
	Description    string            `gorm:"type:text" json:"description"`
	PilotDriver    string            `json:"pilot_driver"`
	CrewCapacity   int               `json:"crew_capacity"`
	Weapons        string            `gorm:"type:text" json:"weapons"`
	Features       string            `gorm:"type:text" json:"features"`
	Specifications string            `gorm:"type:text" json:"specifications"`
	WikiURL        string            `json:"wiki_url"`
	ImageURL       string            `json:"image_url"`
	ToyLine        string            `json:"toy_line"`
	RawData        datatypes.JSONMap `json:"raw_data,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// Weapon represents a weapon or piece of gear
type Weapon struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Name            string            `gorm:"uniqueIndex;not null" json:"name"`
	Type            string            `gorm:"index" json:"type"`
	Faction         string            `gorm:"index" json:"faction"`
	Description     string            `gorm:"type:text" json:"description"`
	Specifications  string            `gorm:"type:text" json:"specifications"`
	UsedBy          string            `json:"used_by"`
	FirstAppearance string            `json:"first_appearance"`
	WikiURL         string            `json:"wiki_url"`
	ImageURL        string            `json:"image_url"`
	RawData         datatypes.JSONMap `json:"raw_data,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// Location represents a base, island or other notable place
type Location struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Name            string            `gorm:"uniqueIndex;not null" json:"name"`
	Type            string            `gorm:"index" json:"type"`
	Faction         string            `gorm:"index" json:"faction"`
	Description     string            `gorm:"type:text" json:"description"`
	Location        string            `json:"location"`
	Purpose         string            `json:"purpose"`
	NotableFeatures string            `gorm:"type:text" json:"notable_features"`
	FirstAppearance string            `json:"first_appearance"`
	WikiURL         string            `json:"wiki_url"`
	ImageURL        string            `json:"image_url"`
	RawData         datatypes.JSONMap `json:"raw_data,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}

// TableName returns the table name for Weapon
func (Weapon) TableName() string {
	return "weapons"
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
