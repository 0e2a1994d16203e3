package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WeatherLog stores every weather record served, live or demo
type WeatherLog struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	City          string            `gorm:"index;not null" json:"city"`
	Country       string            `json:"country"`
	Temperature   float64           `json:"temperature"`
	FeelsLike     float64           `json:"feels_like"`
	Humidity      int               `json:"humidity"`
	Pressure      float64           `json:"pressure"`
	Description   string            `json:"description"`
	WindSpeed     float64           `json:"wind_speed"`
	WindDirection float64           `json:"wind_direction"`
	Visibility    float64           `json:"visibility"`
	Units         string            `gorm:"default:imperial" json:"units"`
	Source        string            `gorm:"index;not null" json:"source"` // live, demo
	RawData       datatypes.JSONMap `json:"raw_data,omitempty"`
	Timestamp     time.Time         `gorm:"index;not null" json:"timestamp"`
}

// SearchLog records a user query against either component
type SearchLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SearchType   string    `gorm:"index;not null" json:"search_type"` // weather, character, vehicle, weapon, location, search
	Query        string    `gorm:"column:search_query;not null" json:"query"`
	ResultsFound int       `gorm:"default:0" json:"results_found"`
	SessionID    string    `gorm:"index" json:"session_id"`
	Timestamp    time.Time `gorm:"index;not null" json:"timestamp"`
}

// SystemLog represents a persisted WARN or ERROR log entry
type SystemLog struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Component string            `gorm:"index;not null" json:"component"` // weather, intel, commands, database, etc.
	Level     string            `gorm:"index;not null" json:"level"`     // INFO, ERROR, WARN, DEBUG
	Message   string            `gorm:"type:text;not null" json:"message"`
	Error     string            `gorm:"type:text" json:"error"`
	Fields    datatypes.JSONMap `json:"fields"`
	SessionID string            `gorm:"index" json:"session_id"`
	Timestamp time.Time         `gorm:"index;not null" json:"timestamp"`
}

// BeforeCreate assigns an id and timestamp when the caller left them unset
func (w *WeatherLog) BeforeCreate(tx *gorm.DB) error {
	w.ID, w.Timestamp = ensureIdentity(w.ID, w.Timestamp)
	return nil
}

// BeforeCreate assigns an id and timestamp when the caller left them unset
func (s *SearchLog) BeforeCreate(tx *gorm.DB) error {
	s.ID, s.Timestamp = ensureIdentity(s.ID, s.Timestamp)
	return nil
}

// BeforeCreate assigns an id and timestamp when the caller left them unset
func (l *SystemLog) BeforeCreate(tx *gorm.DB) error {
	l.ID, l.Timestamp = ensureIdentity(l.ID, l.Timestamp)
	return nil
}

func ensureIdentity(id uuid.UUID, ts time.Time) (uuid.UUID, time.Time) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return id, ts
}

// TableName returns the table name for WeatherLog
func (WeatherLog) TableName() string {
	return "weather_logs"
}

// TableName returns the table name for SearchLog
func (SearchLog) TableName() string {
	return "user_searches"
}

// TableName returns the table name for SystemLog
func (SystemLog) TableName() string {
	return "system_logs"
}
