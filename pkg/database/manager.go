package database

import (
	"context"
	"fmt"
	"time"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"gorm.io/gorm"
)

// Stats holds per-table row counts
type Stats struct {
	Characters         int64 `json:"characters"`
	Vehicles           int64 `json:"vehicles"`
	Weapons            int64 `json:"weapons"`
	Locations          int64 `json:"locations"`
	VehicleRelations   int64 `json:"character_vehicle_relations"`
	WeaponRelations    int64 `json:"character_weapon_relations"`
	WeatherLogs        int64 `json:"weather_logs"`
	UserSearches       int64 `json:"user_searches"`
	SystemLogs         int64 `json:"system_logs"`
	LiveWeatherQueries int64 `json:"live_weather_queries"`
	DemoWeatherQueries int64 `json:"demo_weather_queries"`
}

// PruneResult reports how many rows each table lost
type PruneResult struct {
	WeatherLogs  int64 `json:"weather_logs"`
	UserSearches int64 `json:"user_searches"`
	SystemLogs   int64 `json:"system_logs"`
}

// Total returns the number of rows deleted across tables
func (p PruneResult) Total() int64 {
	return p.WeatherLogs + p.UserSearches + p.SystemLogs
}

// Manager provides maintenance operations over the whole schema
type Manager struct {
	db  *gorm.DB
	now func() time.Time
}

// NewManager creates a new database manager
func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db, now: time.Now}
}

// DB exposes the handle for repositories built by callers
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	return Close(m.db)
}

// Stats returns row counts for every table
func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	db := m.db.WithContext(ctx)
	stats := &Stats{}

	counts := []struct {
		model interface{}
		where string
		dest  *int64
	}{
		{&models.Character{}, "", &stats.Characters},
		{&models.Vehicle{}, "", &stats.Vehicles},
		{&models.Weapon{}, "", &stats.Weapons},
		{&models.Location{}, "", &stats.Locations},
		{&models.CharacterVehicleRelation{}, "", &stats.VehicleRelations},
		{&models.CharacterWeaponRelation{}, "", &stats.WeaponRelations},
		{&models.WeatherLog{}, "", &stats.WeatherLogs},
		{&models.SearchLog{}, "", &stats.UserSearches},
		{&models.SystemLog{}, "", &stats.SystemLogs},
		{&models.WeatherLog{}, "source = 'live'", &stats.LiveWeatherQueries},
		{&models.WeatherLog{}, "source = 'demo'", &stats.DemoWeatherQueries},
	}

	for _, c := range counts {
		query := db.Model(c.model)
		if c.where != "" {
			query = query.Where(c.where)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
	}

	return stats, nil
}

// PruneOlderThan deletes log rows older than the given number of days.
// Seed tables are never touched. Zero days is a no-op.
func (m *Manager) PruneOlderThan(ctx context.Context, days int) (PruneResult, error) {
	var result PruneResult
	if days <= 0 {
		return result, nil
	}

	cutoff := m.now().UTC().AddDate(0, 0, -days)
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		targets := []struct {
			model interface{}
			dest  *int64
		}{
			{&models.WeatherLog{}, &result.WeatherLogs},
			{&models.SearchLog{}, &result.UserSearches},
			{&models.SystemLog{}, &result.SystemLogs},
		}
		for _, t := range targets {
			res := tx.Where("timestamp < ?", cutoff).Delete(t.model)
			if res.Error != nil {
				return res.Error
			}
			*t.dest = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return PruneResult{}, fmt.Errorf("failed to prune old data: %w", err)
	}

	return result, nil
}
