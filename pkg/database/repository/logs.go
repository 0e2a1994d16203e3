package repository

import (
	"context"
	"time"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WeatherLogRepository handles the weather_logs table
type WeatherLogRepository struct {
	db *gorm.DB
}

func NewWeatherLogRepository(db *gorm.DB) *WeatherLogRepository {
	return &WeatherLogRepository{db: db}
}

func (r *WeatherLogRepository) Save(ctx context.Context, log *models.WeatherLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// Recent returns the latest entries, newest first. An empty city returns all cities.
func (r *WeatherLogRepository) Recent(ctx context.Context, city string, limit int) ([]models.WeatherLog, error) {
	var logs []models.WeatherLog
	query := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit)
	if city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// SearchLogRepository handles the user_searches table
type SearchLogRepository struct {
	db *gorm.DB
}

func NewSearchLogRepository(db *gorm.DB) *SearchLogRepository {
	return &SearchLogRepository{db: db}
}

func (r *SearchLogRepository) Save(ctx context.Context, log *models.SearchLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// RecordSearch stores one query against a component
func (r *SearchLogRepository) RecordSearch(ctx context.Context, searchType, query string, resultsFound int, sessionID string) error {
	return r.Save(ctx, &models.SearchLog{
		SearchType:   searchType,
		Query:        query,
		ResultsFound: resultsFound,
		SessionID:    sessionID,
	})
}

// SearchTypeCount is the number of searches per search_type
type SearchTypeCount struct {
	SearchType string `json:"search_type"`
	Total      int64  `json:"total"`
	Found      int64  `json:"found"`
}

// StatsByType aggregates searches per type since the given time
func (r *SearchLogRepository) StatsByType(ctx context.Context, since time.Time) ([]SearchTypeCount, error) {
	var stats []SearchTypeCount
	err := r.db.WithContext(ctx).Model(&models.SearchLog{}).
		Select("search_type, COUNT(*) AS total, SUM(CASE WHEN results_found > 0 THEN 1 ELSE 0 END) AS found").
		Where("timestamp >= ?", since).
		Group("search_type").
		Order("search_type").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// SystemLogRepository persists log entries to system_logs
type SystemLogRepository struct {
	db *gorm.DB
}

var _ logging.LogRepository = (*SystemLogRepository)(nil)

func NewSystemLogRepository(db *gorm.DB) *SystemLogRepository {
	return &SystemLogRepository{db: db}
}

// SaveLog implements logging.LogRepository
func (r *SystemLogRepository) SaveLog(entry logging.LogEntry) error {
	return r.db.Create(&models.SystemLog{
		Component: entry.Component,
		Level:     entry.Level,
		Message:   entry.Message,
		Error:     entry.Error,
		Fields:    datatypes.JSONMap(sanitizeFields(entry.Fields)),
		SessionID: entry.SessionID,
	}).Error
}

func (r *SystemLogRepository) Recent(ctx context.Context, level string, limit int) ([]models.SystemLog, error) {
	var logs []models.SystemLog
	query := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// sanitizeFields stringifies values that JSON cannot encode, such as errors
func sanitizeFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case error:
			out[k] = val.Error()
		case time.Duration:
			out[k] = val.String()
		default:
			out[k] = v
		}
	}
	return out
}
