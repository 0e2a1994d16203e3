package weather

import (
	"context"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/database/repository"
	"gorm.io/datatypes"
)

// DBRecorder persists records to weather_logs
type DBRecorder struct {
	repo *repository.WeatherLogRepository
}

var _ Recorder = (*DBRecorder)(nil)

func NewDBRecorder(repo *repository.WeatherLogRepository) *DBRecorder {
	return &DBRecorder{repo: repo}
}

// RecordWeather implements Recorder
func (d *DBRecorder) RecordWeather(ctx context.Context, record *Record) error {
	log := &models.WeatherLog{
		City:          record.City,
		Country:       record.Country,
		Temperature:   record.Temperature,
		FeelsLike:     record.FeelsLike,
		Humidity:      record.Humidity,
		Pressure:      record.Pressure,
		Description:   record.Condition,
		WindSpeed:     record.WindSpeed,
		WindDirection: record.WindDirection,
		Visibility:    record.Visibility,
		Units:         record.Units,
		Source:        string(record.Source),
	}
	if record.RawData != nil {
		log.RawData = datatypes.JSONMap(record.RawData)
	}
	return d.repo.Save(ctx, log)
}

// History returns the latest logged observations, newest first
func (d *DBRecorder) History(ctx context.Context, city string, limit int) ([]models.WeatherLog, error) {
	if limit <= 0 {
		limit = 10
	}
	return d.repo.Recent(ctx, city, limit)
}
