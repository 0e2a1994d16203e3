package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/latoulicious/weather-dominator/pkg/apperrors"
	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/database/migration"
	"github.com/latoulicious/weather-dominator/pkg/database/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	record *Record
	err    error
}

func (s stubFetcher) Current(ctx context.Context, city string) (*Record, error) {
	return s.record, s.err
}

type failingRecorder struct{}

func (failingRecorder) RecordWeather(ctx context.Context, record *Record) error {
	return errors.New("database is locked")
}

func TestServiceRecordsHistoryAndSearches(t *testing.T) {
	db, err := database.NewGormDB(database.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, migration.RunMigration(db, testLogger()))

	recorder := NewDBRecorder(repository.NewWeatherLogRepository(db))
	searches := repository.NewSearchLogRepository(db)
	service := NewService(NewClient(Options{}, testLogger()), recorder, searches, "session-1", testLogger())

	report, err := service.Lookup(context.Background(), "Springfield")
	require.NoError(t, err)
	assert.Equal(t, SourceDemo, report.Source)

	history, err := recorder.History(context.Background(), "springfield", 5)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "demo", history[0].Source)
	assert.Equal(t, report.Condition, history[0].Description)

	var count int64
	require.NoError(t, db.Table("user_searches").Where("search_type = ? AND session_id = ?", "weather", "session-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestServiceFlagsSevereWeather(t *testing.T) {
	service := NewService(stubFetcher{record: &Record{City: "Miami", Condition: "Hurricane Warning", Units: UnitsImperial, WindSpeed: 80}}, nil, nil, "", testLogger())

	report, err := service.Lookup(context.Background(), "Miami")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hurricane", "Warning", "High Winds"}, report.Severe)
}

func TestServiceIgnoresRecorderFailures(t *testing.T) {
	service := NewService(NewClient(Options{}, testLogger()), failingRecorder{}, nil, "", testLogger())

	report, err := service.Lookup(context.Background(), "Boston")
	require.NoError(t, err)
	assert.NotNil(t, report.Record)
}

func TestServiceSurfacesInvalidInput(t *testing.T) {
	service := NewService(NewClient(Options{}, testLogger()), nil, nil, "", testLogger())

	_, err := service.Lookup(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
