package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/latoulicious/weather-dominator/pkg/database/migration"
	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewGormDB(DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, migration.RunMigration(db, logging.NewZapLoggerFrom("test", zap.NewNop())))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestNewGormDBRejectsBadInput(t *testing.T) {
	_, err := NewGormDB(DriverSQLite, "")
	assert.Error(t, err)

	_, err = NewGormDB("oracle", "whatever")
	assert.Error(t, err)
}

func TestNewGormDBCreatesSQLiteDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/test.db"
	db, err := NewGormDB(DriverSQLite, path)
	require.NoError(t, err)
	defer Close(db)
	assert.NoError(t, Ping(db))
}

func TestStatsCountsEveryTable(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Character{Name: "Duke", Faction: "G.I. Joe"}).Error)
	require.NoError(t, db.Create(&models.Vehicle{Name: "VAMP", Faction: "G.I. Joe"}).Error)
	require.NoError(t, db.Create(&models.WeatherLog{City: "Tokyo", Source: "live"}).Error)
	require.NoError(t, db.Create(&models.WeatherLog{City: "Springfield", Source: "demo"}).Error)
	require.NoError(t, db.Create(&models.WeatherLog{City: "Denver", Source: "demo"}).Error)

	stats, err := NewManager(db).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Characters)
	assert.Equal(t, int64(1), stats.Vehicles)
	assert.Equal(t, int64(0), stats.Weapons)
	assert.Equal(t, int64(3), stats.WeatherLogs)
	assert.Equal(t, int64(1), stats.LiveWeatherQueries)
	assert.Equal(t, int64(2), stats.DemoWeatherQueries)
}

func TestPruneOlderThanKeepsRecentRowsAndSeedData(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&models.Character{Name: "Duke"}).Error)
	require.NoError(t, db.Create(&models.WeatherLog{City: "Old", Source: "demo", Timestamp: now.AddDate(0, 0, -40)}).Error)
	require.NoError(t, db.Create(&models.WeatherLog{City: "New", Source: "demo", Timestamp: now.AddDate(0, 0, -1)}).Error)
	require.NoError(t, db.Create(&models.SearchLog{SearchType: "character", Query: "Duke", Timestamp: now.AddDate(0, 0, -31)}).Error)
	require.NoError(t, db.Create(&models.SystemLog{Component: "weather", Level: "WARN", Message: "demo", Timestamp: now.AddDate(0, 0, -60)}).Error)

	manager := NewManager(db)
	manager.now = func() time.Time { return now }

	result, err := manager.PruneOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.WeatherLogs)
	assert.Equal(t, int64(1), result.UserSearches)
	assert.Equal(t, int64(1), result.SystemLogs)
	assert.Equal(t, int64(3), result.Total())

	stats, err := manager.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.WeatherLogs)
	assert.Equal(t, int64(1), stats.Characters)
}

func TestPruneZeroDaysIsNoop(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.WeatherLog{City: "Old", Source: "demo", Timestamp: time.Now().AddDate(-1, 0, 0)}).Error)

	result, err := NewManager(db).PruneOlderThan(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, result.Total())
}
