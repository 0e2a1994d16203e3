package migration

import (
	"testing"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRunMigrationAndReset(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migration_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	logger := logging.NewZapLoggerFrom("migration", zap.NewNop())

	require.NoError(t, RunMigration(db, logger))
	// idempotent
	require.NoError(t, RunMigration(db, logger))

	for _, table := range []string{
		"characters", "vehicles", "weapons", "locations",
		"character_vehicle_relations", "character_weapon_relations",
		"weather_logs", "user_searches", "system_logs",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.CharacterVehicleRelation{}, "idx_character_vehicle_relation"))
	assert.True(t, db.Migrator().HasIndex(&models.Character{}, "Faction"))
	assert.True(t, db.Migrator().HasIndex(&models.Character{}, "idx_characters_name_lower"))

	require.NoError(t, db.Create(&models.Character{Name: "Duke"}).Error)
	assert.Error(t, db.Create(&models.Character{Name: "DUKE"}).Error)

	require.NoError(t, Reset(db, logger))
	assert.False(t, db.Migrator().HasTable("characters"))
}
