package migration

import (
	"fmt"

	"github.com/latoulicious/weather-dominator/pkg/database/models"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"gorm.io/gorm"
)

// Models lists every table in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.Character{},
		&models.Vehicle{},
		&models.Weapon{},
		&models.Location{},
		&models.CharacterVehicleRelation{},
		&models.CharacterWeaponRelation{},
		&models.WeatherLog{},
		&models.SearchLog{},
		&models.SystemLog{},
	}
}

var namedTables = []string{"characters", "vehicles", "weapons", "locations"}

// RunMigration creates or updates all tables and indexes
func RunMigration(db *gorm.DB, logger logging.Logger) error {
	logger.Info("Running database migrations...", map[string]interface{}{
		"dialect": db.Dialector.Name(),
		"tables":  len(Models()),
	})

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// lookups match names case-insensitively, so uniqueness does too
	for _, table := range namedTables {
		stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_name_lower ON %s (LOWER(name))", table, table)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create case-insensitive name index on %s: %w", table, err)
		}
	}

	logger.Info("Migrations completed successfully", nil)
	return nil
}

// Reset drops every table, relations first
func Reset(db *gorm.DB, logger logging.Logger) error {
	all := Models()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	logger.Warn("All tables dropped", map[string]interface{}{
		"tables": len(all),
	})
	return nil
}
