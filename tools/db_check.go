package tools

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/database/migration"
	"gorm.io/gorm"
)

// slowQuery is the latency above which DBCheck warns
const slowQuery = 5 * time.Second

// DBCheck runs connectivity, schema and transaction checks against db and
// writes a human-readable report to w. It returns the first hard failure.
func DBCheck(ctx context.Context, db *gorm.DB, w io.Writer) error {
	fmt.Fprintf(w, "=== %s Database Connectivity Check ===\n", db.Dialector.Name())

	fmt.Fprintln(w, "🏓 Testing database ping...")
	if err := database.Ping(db); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	fmt.Fprintln(w, "✅ Database ping successful")

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database connection: %w", err)
	}
	stats := sqlDB.Stats()
	fmt.Fprintln(w, "📊 Connection pool:")
	fmt.Fprintf(w, "   - Open connections: %d\n", stats.OpenConnections)
	fmt.Fprintf(w, "   - In use: %d\n", stats.InUse)
	fmt.Fprintf(w, "   - Idle: %d\n", stats.Idle)

	fmt.Fprintln(w, "🗃️  Checking existing tables...")
	missing := missingTables(db)
	if len(missing) > 0 {
		fmt.Fprintf(w, "   ⚠️  Missing tables (will be created during migration): %v\n", missing)
	} else {
		fmt.Fprintln(w, "   ✅ All expected tables exist")
		counts, err := database.NewManager(db).Stats(ctx)
		if err != nil {
			return fmt.Errorf("failed to count rows: %w", err)
		}
		fmt.Fprintf(w, "   📊 %d characters, %d vehicles, %d weapons, %d locations, %d weather logs\n",
			counts.Characters, counts.Vehicles, counts.Weapons, counts.Locations, counts.WeatherLogs)
	}

	fmt.Fprintln(w, "🔄 Testing transaction capability...")
	if err := testTransactionCapability(ctx, db); err != nil {
		return fmt.Errorf("transaction test failed: %w", err)
	}
	fmt.Fprintln(w, "✅ Transaction capability verified")

	start := time.Now()
	var result int
	if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error; err != nil {
		return fmt.Errorf("performance test failed: %w", err)
	}
	duration := time.Since(start)
	fmt.Fprintf(w, "⚡ Simple query completed in %v\n", duration)
	if duration > slowQuery {
		fmt.Fprintln(w, "⚠️  Query took longer than 5 seconds - check network latency")
	}

	fmt.Fprintln(w, "=== Database Connectivity Check Complete ===")
	return nil
}

func missingTables(db *gorm.DB) []string {
	var missing []string
	for _, model := range migration.Models() {
		if db.Migrator().HasTable(model) {
			continue
		}
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			missing = append(missing, fmt.Sprintf("%T", model))
			continue
		}
		missing = append(missing, stmt.Schema.Table)
	}
	return missing
}

// testTransactionCapability writes to a temporary table and rolls back
func testTransactionCapability(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := tx.Exec("CREATE TEMPORARY TABLE test_transaction (test_data TEXT)").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create temporary table: %w", err)
	}

	if err := tx.Exec("INSERT INTO test_transaction (test_data) VALUES ('test')").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert test data: %w", err)
	}

	var count int64
	if err := tx.Raw("SELECT COUNT(*) FROM test_transaction").Scan(&count).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to count test data: %w", err)
	}
	if count != 1 {
		tx.Rollback()
		return fmt.Errorf("unexpected count in transaction: expected 1, got %d", count)
	}

	if err := tx.Rollback().Error; err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
