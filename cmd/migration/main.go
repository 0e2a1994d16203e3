package main

import (
	"context"
	"flag"
	"log"

	"github.com/latoulicious/weather-dominator/internal/config"
	"github.com/latoulicious/weather-dominator/pkg/database"
	"github.com/latoulicious/weather-dominator/pkg/database/migration"
	"github.com/latoulicious/weather-dominator/pkg/intel"
	"github.com/latoulicious/weather-dominator/pkg/intel/seed"
	"github.com/latoulicious/weather-dominator/pkg/logging"
)

func main() {
	// Parse the command line arguments
	configPath := flag.String("config", "", "Path to a YAML or TOML config file")
	resetFlag := flag.Bool("reset", false, "Drop every table before migrating")
	seedFlag := flag.Bool("seed", false, "Populate the built-in G.I. Joe dataset after migrating")
	seedFile := flag.String("seed-file", "", "YAML or JSON dataset to seed instead of the built-in one")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loggers := logging.NewLoggerFactory(logging.Options{Level: "info", Format: cfg.Logger.Format})
	logger := loggers.CreateLogger("migration")
	defer func() { _ = loggers.Sync() }()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()
	log.Println("Connected to database")

	// Reset Flag
	if *resetFlag {
		log.Println("Resetting database...")
		if err := migration.Reset(db, logger); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Database reset successfully")
	}

	if err := migration.RunMigration(db, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed Flag
	if *seedFlag || *seedFile != "" {
		ds := seed.Default()
		if *seedFile != "" {
			if ds, err = seed.LoadFile(*seedFile); err != nil {
				log.Fatalf("Failed to load dataset: %v", err)
			}
		}

		store := intel.NewStore(db, nil, "migration", loggers.CreateLogger("intel"))
		result, err := store.Seed(context.Background(), ds)
		if err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Printf("Seeded %d characters, %d vehicles, %d weapons, %d locations",
			result.Characters, result.Vehicles, result.Weapons, result.Locations)
	}
}
