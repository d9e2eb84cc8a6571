package main

import (
	"log"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/database"
)

// migrate opens the configured database file and applies the schema.
// Useful for provisioning a data directory before first boot.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// New applies the schema migration as part of opening the store.
	if _, err := database.New(cfg); err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	log.Printf("Migrations applied to %s", cfg.DBPath)
}
