package main

import (
	"flag"
	"log"
	"os"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/database"
)

func main() {
	migrationsDir := flag.String("dir", os.Getenv("MIGRATIONS_DIR"), "directory holding .sql migration files; empty uses auto-migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, *migrationsDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	log.Println("All migrations applied successfully.")
}
