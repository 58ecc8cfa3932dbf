package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"parking-search-service/internal/adapters/repositories"
	"parking-search-service/internal/config"
	"parking-search-service/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the listings schema and loads a catalog file into
// Postgres. Seeding is idempotent: re-running it updates listings in place.
func main() {
	seedFlag := flag.String("seed", "", "path to the listings catalog JSON (overrides SEED_PATH)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := *seedFlag
	if seedPath == "" {
		seedPath = config.Get("SEED_PATH", "data/listings.json")
	}

	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding listings from %s...", seedPath)
	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
