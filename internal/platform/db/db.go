package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Open connects to the catalog database through the pgx stdlib driver. The
// pool is sized for the read-mostly catalog workload, and the connection
// check is bounded so a bad DATABASE_URL fails the boot instead of hanging it.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}
