package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Dialect selects placeholder and DDL flavour.
type Dialect string

const (
	Sqlite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Initialize the saved route and polyline cache schema.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	expiresType := "INTEGER"
	if dialect == Postgres {
		expiresType = "TIMESTAMPTZ"
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSavedRoutesQuery := `
	CREATE TABLE IF NOT EXISTS saved_routes (
		name TEXT PRIMARY KEY,
		waypoints TEXT NOT NULL
	);
	`

	createPolylineCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS polyline_cache (
        chunk_key TEXT PRIMARY KEY,
        points TEXT NOT NULL,
        expires_at %s NOT NULL
    );
	`, expiresType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_polyline_cache_expires_at
    ON polyline_cache(expires_at);
	`

	statements := []string{
		createSavedRoutesQuery,
		createPolylineCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type RouteSeed struct {
	Name      string   `json:"name"`
	Waypoints []string `json:"waypoints"`
}

// Populate the database with saved routes from a JSON file.
// Waypoints are stored raw; they are validated when the route is resolved.
func SeedFromJSON(db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed routes: read %q: %w", jsonPath, err)
	}

	var data []RouteSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed routes: parse json: %w", err)
	}

	return SeedRoutes(db, dialect, data)
}

func SeedRoutes(db *sql.DB, dialect Dialect, data []RouteSeed) error {
	rows := make([]RouteSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed routes: item at index %d: name cannot be empty", i+1)
		}
		if len(item.Waypoints) == 0 {
			return fmt.Errorf("seed routes: route %q: waypoints cannot be empty", name)
		}
		rows = append(rows, RouteSeed{Name: name, Waypoints: item.Waypoints})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed routes: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO saved_routes (
		name,
		waypoints
	)
	VALUES (?, ?);
	`
	if dialect == Postgres {
		query = `
	INSERT INTO saved_routes (name, waypoints)
	VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE
	SET waypoints = EXCLUDED.waypoints;
	`
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed routes: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		encoded, err := json.Marshal(r.Waypoints)
		if err != nil {
			return fmt.Errorf("seed routes: encode waypoints of %q: %w", r.Name, err)
		}
		if _, err := stmt.Exec(r.Name, string(encoded)); err != nil {
			return fmt.Errorf("seed routes: insert name=%q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed routes: commit tx: %w", err)
	}

	return nil
}
