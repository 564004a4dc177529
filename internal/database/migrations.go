package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration is one schema step. Migrations are embedded because the schema
// is small and ships with the binary.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_citations",
		SQL: `
			CREATE TABLE IF NOT EXISTS citations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				hour_bucket INTEGER NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				day_of_week TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_citations_day ON citations(day_of_week);
			CREATE INDEX IF NOT EXISTS idx_citations_hour ON citations(hour_bucket);
		`,
	},
	{
		Version: 2,
		Name:    "create_ingest_tasks",
		SQL: `
			CREATE TABLE IF NOT EXISTS ingest_tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				kind TEXT NOT NULL,
				status TEXT NOT NULL,
				source_path TEXT NOT NULL,
				export_path TEXT,
				year_from INTEGER NOT NULL DEFAULT 0,
				year_to INTEGER NOT NULL DEFAULT 0,
				total_rows INTEGER NOT NULL DEFAULT 0,
				kept_rows INTEGER NOT NULL DEFAULT 0,
				dropped_rows INTEGER NOT NULL DEFAULT 0,
				start_time TIMESTAMP,
				end_time TIMESTAMP,
				error_message TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// Migrate applies any migrations not yet recorded in the migrations table.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(
			"INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("[Database] Applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}
