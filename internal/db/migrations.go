package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS translation_records (
  id INTEGER PRIMARY KEY,
  phrase TEXT NOT NULL,
  translation TEXT NOT NULL,
  model TEXT NOT NULL,
  source TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_translation_records_created_at
  ON translation_records(created_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add source column for databases created before the tag
	// existed (safe to probe on every start).
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('translation_records') WHERE name = 'source'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check source column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE translation_records ADD COLUMN source TEXT NOT NULL DEFAULT 'candor'`); err != nil {
			return fmt.Errorf("add source column: %w", err)
		}
	}

	return nil
}
