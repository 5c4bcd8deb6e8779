package db

import (
	"database/sql"
	"fmt"
)

// migration is one schema version step. Steps apply exactly once, in order,
// each inside its own transaction; the applied version is recorded in
// schema_version so re-running Migrate is a no-op.
type migration struct {
	version int
	name    string
	stmts   []string
}

// migrations is the ordered schema history. Never reorder or edit a released
// step; append a new version instead.
var migrations = []migration{
	{
		version: 1,
		name:    "core tables",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS sites (
				id              TEXT PRIMARY KEY,
				site_number     TEXT NOT NULL UNIQUE,
				name            TEXT NOT NULL,
				location        TEXT NOT NULL DEFAULT '',
				notes           TEXT NOT NULL DEFAULT ''
			)`,

			`CREATE TABLE IF NOT EXISTS projects (
				id   TEXT PRIMARY KEY,
				code TEXT NOT NULL,
				name TEXT NOT NULL
			)`,

			`CREATE TABLE IF NOT EXISTS visits (
				id               TEXT PRIMARY KEY,
				site_id          TEXT NOT NULL,
				type             TEXT NOT NULL,
				date             TEXT NOT NULL,
				status           TEXT NOT NULL DEFAULT 'scheduled'
				                 CHECK(status IN ('scheduled','in-progress','completed')),
				checklist        TEXT NOT NULL DEFAULT '[]',
				isf              TEXT NOT NULL DEFAULT '[]',
				progress_percent INTEGER NOT NULL DEFAULT 0
				                 CHECK(progress_percent BETWEEN 0 AND 100)
			)`,

			`CREATE INDEX IF NOT EXISTS idx_visits_site ON visits(site_id)`,
			`CREATE INDEX IF NOT EXISTS idx_visits_status ON visits(status)`,

			`CREATE TABLE IF NOT EXISTS site_achievements (
				id           TEXT PRIMARY KEY,
				date         TEXT NOT NULL,
				project_id   TEXT NOT NULL,
				category     TEXT NOT NULL DEFAULT 'General',
				title        TEXT NOT NULL,
				impact       TEXT NOT NULL DEFAULT '',
				review_ready INTEGER NOT NULL DEFAULT 0
			)`,

			`CREATE INDEX IF NOT EXISTS idx_achievements_date ON site_achievements(date)`,

			`CREATE TABLE IF NOT EXISTS timesheet_entries (
				id             TEXT PRIMARY KEY,
				date           TEXT NOT NULL,
				project_id     TEXT NOT NULL,
				activity_type  TEXT NOT NULL,
				hours          REAL NOT NULL DEFAULT 0,
				achievement_id TEXT,
				notes          TEXT NOT NULL DEFAULT ''
			)`,

			`CREATE INDEX IF NOT EXISTS idx_timesheets_date ON timesheet_entries(date)`,
		},
	},
	{
		version: 2,
		name:    "visit mode",
		stmts: []string{
			`ALTER TABLE visits ADD COLUMN mode TEXT NOT NULL DEFAULT 'On-site'`,
		},
	},
	{
		version: 3,
		name:    "site logistics",
		stmts: []string{
			`ALTER TABLE sites ADD COLUMN best_hotel TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE sites ADD COLUMN best_restaurant TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE sites ADD COLUMN parking_spot TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE sites ADD COLUMN door_code TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE sites ADD COLUMN primary_contact TEXT NOT NULL DEFAULT ''`,
		},
	},
	{
		version: 4,
		name:    "toolkit and leads",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS user_tools (
				id       TEXT PRIMARY KEY,
				name     TEXT NOT NULL,
				type     TEXT NOT NULL DEFAULT 'calculator',
				config   TEXT NOT NULL DEFAULT '{}',
				added_at TEXT NOT NULL
			)`,

			`CREATE TABLE IF NOT EXISTS leads (
				id          TEXT PRIMARY KEY,
				name        TEXT NOT NULL,
				email       TEXT NOT NULL,
				captured_at TEXT NOT NULL
			)`,
		},
	},
}

// Migrate brings the schema up to the latest version. Each pending step runs
// in a transaction and bumps schema_version on success; already-applied steps
// are skipped by version check rather than attempted-and-caught.
func Migrate(database *sql.DB) error {
	if _, err := database.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version    INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var current sql.NullInt64
	if err := database.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if current.Valid && int64(m.version) <= current.Int64 {
			continue
		}
		if err := applyMigration(database, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

func applyMigration(database *sql.DB, m migration) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range m.stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`INSERT INTO schema_version (version, name) VALUES (?, ?)`, m.version, m.name); err != nil {
		return fmt.Errorf("recording version: %w", err)
	}
	return tx.Commit()
}

// SchemaVersion reports the highest applied migration version, 0 for a fresh
// database that has not been migrated.
func SchemaVersion(database *sql.DB) (int, error) {
	var current sql.NullInt64
	if err := database.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&current); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	if !current.Valid {
		return 0, nil
	}
	return int(current.Int64), nil
}
