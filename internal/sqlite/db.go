package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the catalog database connection. The catalog holds the
// project list, the active-project pointer and the activity log; raw
// paper/compound data lives in per-project files (see ProjectDB).
type DB struct {
	*sql.DB
}

// New opens the catalog database at the given path.
func New(dataSourceName string) (*DB, error) {
	db, err := open(dataSourceName)
	if err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func open(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single pooled connection keeps the PRAGMA effective and sidesteps
	// SQLite's single-writer locking under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// RunMigrations creates the catalog schema if it doesn't exist.
func (db *DB) RunMigrations() error {
	migration := `
-- Project catalog
CREATE TABLE IF NOT EXISTS projects (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    path       TEXT NOT NULL UNIQUE,
    fields     TEXT NOT NULL,
    created_at TEXT NOT NULL
);

-- Key/value settings; row 'active_project' holds the active pointer
CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT
);

-- Audit trail of catalog and store mutations
CREATE TABLE IF NOT EXISTS activity_log (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER,
    entity     TEXT NOT NULL,
    entity_id  INTEGER,
    action     TEXT NOT NULL,
    summary    TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activity_project ON activity_log(project_id);
CREATE INDEX IF NOT EXISTS idx_activity_entity ON activity_log(entity);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
