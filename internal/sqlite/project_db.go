package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paperbase/paperbase/internal/domain/project"
)

// ProjectDB wraps the connection to one project's database file, which
// holds that project's papers and compounds.
type ProjectDB struct {
	db   *DB
	Path string
}

// OpenProject opens (creating if absent) a project database file.
func OpenProject(path string) (*ProjectDB, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	return &ProjectDB{db: &DB{db}, Path: path}, nil
}

// DB exposes the underlying handle for repositories.
func (p *ProjectDB) DB() *DB {
	return p.db
}

// Close closes the project database handle.
func (p *ProjectDB) Close() error {
	return p.db.Close()
}

// RunMigrations creates the per-project schema if it doesn't exist.
func (p *ProjectDB) RunMigrations() error {
	migration := `
CREATE TABLE IF NOT EXISTS pdfs (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    title   TEXT,
    authors TEXT,
    year    INTEGER,
    journal TEXT,
    volume  TEXT,
    data    BLOB
);

CREATE TABLE IF NOT EXISTS compounds (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    pdf_id        INTEGER,
    smiles        TEXT,
    inchi         TEXT,
    image         TEXT,
    chemical_data TEXT,
    FOREIGN KEY(pdf_id) REFERENCES pdfs(id)
);
CREATE INDEX IF NOT EXISTS idx_compounds_pdf ON compounds(pdf_id);

-- Declared compound field schema, recorded in the project file itself
-- so the file stays self-describing when detached from the catalog
CREATE TABLE IF NOT EXISTS schema_fields (
    name TEXT NOT NULL,
    type TEXT NOT NULL CHECK(type IN ('number','string'))
);

-- Full-text search over paper metadata (SQLite FTS5)
CREATE VIRTUAL TABLE IF NOT EXISTS pdfs_fts USING fts5(
    title,
    authors,
    journal,
    content='pdfs',
    content_rowid='id'
);

CREATE TRIGGER IF NOT EXISTS pdfs_ai AFTER INSERT ON pdfs BEGIN
    INSERT INTO pdfs_fts(rowid, title, authors, journal)
    VALUES (new.id, new.title, new.authors, new.journal);
END;

CREATE TRIGGER IF NOT EXISTS pdfs_ad AFTER DELETE ON pdfs BEGIN
    INSERT INTO pdfs_fts(pdfs_fts, rowid, title, authors, journal)
    VALUES ('delete', old.id, old.title, old.authors, old.journal);
END;

CREATE TRIGGER IF NOT EXISTS pdfs_au AFTER UPDATE ON pdfs BEGIN
    INSERT INTO pdfs_fts(pdfs_fts, rowid, title, authors, journal)
    VALUES ('delete', old.id, old.title, old.authors, old.journal);
    INSERT INTO pdfs_fts(rowid, title, authors, journal)
    VALUES (new.id, new.title, new.authors, new.journal);
END;
`

	if _, err := p.db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run project migrations: %w", err)
	}

	return nil
}

// SchemaFields reads back the declared field list stored in the
// project file.
func (p *ProjectDB) SchemaFields(ctx context.Context) ([]project.Field, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT name, type FROM schema_fields`)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema fields: %w", err)
	}
	defer rows.Close()

	var fields []project.Field
	for rows.Next() {
		var f project.Field
		if err := rows.Scan(&f.Name, &f.Type); err != nil {
			return nil, fmt.Errorf("failed to scan schema field: %w", err)
		}
		fields = append(fields, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schema field rows: %w", err)
	}

	return fields, nil
}

// Provisioner implements project.Provisioner: it creates and
// initializes a fresh project database file.
type Provisioner struct{}

// NewProvisioner creates a project database provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Provision creates the project file at path with the paper/compound
// schema and records the declared field list.
func (pr *Provisioner) Provision(ctx context.Context, path string, fields []project.Field) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create project data dir: %w", err)
		}
	}

	db, err := OpenProject(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	for _, f := range fields {
		if _, err := db.db.ExecContext(ctx,
			`INSERT INTO schema_fields (name, type) VALUES (?, ?)`,
			f.Name, f.Type,
		); err != nil {
			return fmt.Errorf("failed to record schema field %q: %w", f.Name, err)
		}
	}

	return nil
}
