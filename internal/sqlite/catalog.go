package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/repository"
)

const activeProjectKey = "active_project"

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new catalog row and assigns the generated id.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	fieldsJSON, err := json.Marshal(proj.Fields)
	if err != nil {
		return fmt.Errorf("failed to serialize fields: %w", err)
	}

	query := `
		INSERT INTO projects (name, path, fields, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Name,
		proj.Path,
		string(fieldsJSON),
		proj.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("project path already in use: %w", repository.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get project id: %w", err)
	}
	proj.ID = id

	return nil
}

// Get retrieves a full project record including parsed fields.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT id, name, path, fields, created_at
		FROM projects
		WHERE id = ?
	`

	var proj project.Project
	var fieldsJSON string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.Name,
		&proj.Path,
		&fieldsJSON,
		&proj.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &proj.Fields); err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}

	return &proj, nil
}

// List returns all projects without their field schemas.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	query := `
		SELECT id, name, path, created_at
		FROM projects
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var summary project.Summary
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Path,
			&summary.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// Update overwrites name and fields of a catalog row.
func (r *ProjectRepository) Update(ctx context.Context, id int64, name string, fields []project.Field) error {
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to serialize fields: %w", err)
	}

	query := `UPDATE projects SET name = ?, fields = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, name, string(fieldsJSON), id)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a catalog row. The project's database file is never
// touched.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ActiveID returns the active project id, or nil when none is set.
func (r *ProjectRepository) ActiveID(ctx context.Context) (*int64, error) {
	var value sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, activeProjectKey,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read active project: %w", err)
	}
	if !value.Valid || value.String == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(value.String, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt active project pointer: %w", err)
	}
	return &id, nil
}

// SetActiveID stores or clears the active project pointer.
func (r *ProjectRepository) SetActiveID(ctx context.Context, id *int64) error {
	var value any
	if id != nil {
		value = strconv.FormatInt(*id, 10)
	}

	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := r.db.ExecContext(ctx, query, activeProjectKey, value); err != nil {
		return fmt.Errorf("failed to set active project: %w", err)
	}

	return nil
}
