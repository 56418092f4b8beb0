package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/paperbase/paperbase/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for the catalog
// database.
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log inserts a new activity entry
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	query := `
		INSERT INTO activity_log (project_id, entity, entity_id, action, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.ProjectID,
		entry.Entity,
		entry.EntityID,
		entry.Action,
		entry.Summary,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}

	return nil
}

// List returns activity entries matching the given filters, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, project_id, entity, entity_id, action, summary, created_at
		FROM activity_log
	`

	var args []any
	var conditions []string

	if opts.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.Entity != "" {
		conditions = append(conditions, "entity = ?")
		args = append(args, opts.Entity)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	} else if opts.Offset > 0 {
		// SQLite accepts OFFSET only after a LIMIT; -1 means unbounded.
		query += " LIMIT -1"
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		var projectID sql.NullInt64
		var entityID sql.NullInt64
		if err := rows.Scan(
			&entry.ID,
			&projectID,
			&entry.Entity,
			&entityID,
			&entry.Action,
			&entry.Summary,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		if projectID.Valid {
			entry.ProjectID = &projectID.Int64
		}
		if entityID.Valid {
			entry.EntityID = &entityID.Int64
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}
