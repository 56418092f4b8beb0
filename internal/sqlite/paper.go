package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/repository"
)

// PaperRepository implements paper.Repository against one
// project's database file.
type PaperRepository struct {
	db *DB
}

// NewPaperRepository creates a new PaperRepository bound to a project
// database handle.
func NewPaperRepository(pdb *ProjectDB) *PaperRepository {
	return &PaperRepository{db: pdb.DB()}
}

// Create stores the paper metadata and the raw PDF bytes verbatim.
func (r *PaperRepository) Create(ctx context.Context, p *paper.Paper, data []byte) error {
	query := `
		INSERT INTO pdfs (title, authors, year, journal, volume, data)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.Authors,
		p.Year,
		p.Journal,
		p.Volume,
		data,
	)
	if err != nil {
		return fmt.Errorf("failed to create paper: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get paper id: %w", err)
	}
	p.ID = id

	return nil
}

// List returns all papers, binary excluded.
func (r *PaperRepository) List(ctx context.Context) ([]paper.Paper, error) {
	query := `
		SELECT id, title, authors, year, journal, volume
		FROM pdfs
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list papers: %w", err)
	}
	defer rows.Close()

	var papers []paper.Paper
	for rows.Next() {
		var p paper.Paper
		if err := rows.Scan(&p.ID, &p.Title, &p.Authors, &p.Year, &p.Journal, &p.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan paper: %w", err)
		}
		papers = append(papers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating paper rows: %w", err)
	}

	return papers, nil
}

// Get retrieves one paper's metadata.
func (r *PaperRepository) Get(ctx context.Context, id int64) (*paper.Paper, error) {
	query := `
		SELECT id, title, authors, year, journal, volume
		FROM pdfs
		WHERE id = ?
	`

	var p paper.Paper
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Authors, &p.Year, &p.Journal, &p.Volume,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get paper: %w", err)
	}

	return &p, nil
}

// GetBinary returns the stored PDF bytes.
func (r *PaperRepository) GetBinary(ctx context.Context, id int64) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM pdfs WHERE id = ?`, id).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get paper binary: %w", err)
	}

	return data, nil
}

// Update overwrites a paper's metadata; the binary is untouched.
func (r *PaperRepository) Update(ctx context.Context, p *paper.Paper) error {
	query := `
		UPDATE pdfs
		SET title = ?, authors = ?, year = ?, journal = ?, volume = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.Authors, p.Year, p.Journal, p.Volume, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update paper: %w", err)
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

// Delete removes a paper and its compounds inside one transaction so
// no compound rows can outlive their paper.
func (r *PaperRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM compounds WHERE pdf_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete compounds: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM pdfs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete paper: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
