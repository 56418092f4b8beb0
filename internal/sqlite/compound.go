package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/repository"
)

// CompoundRepository implements compound.Repository against one
// project's database file.
type CompoundRepository struct {
	db *DB
}

// NewCompoundRepository creates a new CompoundRepository bound to a
// project database handle.
func NewCompoundRepository(pdb *ProjectDB) *CompoundRepository {
	return &CompoundRepository{db: pdb.DB()}
}

// Create stores a compound; chemical_data is serialized as JSON.
func (r *CompoundRepository) Create(ctx context.Context, c *compound.Compound) error {
	chemicalData, err := marshalChemicalData(c.ChemicalData)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO compounds (pdf_id, smiles, inchi, image, chemical_data)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		c.PDFID,
		c.SMILES,
		c.InChI,
		c.Image,
		chemicalData,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create compound: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get compound id: %w", err)
	}
	c.ID = id

	return nil
}

// Get retrieves a compound by id with chemical_data deserialized.
func (r *CompoundRepository) Get(ctx context.Context, id int64) (*compound.Compound, error) {
	query := `
		SELECT id, pdf_id, smiles, inchi, image, chemical_data
		FROM compounds
		WHERE id = ?
	`

	var c compound.Compound
	var chemicalData string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PDFID, &c.SMILES, &c.InChI, &c.Image, &chemicalData,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get compound: %w", err)
	}

	if err := json.Unmarshal([]byte(chemicalData), &c.ChemicalData); err != nil {
		return nil, fmt.Errorf("failed to parse chemical data: %w", err)
	}

	return &c, nil
}

// ListForPaper returns all compounds attached to a paper.
func (r *CompoundRepository) ListForPaper(ctx context.Context, pdfID int64) ([]compound.Compound, error) {
	query := `
		SELECT id, pdf_id, smiles, inchi, image, chemical_data
		FROM compounds
		WHERE pdf_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, pdfID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compounds: %w", err)
	}
	defer rows.Close()

	var compounds []compound.Compound
	for rows.Next() {
		var c compound.Compound
		var chemicalData string
		if err := rows.Scan(&c.ID, &c.PDFID, &c.SMILES, &c.InChI, &c.Image, &chemicalData); err != nil {
			return nil, fmt.Errorf("failed to scan compound: %w", err)
		}
		if err := json.Unmarshal([]byte(chemicalData), &c.ChemicalData); err != nil {
			return nil, fmt.Errorf("failed to parse chemical data: %w", err)
		}
		compounds = append(compounds, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating compound rows: %w", err)
	}

	return compounds, nil
}

// Update overwrites a compound record.
func (r *CompoundRepository) Update(ctx context.Context, c *compound.Compound) error {
	chemicalData, err := marshalChemicalData(c.ChemicalData)
	if err != nil {
		return err
	}

	query := `
		UPDATE compounds
		SET pdf_id = ?, smiles = ?, inchi = ?, image = ?, chemical_data = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		c.PDFID, c.SMILES, c.InChI, c.Image, chemicalData, c.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update compound: %w", err)
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

// Delete removes a compound.
func (r *CompoundRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM compounds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete compound: %w", err)
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

func marshalChemicalData(data map[string]any) (string, error) {
	if data == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize chemical data: %w", err)
	}
	return string(raw), nil
}
