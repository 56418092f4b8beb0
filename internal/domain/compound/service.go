package compound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/repository"
)

// Service handles compound operations against the active project.
type Service struct {
	sessions   Sessions
	fields     FieldSource
	activities ActivityLog
	logger     *slog.Logger
}

// NewService creates a new compound service.
func NewService(sessions Sessions, fields FieldSource, activities ActivityLog, logger *slog.Logger) *Service {
	return &Service{sessions: sessions, fields: fields, activities: activities, logger: logger}
}

// CreateRequest describes a compound creation or update payload.
type CreateRequest struct {
	PDFID        int64          `json:"pdf_id"`
	SMILES       string         `json:"smiles"`
	InChI        string         `json:"inchi"`
	Image        string         `json:"image"`
	ChemicalData map[string]any `json:"chemical_data"`
}

// Create validates chemical_data against the active project's declared
// fields and stores the compound. The referenced paper must exist in
// the same project database.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Compound, error) {
	if req.PDFID <= 0 {
		return nil, fmt.Errorf("%w: pdf_id is required", ErrInvalidInput)
	}
	if err := s.validateChemicalData(ctx, req.ChemicalData); err != nil {
		return nil, err
	}

	store, err := s.sessions.CompoundStore(ctx)
	if err != nil {
		return nil, err
	}

	c := &Compound{
		PDFID:        req.PDFID,
		SMILES:       req.SMILES,
		InChI:        req.InChI,
		Image:        req.Image,
		ChemicalData: req.ChemicalData,
	}
	if err := store.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: pdf_id references no paper", ErrInvalidInput)
		}
		return nil, fmt.Errorf("creating compound: %w", err)
	}

	s.logActivity(ctx, activity.ActionCompoundCreated, c.ID, fmt.Sprintf("created compound for paper %d", c.PDFID))
	return c, nil
}

// ListForPaper returns all compounds attached to a paper, with
// chemical_data deserialized back to a mapping.
func (s *Service) ListForPaper(ctx context.Context, pdfID int64) ([]Compound, error) {
	store, err := s.sessions.CompoundStore(ctx)
	if err != nil {
		return nil, err
	}
	compounds, err := store.ListForPaper(ctx, pdfID)
	if err != nil {
		return nil, fmt.Errorf("listing compounds: %w", err)
	}
	return compounds, nil
}

// Update overwrites a compound record.
func (s *Service) Update(ctx context.Context, id int64, req CreateRequest) error {
	if req.PDFID <= 0 {
		return fmt.Errorf("%w: pdf_id is required", ErrInvalidInput)
	}
	if err := s.validateChemicalData(ctx, req.ChemicalData); err != nil {
		return err
	}

	store, err := s.sessions.CompoundStore(ctx)
	if err != nil {
		return err
	}

	c := &Compound{
		ID:           id,
		PDFID:        req.PDFID,
		SMILES:       req.SMILES,
		InChI:        req.InChI,
		Image:        req.Image,
		ChemicalData: req.ChemicalData,
	}
	if err := store.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCompoundNotFound
		}
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return fmt.Errorf("%w: pdf_id references no paper", ErrInvalidInput)
		}
		return fmt.Errorf("updating compound: %w", err)
	}

	s.logActivity(ctx, activity.ActionCompoundUpdated, id, fmt.Sprintf("updated compound %d", id))
	return nil
}

// Delete removes a compound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	store, err := s.sessions.CompoundStore(ctx)
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCompoundNotFound
		}
		return fmt.Errorf("deleting compound: %w", err)
	}

	s.logActivity(ctx, activity.ActionCompoundDeleted, id, fmt.Sprintf("deleted compound %d", id))
	return nil
}

func (s *Service) validateChemicalData(ctx context.Context, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	fields, err := s.fields.ActiveFields(ctx)
	if err != nil {
		return err
	}
	return ValidateChemicalData(data, fields)
}

func (s *Service) logActivity(ctx context.Context, action activity.Action, compoundID int64, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, &activity.Entry{
		Entity:   "compound",
		EntityID: &compoundID,
		Action:   action,
		Summary:  summary,
	})
}
