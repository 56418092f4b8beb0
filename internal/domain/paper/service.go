package paper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/repository"
)

// Service handles paper operations against the active project.
type Service struct {
	sessions   Sessions
	activities ActivityLog
	logger     *slog.Logger
}

// NewService creates a new paper service.
func NewService(sessions Sessions, activities ActivityLog, logger *slog.Logger) *Service {
	return &Service{sessions: sessions, activities: activities, logger: logger}
}

// Create validates the metadata and stores the paper with its PDF
// bytes verbatim. The bytes themselves are not inspected.
func (s *Service) Create(ctx context.Context, meta Metadata, pdf []byte) (*Paper, error) {
	if err := ValidateMetadata(meta); err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: no PDF file uploaded", ErrInvalidInput)
	}

	store, err := s.sessions.PaperStore(ctx)
	if err != nil {
		return nil, err
	}

	p := &Paper{
		Title:   meta.Title,
		Authors: meta.Authors,
		Year:    meta.Year,
		Journal: meta.Journal,
		Volume:  meta.Volume,
	}
	if err := store.Create(ctx, p, pdf); err != nil {
		return nil, fmt.Errorf("creating paper: %w", err)
	}

	s.logActivity(ctx, activity.ActionPaperUploaded, p.ID, fmt.Sprintf("uploaded paper %q", p.Title))
	return p, nil
}

// List returns all papers in the active project, metadata only.
func (s *Service) List(ctx context.Context) ([]Paper, error) {
	store, err := s.sessions.PaperStore(ctx)
	if err != nil {
		return nil, err
	}
	papers, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing papers: %w", err)
	}
	return papers, nil
}

// GetBinary returns the stored PDF bytes for a paper.
func (s *Service) GetBinary(ctx context.Context, id int64) ([]byte, error) {
	store, err := s.sessions.PaperStore(ctx)
	if err != nil {
		return nil, err
	}
	data, err := store.GetBinary(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("getting paper binary: %w", err)
	}
	return data, nil
}

// Update overwrites a paper's bibliographic metadata. The stored
// binary is not replaceable.
func (s *Service) Update(ctx context.Context, id int64, meta Metadata) error {
	if err := ValidateMetadata(meta); err != nil {
		return err
	}

	store, err := s.sessions.PaperStore(ctx)
	if err != nil {
		return err
	}

	p := &Paper{
		ID:      id,
		Title:   meta.Title,
		Authors: meta.Authors,
		Year:    meta.Year,
		Journal: meta.Journal,
		Volume:  meta.Volume,
	}
	if err := store.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaperNotFound
		}
		return fmt.Errorf("updating paper: %w", err)
	}

	s.logActivity(ctx, activity.ActionPaperUpdated, id, fmt.Sprintf("updated paper %q", meta.Title))
	return nil
}

// Delete removes a paper together with its compounds in a single
// storage transaction, so no orphaned compound rows survive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	store, err := s.sessions.PaperStore(ctx)
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaperNotFound
		}
		return fmt.Errorf("deleting paper: %w", err)
	}

	s.logActivity(ctx, activity.ActionPaperDeleted, id, fmt.Sprintf("deleted paper %d", id))
	return nil
}

// Search performs a full-text match over title, authors and journal.
func (s *Service) Search(ctx context.Context, query string, opts SearchOptions) ([]Paper, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	store, err := s.sessions.PaperStore(ctx)
	if err != nil {
		return nil, err
	}
	papers, err := store.Search(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("searching papers: %w", err)
	}
	return papers, nil
}

func (s *Service) logActivity(ctx context.Context, action activity.Action, paperID int64, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, &activity.Entry{
		Entity:   "paper",
		EntityID: &paperID,
		Action:   action,
		Summary:  summary,
	})
}
