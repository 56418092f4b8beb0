package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/uniplaces/carbon"
)

// Service handles activity log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Log appends an entry to the audit trail, stamping it with the current
// time if missing. Callers treat logging as best-effort; failures are
// reported but must not fail the triggering operation.
func (s *Service) Log(ctx context.Context, entry *Entry) error {
	if entry == nil || strings.TrimSpace(entry.Summary) == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = carbon.Now().DateTimeString()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to log activity", "action", entry.Action, "error", err)
		}
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// Recent lists activity entries, newest first.
func (s *Service) Recent(ctx context.Context, opts ListOptions) ([]Entry, error) {
	return s.repo.List(ctx, opts)
}
