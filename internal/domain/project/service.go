package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/repository"
	"github.com/uniplaces/carbon"
)

// Service handles project catalog operations.
type Service struct {
	repo        Repository
	provisioner Provisioner
	sessions    Invalidator
	activities  ActivityLog
	dataDir     string
	logger      *slog.Logger
}

// NewService creates a new project service. Project database files are
// allocated under dataDir.
func NewService(repo Repository, provisioner Provisioner, sessions Invalidator, activities ActivityLog, dataDir string, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		provisioner: provisioner,
		sessions:    sessions,
		activities:  activities,
		dataDir:     dataDir,
		logger:      logger,
	}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name   string
	Fields []Field
}

// ListResult pairs the project summaries with the active pointer.
type ListResult struct {
	Projects []Summary `json:"projects"`
	ActiveID *int64    `json:"activeProject"`
}

// List returns all projects and the currently active project id.
func (s *Service) List(ctx context.Context) (*ListResult, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	activeID, err := s.repo.ActiveID(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading active project: %w", err)
	}
	return &ListResult{Projects: summaries, ActiveID: activeID}, nil
}

// Get fetches a full project record including its declared fields.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// Create validates the request, allocates and initializes a new project
// database file, inserts the catalog row, and activates the new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := ValidateFields(req.Fields); err != nil {
		return nil, err
	}

	path := s.allocatePath(req.Name)
	if err := s.provisioner.Provision(ctx, path, req.Fields); err != nil {
		return nil, fmt.Errorf("provisioning project database: %w", err)
	}

	proj := &Project{
		Name:      req.Name,
		Path:      path,
		CreatedAt: carbon.Now().DateTimeString(),
		Fields:    req.Fields,
	}
	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if err := s.repo.SetActiveID(ctx, &proj.ID); err != nil {
		return nil, fmt.Errorf("activating project: %w", err)
	}
	s.sessions.Invalidate()

	s.logActivity(ctx, activity.ActionProjectCreated, proj.ID, fmt.Sprintf("created project %q", proj.Name))
	return proj, nil
}

// Update overwrites catalog metadata only. The underlying per-project
// schema is not migrated.
func (s *Service) Update(ctx context.Context, id int64, name string, fields []Field) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateFields(fields); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, name, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("updating project: %w", err)
	}

	// The cached connection may carry stale metadata for the active
	// project, so force a fresh open on next access.
	if s.isActive(ctx, id) {
		s.sessions.Invalidate()
	}

	s.logActivity(ctx, activity.ActionProjectUpdated, id, fmt.Sprintf("updated project %q", name))
	return nil
}

// Delete removes the catalog row only. The project's database file is
// deliberately left on disk; the store never deletes user data files.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if s.isActive(ctx, id) {
		if err := s.repo.SetActiveID(ctx, nil); err != nil {
			return fmt.Errorf("clearing active project: %w", err)
		}
		s.sessions.Invalidate()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	s.logActivity(ctx, activity.ActionProjectDeleted, id, fmt.Sprintf("deleted project %d", id))
	return nil
}

// Activate sets the active-project pointer and drops the cached
// connection so the next access opens the newly active database.
func (s *Service) Activate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.SetActiveID(ctx, &id); err != nil {
		return fmt.Errorf("activating project: %w", err)
	}
	s.sessions.Invalidate()

	s.logActivity(ctx, activity.ActionProjectActivated, id, fmt.Sprintf("activated project %d", id))
	return nil
}

// Active returns the active project, or nil when none is set.
func (s *Service) Active(ctx context.Context) (*Project, error) {
	id, err := s.repo.ActiveID(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading active project: %w", err)
	}
	if id == nil {
		return nil, nil
	}

	proj, err := s.repo.Get(ctx, *id)
	if err != nil {
		// A dangling pointer behaves the same as no active project.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting active project: %w", err)
	}
	return proj, nil
}

// ActiveFields returns the declared compound fields of the active
// project, failing when no project is active.
func (s *Service) ActiveFields(ctx context.Context) ([]Field, error) {
	proj, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	if proj == nil {
		return nil, repository.ErrNoActiveProject
	}
	return proj.Fields, nil
}

func (s *Service) isActive(ctx context.Context, id int64) bool {
	activeID, err := s.repo.ActiveID(ctx)
	if err != nil || activeID == nil {
		return false
	}
	return *activeID == id
}

func (s *Service) logActivity(ctx context.Context, action activity.Action, projectID int64, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, &activity.Entry{
		ProjectID: &projectID,
		Entity:    "project",
		EntityID:  &projectID,
		Action:    action,
		Summary:   summary,
	})
}

// allocatePath derives a sanitized, timestamp-suffixed database file
// path from the project name.
func (s *Service) allocatePath(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, name)
	filename := fmt.Sprintf("%s_%d.db", sanitized, time.Now().UnixMilli())
	return filepath.Join(s.dataDir, filename)
}
