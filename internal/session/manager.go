// Package session owns the single cached connection to the active
// project's database. All access to the cached-handle slot goes
// through a mutex, so a project switch racing an in-flight request can
// never hand out a handle pointed at the wrong project.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/repository"
	"github.com/paperbase/paperbase/internal/sqlite"
)

// Manager lazily opens and caches exactly one project database handle.
type Manager struct {
	mu      sync.Mutex
	catalog project.Repository
	db      *sqlite.ProjectDB
	logger  *slog.Logger
}

// NewManager creates a connection manager over the project catalog.
func NewManager(catalog project.Repository, logger *slog.Logger) *Manager {
	return &Manager{catalog: catalog, logger: logger}
}

// Acquire returns the handle for the active project, opening and
// caching it on first use. It fails with repository.ErrNoActiveProject
// when no project is activated.
func (m *Manager) Acquire(ctx context.Context) (*sqlite.ProjectDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	id, err := m.catalog.ActiveID(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading active project: %w", err)
	}
	if id == nil {
		return nil, repository.ErrNoActiveProject
	}

	proj, err := m.catalog.Get(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNoActiveProject
		}
		return nil, fmt.Errorf("resolving active project: %w", err)
	}

	db, err := sqlite.OpenProject(proj.Path)
	if err != nil {
		return nil, fmt.Errorf("opening project database: %w", err)
	}
	// Tolerate files created or replaced out-of-band; the schema
	// statements are all idempotent.
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing project database: %w", err)
	}

	if m.logger != nil {
		m.logger.Info("opened project database", "project_id", *id, "path", proj.Path)
	}

	m.db = db
	return m.db, nil
}

// Invalidate closes and drops the cached handle. It is idempotent and
// must be called by every catalog mutation that can change which data
// a connection points to. In-flight statements on the old handle are
// allowed to finish; new requests open the fresh path.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return
	}
	if err := m.db.Close(); err != nil && m.logger != nil {
		m.logger.Warn("failed to close project database", "error", err)
	}
	m.db = nil
}

// PaperStore implements paper.Sessions.
func (m *Manager) PaperStore(ctx context.Context) (paper.Repository, error) {
	db, err := m.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return sqlite.NewPaperRepository(db), nil
}

// CompoundStore implements compound.Sessions.
func (m *Manager) CompoundStore(ctx context.Context) (compound.Repository, error) {
	db, err := m.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return sqlite.NewCompoundRepository(db), nil
}
