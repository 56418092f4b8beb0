// Package testserver assembles a fully wired PaperBase instance over
// temporary databases for integration and transport tests.
package testserver

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/session"
	"github.com/paperbase/paperbase/internal/sqlite"
	"github.com/paperbase/paperbase/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	Catalog  *sqlite.DB
	DataDir  string
	Projects *project.Service
	Papers   *paper.Service
	Sessions *session.Manager
}

// New builds a server backed by a temp catalog database and temp
// project data directory, both cleaned up with the test.
func New(t *testing.T) *TestServer {
	t.Helper()

	dir := t.TempDir()
	db, err := sqlite.New(filepath.Join(dir, "paperbase.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	dataDir := filepath.Join(dir, "projects")

	catalogRepo := sqlite.NewProjectRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	sessions := session.NewManager(catalogRepo, nil)

	activitySvc := activity.NewService(activityRepo, nil)
	projectSvc := project.NewService(catalogRepo, sqlite.NewProvisioner(), sessions, activitySvc, dataDir, nil)
	paperSvc := paper.NewService(sessions, activitySvc, nil)
	compoundSvc := compound.NewService(sessions, projectSvc, activitySvc, nil)

	server := httptest.NewServer(transport.NewServer(projectSvc, paperSvc, compoundSvc, activitySvc, 50<<20, nil))

	ts := &TestServer{
		Server:   server,
		Catalog:  db,
		DataDir:  dataDir,
		Projects: projectSvc,
		Papers:   paperSvc,
		Sessions: sessions,
	}

	t.Cleanup(func() {
		server.Close()
		sessions.Invalidate()
		db.Close()
	})

	return ts
}

// URL returns the base URL of the test server.
func (ts *TestServer) URL() string {
	return ts.Server.URL
}
