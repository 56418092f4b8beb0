package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/testserver"
)

// TestResearchWorkflow walks the primary user journey: create a
// project with a declared field schema, upload a paper, attach a
// compound with custom data, search, and read everything back.
func TestResearchWorkflow(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()

	proj, err := ts.Projects.Create(ctx, project.CreateRequest{
		Name: "Solar Cells",
		Fields: []project.Field{
			{Name: "pce", Type: project.FieldNumber},
			{Name: "notes", Type: project.FieldString},
		},
	})
	require.NoError(t, err)
	require.FileExists(t, proj.Path, "creating a project provisions its database file")

	active, err := ts.Projects.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, proj.ID, active.ID, "a new project becomes active immediately")

	pdf := []byte("%PDF-1.4 solar cells")
	p, err := ts.Papers.Create(ctx, paper.Metadata{
		Title:   "Perovskite solar cell efficiency",
		Authors: "Doe, J.; Roe, R.",
		Year:    2024,
		Journal: "Nature Energy",
	}, pdf)
	require.NoError(t, err)

	papers, err := ts.Papers.List(ctx)
	require.NoError(t, err)
	require.Len(t, papers, 1)

	data, err := ts.Papers.GetBinary(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, pdf, data)

	results, err := ts.Papers.Search(ctx, "perovskite", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// compounds round-trip over the HTTP surface
	resp := postJSON(t, ts.URL()+"/api/compounds", fmt.Sprintf(
		`{"pdf_id": %d, "smiles": "CCO", "chemical_data": {"pce": 18.2, "notes": "champion device"}}`, p.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// TestProjectSwitchIsolation verifies papers stay confined to the
// project database they were uploaded into.
func TestProjectSwitchIsolation(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()

	alpha, err := ts.Projects.Create(ctx, project.CreateRequest{
		Name:   "Alpha",
		Fields: []project.Field{{Name: "pce", Type: project.FieldNumber}},
	})
	require.NoError(t, err)

	_, err = ts.Papers.Create(ctx, paper.Metadata{Title: "Alpha paper", Authors: "A", Year: 2024}, []byte("a"))
	require.NoError(t, err)

	// creating beta switches the active pointer away from alpha
	_, err = ts.Projects.Create(ctx, project.CreateRequest{
		Name:   "Beta",
		Fields: []project.Field{{Name: "pce", Type: project.FieldNumber}},
	})
	require.NoError(t, err)

	papers, err := ts.Papers.List(ctx)
	require.NoError(t, err)
	require.Empty(t, papers, "the fresh project starts empty")

	require.NoError(t, ts.Projects.Activate(ctx, alpha.ID))

	papers, err = ts.Papers.List(ctx)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	require.Equal(t, "Alpha paper", papers[0].Title)
}

// TestDeleteProjectKeepsFile verifies deleting a project removes only
// the catalog row; the database file stays on disk.
func TestDeleteProjectKeepsFile(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()

	proj, err := ts.Projects.Create(ctx, project.CreateRequest{
		Name:   "Keep My Data",
		Fields: []project.Field{{Name: "pce", Type: project.FieldNumber}},
	})
	require.NoError(t, err)
	require.FileExists(t, proj.Path)

	require.NoError(t, ts.Projects.Delete(ctx, proj.ID))

	_, err = ts.Projects.Get(ctx, proj.ID)
	require.ErrorIs(t, err, project.ErrProjectNotFound)

	_, statErr := os.Stat(proj.Path)
	require.NoError(t, statErr, "the database file must survive project deletion")

	active, err := ts.Projects.Active(ctx)
	require.NoError(t, err)
	require.Nil(t, active, "deleting the active project clears the pointer")
}

// TestPaperDeleteCascades verifies compounds vanish with their paper.
func TestPaperDeleteCascades(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()

	_, err := ts.Projects.Create(ctx, project.CreateRequest{
		Name:   "Cascade",
		Fields: []project.Field{{Name: "pce", Type: project.FieldNumber}},
	})
	require.NoError(t, err)

	p, err := ts.Papers.Create(ctx, paper.Metadata{Title: "Host", Authors: "A", Year: 2024}, []byte("pdf"))
	require.NoError(t, err)

	resp := postJSON(t, ts.URL()+"/api/compounds", fmt.Sprintf(`{"pdf_id": %d, "smiles": "CCO"}`, p.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, ts.Papers.Delete(ctx, p.ID))

	listResp, err := http.Get(fmt.Sprintf("%s/api/compounds/%d", ts.URL(), p.ID))
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var compounds []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&compounds))
	require.Empty(t, compounds, "no orphaned compounds survive")
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}
