package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/repository"
)

func newCatalog(t *testing.T) *ProjectRepository {
	t.Helper()
	return NewProjectRepository(NewTestDB(t))
}

func TestProjectCreateAndGet(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	proj := &project.Project{
		Name:      "Solar Cells",
		Path:      "projects/solar_cells.db",
		CreatedAt: "2026-08-29 10:00:00",
		Fields: []project.Field{
			{Name: "pce", Type: project.FieldNumber},
			{Name: "notes", Type: project.FieldString},
		},
	}

	err := repo.Create(ctx, proj)
	require.NoError(t, err)
	require.NotZero(t, proj.ID)

	got, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	require.Equal(t, "Solar Cells", got.Name)
	require.Equal(t, "projects/solar_cells.db", got.Path)
	require.Len(t, got.Fields, 2)
	require.Equal(t, project.FieldNumber, got.Fields[0].Type)
}

func TestProjectGetNotFound(t *testing.T) {
	repo := newCatalog(t)

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectDuplicatePath(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	first := &project.Project{Name: "One", Path: "projects/same.db", CreatedAt: "2026-08-29 10:00:00"}
	require.NoError(t, repo.Create(ctx, first))

	second := &project.Project{Name: "Two", Path: "projects/same.db", CreatedAt: "2026-08-29 10:00:01"}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestProjectList(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	names := []string{"Alpha", "Beta", "Gamma"}
	for i, name := range names {
		proj := &project.Project{
			Name:      name,
			Path:      "projects/" + name + ".db",
			CreatedAt: "2026-08-29 10:00:00",
		}
		require.NoError(t, repo.Create(ctx, proj))
		require.Equal(t, int64(i+1), proj.ID)
	}

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "Alpha", projects[0].Name)
	require.Equal(t, "Gamma", projects[2].Name)
}

func TestProjectUpdate(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	proj := &project.Project{Name: "Before", Path: "projects/p.db", CreatedAt: "2026-08-29 10:00:00"}
	require.NoError(t, repo.Create(ctx, proj))

	fields := []project.Field{{Name: "yield", Type: project.FieldNumber}}
	require.NoError(t, repo.Update(ctx, proj.ID, "After", fields))

	got, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	require.Equal(t, "After", got.Name)
	require.Len(t, got.Fields, 1)
}

func TestProjectUpdateNotFound(t *testing.T) {
	repo := newCatalog(t)

	err := repo.Update(context.Background(), 42, "Ghost", nil)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectDelete(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	proj := &project.Project{Name: "Doomed", Path: "projects/doomed.db", CreatedAt: "2026-08-29 10:00:00"}
	require.NoError(t, repo.Create(ctx, proj))

	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.Get(ctx, proj.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, proj.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivePointer(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	id, err := repo.ActiveID(ctx)
	require.NoError(t, err)
	require.Nil(t, id, "fresh catalog should have no active project")

	proj := &project.Project{Name: "Active", Path: "projects/active.db", CreatedAt: "2026-08-29 10:00:00"}
	require.NoError(t, repo.Create(ctx, proj))

	require.NoError(t, repo.SetActiveID(ctx, &proj.ID))

	id, err = repo.ActiveID(ctx)
	require.NoError(t, err)
	require.NotNil(t, id)
	require.Equal(t, proj.ID, *id)

	// clearing stores NULL rather than removing the row
	require.NoError(t, repo.SetActiveID(ctx, nil))

	id, err = repo.ActiveID(ctx)
	require.NoError(t, err)
	require.Nil(t, id)
}
