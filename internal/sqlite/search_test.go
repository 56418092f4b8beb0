package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paperbase/paperbase/internal/domain/paper"
)

func TestSearchByTitle(t *testing.T) {
	repo, _ := newPaperRepo(t)
	ctx := context.Background()

	insertPaper(t, repo, "Perovskite solar cell efficiency", []byte("a"))
	insertPaper(t, repo, "Organic photovoltaics review", []byte("b"))
	insertPaper(t, repo, "Tandem perovskite devices", []byte("c"))

	results, err := repo.Search(ctx, "perovskite", paper.SearchOptions{Limit: 50})
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = repo.Search(ctx, "photovoltaics", paper.SearchOptions{Limit: 50})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Organic photovoltaics review", results[0].Title)
}

func TestSearchByAuthorsAndJournal(t *testing.T) {
	repo, _ := newPaperRepo(t)
	ctx := context.Background()

	p := &paper.Paper{
		Title:   "Untitled dataset",
		Authors: "Yamamoto, K.; Chen, L.",
		Year:    2023,
		Journal: "Science Advances",
	}
	require.NoError(t, repo.Create(ctx, p, []byte("pdf")))

	results, err := repo.Search(ctx, "Yamamoto", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = repo.Search(ctx, "Science Advances", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestSearchNoMatch(t *testing.T) {
	repo, _ := newPaperRepo(t)

	insertPaper(t, repo, "Something", []byte("a"))

	results, err := repo.Search(context.Background(), "absent", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, results)
}

// queries containing FTS operators are treated as literal phrases
func TestSearchOperatorCharacters(t *testing.T) {
	repo, _ := newPaperRepo(t)
	ctx := context.Background()

	insertPaper(t, repo, "Results AND discussion", []byte("a"))

	results, err := repo.Search(ctx, `"quoted" OR injection`, paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = repo.Search(ctx, "Results AND discussion", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestSearchReflectsUpdates(t *testing.T) {
	repo, _ := newPaperRepo(t)
	ctx := context.Background()

	id := insertPaper(t, repo, "Graphene synthesis", []byte("a"))

	p := &paper.Paper{
		ID:      id,
		Title:   "Borophene synthesis",
		Authors: "Doe, J.",
		Year:    2024,
	}
	require.NoError(t, repo.Update(ctx, p))

	results, err := repo.Search(ctx, "Graphene", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = repo.Search(ctx, "Borophene", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NoError(t, repo.Delete(ctx, id))

	results, err = repo.Search(ctx, "Borophene", paper.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearchPagination(t *testing.T) {
	repo, _ := newPaperRepo(t)
	ctx := context.Background()

	for _, title := range []string{"catalyst one", "catalyst two", "catalyst three"} {
		insertPaper(t, repo, title, []byte("x"))
	}

	first, err := repo.Search(ctx, "catalyst", paper.SearchOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)

	rest, err := repo.Search(ctx, "catalyst", paper.SearchOptions{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)

	// an offset with no limit must still be valid SQL
	unbounded, err := repo.Search(ctx, "catalyst", paper.SearchOptions{Offset: 1})
	require.NoError(t, err)
	require.Len(t, unbounded, 2)
}
