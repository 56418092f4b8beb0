package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/paperbase/paperbase/internal/domain/paper"
)

// Search performs a full-text match over paper title, authors and
// journal. The query is framed as an FTS5 phrase so arbitrary user
// input cannot break the MATCH syntax.
func (r *PaperRepository) Search(ctx context.Context, query string, opts paper.SearchOptions) ([]paper.Paper, error) {
	baseQuery := `
		SELECT p.id, p.title, p.authors, p.year, p.journal, p.volume
		FROM pdfs_fts
		JOIN pdfs p ON p.id = pdfs_fts.rowid
		WHERE pdfs_fts MATCH ?
		ORDER BY rank
	`

	args := []any{ftsPhrase(query)}

	if opts.Limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, opts.Limit)
	} else if opts.Offset > 0 {
		// SQLite accepts OFFSET only after a LIMIT; -1 means unbounded.
		baseQuery += " LIMIT -1"
	}
	if opts.Offset > 0 {
		baseQuery += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search papers: %w", err)
	}
	defer rows.Close()

	var papers []paper.Paper
	for rows.Next() {
		var p paper.Paper
		if err := rows.Scan(&p.ID, &p.Title, &p.Authors, &p.Year, &p.Journal, &p.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		papers = append(papers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search rows: %w", err)
	}

	return papers, nil
}

func ftsPhrase(query string) string {
	return `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
}
