package paper

import (
	"context"

	"github.com/paperbase/paperbase/internal/domain/activity"
)

// Repository provides persistence for papers inside one project database.
type Repository interface {
	Create(ctx context.Context, p *Paper, data []byte) error
	List(ctx context.Context) ([]Paper, error)
	Get(ctx context.Context, id int64) (*Paper, error)
	GetBinary(ctx context.Context, id int64) ([]byte, error)
	Update(ctx context.Context, p *Paper) error
	// Delete removes the paper and its compounds in one transaction.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, opts SearchOptions) ([]Paper, error)
}

// Sessions resolves the active project to a paper repository, opening
// and caching the underlying connection as needed.
type Sessions interface {
	PaperStore(ctx context.Context) (Repository, error)
}

// ActivityLog records paper mutations in the audit trail.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
