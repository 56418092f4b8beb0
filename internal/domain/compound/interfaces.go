package compound

import (
	"context"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/domain/project"
)

// Repository provides persistence for compounds inside one project database.
type Repository interface {
	Create(ctx context.Context, c *Compound) error
	Get(ctx context.Context, id int64) (*Compound, error)
	ListForPaper(ctx context.Context, pdfID int64) ([]Compound, error)
	Update(ctx context.Context, c *Compound) error
	Delete(ctx context.Context, id int64) error
}

// Sessions resolves the active project to a compound repository.
type Sessions interface {
	CompoundStore(ctx context.Context) (Repository, error)
}

// FieldSource exposes the active project's declared compound fields,
// used to validate chemical_data before persisting.
type FieldSource interface {
	ActiveFields(ctx context.Context) ([]project.Field, error)
}

// ActivityLog records compound mutations in the audit trail.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
