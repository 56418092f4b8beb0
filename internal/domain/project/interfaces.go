package project

import (
	"context"

	"github.com/paperbase/paperbase/internal/domain/activity"
)

// Repository provides persistence for the project catalog and the
// active-project pointer.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Summary, error)
	Update(ctx context.Context, id int64, name string, fields []Field) error
	Delete(ctx context.Context, id int64) error
	ActiveID(ctx context.Context) (*int64, error)
	SetActiveID(ctx context.Context, id *int64) error
}

// Provisioner initializes a new project database file at the given
// path with the paper/compound schema and the declared field list.
type Provisioner interface {
	Provision(ctx context.Context, path string, fields []Field) error
}

// Invalidator drops the cached project connection so the next access
// opens a fresh handle. Every catalog mutation that can change which
// data a connection points to must invalidate.
type Invalidator interface {
	Invalidate()
}

// ActivityLog records catalog mutations in the audit trail.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
