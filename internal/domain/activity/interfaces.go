package activity

import "context"

// Repository provides persistence for activity entries.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
	List(ctx context.Context, opts ListOptions) ([]Entry, error)
}

// ListOptions provides filtering options for listing activity
type ListOptions struct {
	ProjectID *int64
	Entity    string
	Limit     int
	Offset    int
}
