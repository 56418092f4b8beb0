package compound

import "errors"

var (
	// ErrCompoundNotFound indicates the compound doesn't exist.
	ErrCompoundNotFound = errors.New("compound not found")
	// ErrInvalidInput indicates invalid compound input.
	ErrInvalidInput = errors.New("invalid compound input")
)
