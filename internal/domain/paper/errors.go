package paper

import "errors"

var (
	// ErrPaperNotFound indicates the paper doesn't exist.
	ErrPaperNotFound = errors.New("paper not found")
	// ErrInvalidInput indicates invalid paper input.
	ErrInvalidInput = errors.New("invalid paper input")
)
