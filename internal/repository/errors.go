// Package repository holds the storage error sentinels shared between
// the domain services and the sqlite implementations. Store contracts
// themselves live with the domain packages that consume them.
package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrNoActiveProject is returned when an operation needs an active
	// project but no project is currently activated
	ErrNoActiveProject = errors.New("no active project")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
