package transport

import (
	"errors"
	"net/http"

	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/repository"
)

// statusFor maps domain errors to HTTP status codes: missing entities
// are 404, rejected input and precondition failures are 400, anything
// else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, paper.ErrPaperNotFound),
		errors.Is(err, compound.ErrCompoundNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, paper.ErrInvalidInput),
		errors.Is(err, compound.ErrInvalidInput),
		errors.Is(err, repository.ErrInvalidInput),
		errors.Is(err, repository.ErrNoActiveProject),
		errors.Is(err, repository.ErrForeignKeyViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
