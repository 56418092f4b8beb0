package paper

import (
	"fmt"
	"strings"
)

// ValidateMetadata validates the bibliographic fields required to
// create or update a paper. Journal and volume are optional.
func ValidateMetadata(meta Metadata) error {
	if strings.TrimSpace(meta.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(meta.Authors) == "" {
		return fmt.Errorf("%w: authors is required", ErrInvalidInput)
	}
	if meta.Year <= 0 {
		return fmt.Errorf("%w: year must be a positive integer", ErrInvalidInput)
	}
	return nil
}
