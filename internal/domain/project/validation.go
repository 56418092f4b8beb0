package project

import (
	"fmt"
	"strings"
)

// ValidateName validates a project name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	return nil
}

// ValidateFields validates a declared compound field schema.
func ValidateFields(fields []Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: at least one chemical data field is required", ErrInvalidInput)
	}
	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%w: field name is required", ErrInvalidInput)
		}
		if f.Type != FieldNumber && f.Type != FieldString {
			return fmt.Errorf("%w: unknown field type %q", ErrInvalidInput, f.Type)
		}
	}
	return nil
}
