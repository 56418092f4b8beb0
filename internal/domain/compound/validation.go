package compound

import (
	"fmt"

	"github.com/paperbase/paperbase/internal/domain/project"
)

// ValidateChemicalData checks a chemical_data mapping against the
// owning project's declared fields: every key must be declared, and
// every value must match the declared type. Declared fields may be
// absent; extra keys are rejected.
func ValidateChemicalData(data map[string]any, fields []project.Field) error {
	declared := make(map[string]project.FieldType, len(fields))
	for _, f := range fields {
		declared[f.Name] = f.Type
	}

	for key, value := range data {
		fieldType, ok := declared[key]
		if !ok {
			return fmt.Errorf("%w: undeclared chemical data field %q", ErrInvalidInput, key)
		}
		if value == nil {
			continue
		}
		switch fieldType {
		case project.FieldNumber:
			switch value.(type) {
			case float64, float32, int, int64:
			default:
				return fmt.Errorf("%w: field %q expects a number", ErrInvalidInput, key)
			}
		case project.FieldString:
			if _, ok := value.(string); !ok {
				return fmt.Errorf("%w: field %q expects a string", ErrInvalidInput, key)
			}
		}
	}
	return nil
}
