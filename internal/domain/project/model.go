package project

// FieldType is the value type of a user-defined compound attribute
type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldString FieldType = "string"
)

// Field describes one user-defined compound attribute. The list of
// fields is fixed at project creation and drives client-side form
// generation as well as chemical_data validation on write.
type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// Project represents an isolated storage namespace: its own database
// file of papers and compounds plus a declared compound field schema.
type Project struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	CreatedAt string  `json:"created_at"`
	Fields    []Field `json:"fields,omitempty"`
}

// Summary is a lightweight representation for listing (fields omitted)
type Summary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	CreatedAt string `json:"created_at"`
}
