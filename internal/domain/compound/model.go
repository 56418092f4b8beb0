package compound

// Compound is a chemical-structure record linked to one paper.
// ChemicalData carries the project-defined custom attributes; it is
// serialized as JSON for storage and parsed back on read. Chemical
// validity of SMILES/InChI is delegated to an external service.
type Compound struct {
	ID           int64          `json:"id"`
	PDFID        int64          `json:"pdf_id"`
	SMILES       string         `json:"smiles"`
	InChI        string         `json:"inchi"`
	Image        string         `json:"image"`
	ChemicalData map[string]any `json:"chemical_data"`
}
