package paper

// Paper is a bibliographic record with an attached PDF binary. The
// binary is excluded from list responses for payload-size reasons and
// fetched separately by id.
type Paper struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Year    int    `json:"year"`
	Journal string `json:"journal"`
	Volume  string `json:"volume"`
}

// Metadata carries the editable bibliographic fields of a paper.
type Metadata struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Year    int    `json:"year"`
	Journal string `json:"journal"`
	Volume  string `json:"volume"`
}

// SearchOptions provides paging for full-text search
type SearchOptions struct {
	Limit  int
	Offset int
}
