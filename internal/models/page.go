package models

// PageRef is one snapshot entry for an existing Notion row. A ref created
// mid-run for a just-added title carries an empty PageID.
type PageRef struct {
	PageID    string
	Completed bool
}

// CreatePageRequest carries everything needed to create one Notion row.
// DueDate is an Eastern wall-clock string; HasDueDate=false drops the
// property from the payload entirely.
type CreatePageRequest struct {
	Title      string
	Course     string
	Completed  bool
	DueDate    string
	HasDueDate bool
}
