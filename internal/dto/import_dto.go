package dto

// ImportRowError describes one validation failure on one CSV line.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportRowPreview is a parsed CSV line with defaults applied. Valid is false
// when the line carried at least one validation error.
type ImportRowPreview struct {
	Line    int            `json:"line"`
	Valid   bool           `json:"valid"`
	Errors  []string       `json:"errors,omitempty"`
	Student StudentRequest `json:"student"`
}

// ImportPreviewResponse is the dry-run result of a CSV upload. Nothing is
// persisted during a preview.
type ImportPreviewResponse struct {
	TotalRows  int                `json:"total_rows"`
	ValidRows  int                `json:"valid_rows"`
	ErrorRows  int                `json:"error_rows"`
	Rows       []ImportRowPreview `json:"rows"`
	RowErrors  []ImportRowError   `json:"row_errors,omitempty"`
	FileErrors []string           `json:"file_errors,omitempty"`
}

// ImportCommitResponse reports a completed import. Registration numbers are
// listed in the order rows appeared in the file.
type ImportCommitResponse struct {
	ImportedCount       int               `json:"imported_count"`
	SkippedCount        int               `json:"skipped_count"`
	RegistrationNumbers []string          `json:"registration_numbers"`
	Students            []StudentResponse `json:"students"`
	RowErrors           []ImportRowError  `json:"row_errors,omitempty"`
}
