package document

import "errors"

var (
	// ErrDocumentNotFound is returned when no document with the name exists
	ErrDocumentNotFound = errors.New("document.repository: document not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("document.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("document.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("document.repository: failed to scan row")
)
