package location

import "errors"

var (
	// ErrLocationNotFound is returned when the location does not exist
	ErrLocationNotFound = errors.New("location.repository: location not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("location.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("location.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("location.repository: failed to scan row")
)
