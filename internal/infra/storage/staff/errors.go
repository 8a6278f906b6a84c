package staff

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
