package task

import "errors"

var (
	// ErrTaskNotFound is returned when the task does not exist
	ErrTaskNotFound = errors.New("task.repository: task not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("task.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("task.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("task.repository: failed to scan row")
)
