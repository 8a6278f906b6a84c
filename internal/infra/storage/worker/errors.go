package worker

import "errors"

var (
	// ErrWorkerNotFound is returned when the worker credential does not exist
	ErrWorkerNotFound = errors.New("worker.repository: worker not found")

	// ErrUsernameTaken is returned on a unique-username violation
	ErrUsernameTaken = errors.New("worker.repository: username already taken")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("worker.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails
	ErrExecQuery = errors.New("worker.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("worker.repository: failed to scan row")
)
