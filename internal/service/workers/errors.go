package workers

import "errors"

var (
	// ErrWorkerNotFound is returned when the credential does not exist
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrStaffNotFound is returned when the linked staff member does not exist
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrUsernameTaken is returned when the username is already in use
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidInput is returned for malformed credential data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("workers: internal error")
)
