package tasks

import "errors"

var (
	// ErrTaskNotFound is returned when the task does not exist
	ErrTaskNotFound = errors.New("task not found")

	// ErrAccessDenied is returned when a worker touches a task assigned
	// to someone else
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed task data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("tasks: internal error")
)
