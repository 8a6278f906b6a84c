package domain

import (
	"fmt"
	"time"
)

// TaskStatus is the progress state of a to-do item.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ParseTaskStatus validates a task status string.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch ts := TaskStatus(s); ts {
	case TaskPending, TaskInProgress, TaskDone:
		return ts, nil
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

// Task is a to-do item attached to a booking, progressed by the
// assigned worker.
type Task struct {
	ID          int64
	BookingID   int64
	AssignedTo  *int64 // staff id
	Title       string
	Description string
	Status      TaskStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
