package accel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors.
var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrAllocation     = errors.New("allocation failed")
	ErrExtentMismatch = errors.New("extent mismatch")
	ErrBadWorkDiv     = errors.New("invalid work division")
	ErrQueueClosed    = errors.New("queue closed")
)

// TaskError reports the failure of a single enqueued task.
type TaskError struct {
	Task uuid.UUID // Identity of the failed task
	Op   string    // Operation kind (e.g. "kernel", "copy")
	Err  error     // Underlying error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s (%s): %v", e.Task, e.Op, e.Err)
}

// Unwrap allows error chain inspection.
func (e *TaskError) Unwrap() error {
	return e.Err
}
