package task

import (
	"errors"
	"fmt"
)

// ErrEmptyDescription is returned by Add when the description is empty or
// only whitespace.
var ErrEmptyDescription = errors.New("task description cannot be empty")

// NotFoundError is returned when an operation names a task ID that is not
// in the list.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}
