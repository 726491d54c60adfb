// Package task implements the todo list core: the task model, its JSON
// file persistence, and the manager that owns the in-memory list.
package task

import "time"

// TimeLayout is the timestamp format used in the tasks file.
// Minute precision, local time.
const TimeLayout = "2006-01-02 15:04"

// Task is a single todo item.
type Task struct {
	ID          int
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// NextID returns the ID to assign to the next task: one more than the
// highest ID currently in the list. Removing the highest task makes its
// ID assignable again.
func NextID(tasks []Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
