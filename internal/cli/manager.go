package cli

import (
	"fmt"
	"strconv"

	"github.com/pablasso/tudu/internal/config"
	"github.com/pablasso/tudu/internal/task"
)

// newManager builds a task manager against the resolved tasks file.
func newManager() (*task.Manager, error) {
	path, err := config.ResolveTasksFile(tasksFile)
	if err != nil {
		return nil, err
	}
	return task.NewManager(task.NewStore(path)), nil
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %q", arg)
	}
	return id, nil
}
