package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pablasso/tudu/internal/config"
	"github.com/pablasso/tudu/internal/task"
)

func TestRunAdd_CreatesTasksFile(t *testing.T) {
	tmpDir := setupTestDir(t)

	if err := runAdd(nil, []string{"Buy", "milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks := loadTasks(t, filepath.Join(tmpDir, config.DefaultTasksFile))
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != 1 {
		t.Errorf("expected ID 1, got %d", tasks[0].ID)
	}
	if tasks[0].Description != "Buy milk" {
		t.Errorf("expected joined description %q, got %q", "Buy milk", tasks[0].Description)
	}
	if tasks[0].Completed {
		t.Error("expected new task to be pending")
	}
}

func TestRunAdd_AssignsSequentialIDs(t *testing.T) {
	tmpDir := setupTestDir(t)

	if err := runAdd(nil, []string{"First"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := runAdd(nil, []string{"Second"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks := loadTasks(t, filepath.Join(tmpDir, config.DefaultTasksFile))
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Errorf("expected IDs [1 2], got [%d %d]", tasks[0].ID, tasks[1].ID)
	}
}

func TestRunAdd_EmptyDescription(t *testing.T) {
	tmpDir := setupTestDir(t)

	err := runAdd(nil, []string{"   "})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, task.ErrEmptyDescription) {
		t.Errorf("expected ErrEmptyDescription, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, config.DefaultTasksFile)); !os.IsNotExist(err) {
		t.Error("expected tasks file to not be created")
	}
}
