package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pablasso/tudu/internal/config"
	"github.com/pablasso/tudu/internal/task"
)

func TestRunComplete_MarksTask(t *testing.T) {
	tmpDir := setupTestDir(t)

	if err := runAdd(nil, []string{"Buy milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := runAdd(nil, []string{"Walk dog"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := runComplete(nil, []string{"2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks := loadTasks(t, filepath.Join(tmpDir, config.DefaultTasksFile))
	if tasks[0].Completed {
		t.Error("expected task 1 to stay pending")
	}
	if !tasks[1].Completed {
		t.Error("expected task 2 to be completed")
	}
}

func TestRunComplete_AlreadyCompleted(t *testing.T) {
	setupTestDir(t)

	if err := runAdd(nil, []string{"Buy milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := runComplete(nil, []string{"1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Completing again is a no-op, not an error.
	if err := runComplete(nil, []string{"1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunComplete_NotFound(t *testing.T) {
	setupTestDir(t)

	err := runComplete(nil, []string{"42"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var notFound *task.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.ID != 42 {
		t.Errorf("expected ID 42, got %d", notFound.ID)
	}
}

func TestRunComplete_InvalidID(t *testing.T) {
	setupTestDir(t)

	err := runComplete(nil, []string{"abc"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), `invalid task number: "abc"`) {
		t.Errorf("expected invalid task number error, got %q", err.Error())
	}
}
