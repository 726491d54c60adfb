package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile_MissingFile(t *testing.T) {
	cfg, err := loadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TasksFile != "" {
		t.Errorf("expected empty config, got TasksFile=%q", cfg.TasksFile)
	}
}

func TestLoadFile_ReadsTasksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "tasks_file: /home/user/tasks/todos.json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TasksFile != "/home/user/tasks/todos.json" {
		t.Errorf("got %q, want %q", cfg.TasksFile, "/home/user/tasks/todos.json")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tasks_file: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := loadFile(path)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestResolveTasksFile(t *testing.T) {
	writeConfig := func(t *testing.T, home, tasksFile string) {
		t.Helper()
		dir := filepath.Join(home, ".tudu")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create config dir: %v", err)
		}
		content := "tasks_file: " + tasksFile + "\n"
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}

	t.Run("override wins over everything", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(EnvTasksFile, "env.json")
		writeConfig(t, home, "config.json")

		got, err := ResolveTasksFile("override.json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "override.json" {
			t.Errorf("got %q, want %q", got, "override.json")
		}
	})

	t.Run("environment wins over config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(EnvTasksFile, "env.json")
		writeConfig(t, home, "config.json")

		got, err := ResolveTasksFile("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "env.json" {
			t.Errorf("got %q, want %q", got, "env.json")
		}
	})

	t.Run("config wins over default", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(EnvTasksFile, "")
		writeConfig(t, home, "config.json")

		got, err := ResolveTasksFile("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "config.json" {
			t.Errorf("got %q, want %q", got, "config.json")
		}
	})

	t.Run("default when nothing is configured", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv(EnvTasksFile, "")

		got, err := ResolveTasksFile("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != DefaultTasksFile {
			t.Errorf("got %q, want %q", got, DefaultTasksFile)
		}
	})

	t.Run("broken config surfaces the error", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(EnvTasksFile, "")
		dir := filepath.Join(home, ".tudu")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create config dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tasks_file: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := ResolveTasksFile("")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
