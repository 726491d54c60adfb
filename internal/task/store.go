package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// record is the on-disk form of a Task. All decoding goes through it so
// that file-format problems are caught here and never leak half-parsed
// tasks into the rest of the program.
type record struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

// Store persists the task list as a pretty-printed JSON array.
type Store struct {
	path string
}

// NewStore creates a store for the given tasks file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the tasks file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list from disk. A missing file is a first run. A
// file that cannot be read or parsed, or whose records do not form a
// valid task list, is discarded the same way: Load returns an empty list
// and never fails.
func (s *Store) Load() []Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	// Every record must be valid, otherwise the whole file is discarded.
	tasks := make([]Task, 0, len(records))
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if r.ID < 1 || seen[r.ID] {
			return nil
		}
		if strings.TrimSpace(r.Description) == "" {
			return nil
		}
		createdAt, err := time.ParseInLocation(TimeLayout, r.CreatedAt, time.Local)
		if err != nil {
			return nil
		}
		seen[r.ID] = true
		tasks = append(tasks, Task{
			ID:          r.ID,
			Description: r.Description,
			Completed:   r.Completed,
			CreatedAt:   createdAt,
		})
	}

	return tasks
}

// Save atomically writes the full task list using a temp file + rename.
// The parent directory is created if needed. An empty list is written as
// an empty JSON array.
func (s *Store) Save(tasks []Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create tasks directory: %w", err)
	}

	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{
			ID:          t.ID,
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.Format(TimeLayout),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", s.path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write tasks temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		// Clean up temp file on rename failure
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename tasks temp file: %w", err)
	}

	return nil
}
