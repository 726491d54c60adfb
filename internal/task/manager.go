package task

import (
	"strings"
	"time"
)

// Manager owns the in-memory task list and persists it through a Store
// after every mutation. Create one Manager per process; it loads the list
// once at construction. When a save fails the in-memory change is kept:
// every save writes the full list, so the next successful save persists
// anything a failed one did not.
type Manager struct {
	store *Store
	tasks []Task
	now   func() time.Time
}

// NewManager creates a manager backed by the given store.
func NewManager(store *Store) *Manager {
	return &Manager{
		store: store,
		tasks: store.Load(),
		now:   time.Now,
	}
}

// Add appends a new task with the given description. The description is
// trimmed; if nothing remains, Add returns ErrEmptyDescription and the
// list is untouched. The new task gets an ID from NextID and a creation
// time from the manager's clock.
func (m *Manager) Add(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}

	t := Task{
		ID:          NextID(m.tasks),
		Description: description,
		CreatedAt:   m.now(),
	}
	m.tasks = append(m.tasks, t)

	if err := m.store.Save(m.tasks); err != nil {
		return Task{}, err
	}
	return t, nil
}

// List returns the tasks in insertion order. The returned slice is a
// copy; mutating it does not affect the manager.
func (m *Manager) List() []Task {
	tasks := make([]Task, len(m.tasks))
	copy(tasks, m.tasks)
	return tasks
}

// Complete marks the task with the given ID as completed and returns it.
// Completing an already-completed task succeeds; the second return value
// reports whether this call changed the task's state.
func (m *Manager) Complete(id int) (Task, bool, error) {
	i := m.indexOf(id)
	if i < 0 {
		return Task{}, false, &NotFoundError{ID: id}
	}

	changed := !m.tasks[i].Completed
	m.tasks[i].Completed = true

	if err := m.store.Save(m.tasks); err != nil {
		return Task{}, false, err
	}
	return m.tasks[i], changed, nil
}

// Remove deletes the task with the given ID and returns it. The order of
// the remaining tasks is unchanged.
func (m *Manager) Remove(id int) (Task, error) {
	i := m.indexOf(id)
	if i < 0 {
		return Task{}, &NotFoundError{ID: id}
	}

	removed := m.tasks[i]
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)

	if err := m.store.Save(m.tasks); err != nil {
		return Task{}, err
	}
	return removed, nil
}

// Clear removes every completed task and returns how many were removed.
// The list is persisted even when nothing was removed.
func (m *Manager) Clear() (int, error) {
	remaining := make([]Task, 0, len(m.tasks))
	removed := 0
	for _, t := range m.tasks {
		if t.Completed {
			removed++
			continue
		}
		remaining = append(remaining, t)
	}
	m.tasks = remaining

	if err := m.store.Save(m.tasks); err != nil {
		return 0, err
	}
	return removed, nil
}

// indexOf returns the position of the task with the given ID, or -1.
func (m *Manager) indexOf(id int) int {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
