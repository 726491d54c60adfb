// Package tui implements the interactive task list screen.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tudu/internal/task"
)

// mode represents the interaction state of the TUI.
type mode int

const (
	// modeList is the default state: navigating the task list.
	modeList mode = iota
	// modeAdd captures a new task description in a text input.
	modeAdd
)

// Model is the Bubble Tea model for the task list.
type Model struct {
	manager *task.Manager
	tasks   []task.Task
	cursor  int
	mode    mode
	input   textinput.Model

	// Last action feedback shown under the list.
	status string
	failed bool

	width  int
	height int
}

// Run starts the TUI application.
func Run(manager *task.Manager) error {
	p := tea.NewProgram(
		NewModel(manager),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel creates the initial model with tasks loaded from the manager.
func NewModel(manager *task.Manager) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 48

	return Model{
		manager: manager,
		tasks:   manager.List(),
		input:   ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAdd(msg)
		}
		return m.updateList(msg)
	}

	// Non-key messages (cursor blink) go to the text input.
	if m.mode == modeAdd {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateList handles keys while navigating the task list.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.status = ""

	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		m.status = ""

	case "a":
		m.mode = modeAdd
		m.status = ""
		m.failed = false
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink

	case " ", "enter":
		return m.completeSelected()

	case "d", "x":
		return m.removeSelected()

	case "c":
		return m.clearCompleted()
	}

	return m, nil
}

// updateAdd handles keys while typing a new task description.
func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		t, err := m.manager.Add(m.input.Value())
		if errors.Is(err, task.ErrEmptyDescription) {
			m.status = "Task cannot be empty!"
			m.failed = true
			return m, nil
		}

		m.tasks = m.manager.List()
		m.cursor = len(m.tasks) - 1
		m.mode = modeList
		m.input.Blur()
		if err != nil {
			m.status = fmt.Sprintf("Failed to save: %v", err)
			m.failed = true
			return m, nil
		}
		m.status = fmt.Sprintf("Task added: %s", t.Description)
		m.failed = false
		return m, nil

	case "esc":
		m.mode = modeList
		m.status = ""
		m.failed = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// completeSelected marks the task under the cursor as completed.
func (m Model) completeSelected() (tea.Model, tea.Cmd) {
	if len(m.tasks) == 0 {
		return m, nil
	}

	selected := m.tasks[m.cursor]
	t, changed, err := m.manager.Complete(selected.ID)
	m.tasks = m.manager.List()
	if err != nil {
		m.status = fmt.Sprintf("Failed to save: %v", err)
		m.failed = true
		return m, nil
	}

	m.failed = false
	if !changed {
		m.status = fmt.Sprintf("Task %d is already completed!", t.ID)
	} else {
		m.status = fmt.Sprintf("Task %d marked as complete: %s", t.ID, t.Description)
	}
	return m, nil
}

// removeSelected deletes the task under the cursor.
func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	if len(m.tasks) == 0 {
		return m, nil
	}

	selected := m.tasks[m.cursor]
	t, err := m.manager.Remove(selected.ID)
	m.tasks = m.manager.List()
	m.clampCursor()
	if err != nil {
		m.status = fmt.Sprintf("Failed to save: %v", err)
		m.failed = true
		return m, nil
	}

	m.status = fmt.Sprintf("Task %d removed: %s", t.ID, t.Description)
	m.failed = false
	return m, nil
}

// clearCompleted removes every completed task.
func (m Model) clearCompleted() (tea.Model, tea.Cmd) {
	removed, err := m.manager.Clear()
	m.tasks = m.manager.List()
	m.clampCursor()
	if err != nil {
		m.status = fmt.Sprintf("Failed to save: %v", err)
		m.failed = true
		return m, nil
	}

	if removed == 0 {
		m.status = "No completed tasks to clear!"
	} else {
		m.status = fmt.Sprintf("Cleared %d completed task(s)", removed)
	}
	m.failed = false
	return m, nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.mode == modeAdd {
		return m.renderAddView()
	}
	if len(m.tasks) == 0 {
		return m.renderEmptyView()
	}
	return m.renderListView()
}

// renderListView renders the task list with summary and status line.
func (m Model) renderListView() string {
	var b strings.Builder

	title := titleStyle.Render("Your Todo List")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	var taskLines []string
	for i, t := range m.tasks {
		taskLines = append(taskLines, m.formatTaskLine(i, t))
	}
	taskList := strings.Join(taskLines, "\n")

	completed := 0
	for _, t := range m.tasks {
		if t.Completed {
			completed++
		}
	}
	summary := subtleStyle.Render(fmt.Sprintf("%d total, %d completed, %d pending",
		len(m.tasks), completed, len(m.tasks)-completed))

	// Calculate vertical centering
	statusBarHeight := 1
	contentHeight := 4 + len(m.tasks) // title + spacing + tasks + spacing + summary
	if m.status != "" {
		contentHeight += 2
	}
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3 // bias towards top
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, taskList))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, summary))
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderStatus()))
	}

	// Calculate remaining lines for bottom padding
	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(m.helpBar([]string{"↑↓ Navigate", "Space Complete", "a Add", "d Delete", "c Clear done", "q Quit"}))

	return b.String()
}

// formatTaskLine formats a single task row for display.
func (m Model) formatTaskLine(index int, t task.Task) string {
	indicator := "○"
	if index == m.cursor {
		indicator = "●"
	}

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[✓]"
	}

	line := fmt.Sprintf("%s %s %2d. %-30s %s",
		indicator, checkbox, t.ID, t.Description, t.CreatedAt.Format(task.TimeLayout))

	if index == m.cursor {
		line = selectedStyle.Render(line)
	} else if t.Completed {
		line = subtleStyle.Render(line)
	}

	return line
}

func (m Model) renderStatus() string {
	if m.failed {
		return errorStyle.Render(m.status)
	}
	return successStyle.Render(m.status)
}

// renderEmptyView renders the view when no tasks exist.
func (m Model) renderEmptyView() string {
	var b strings.Builder

	title := titleStyle.Render("Your Todo List")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	msg1 := "No tasks found."
	msg2 := "Press 'a' to add your first task."
	msg1Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg1)
	msg2Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, subtleStyle.Render(msg2))

	// Calculate vertical centering
	statusBarHeight := 1
	contentHeight := 5 // title + spacing + msg1 + spacing + msg2
	if m.status != "" {
		contentHeight += 2
	}
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(msg1Line)
	b.WriteString("\n\n")
	b.WriteString(msg2Line)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderStatus()))
	}

	// Calculate remaining lines for bottom padding
	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(m.helpBar([]string{"a Add", "q Quit"}))

	return b.String()
}

// renderAddView renders the new task input form.
func (m Model) renderAddView() string {
	var b strings.Builder

	title := titleStyle.Render("Add a Task")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")
	b.WriteString("  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.failed && m.status != "" {
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n\n")
	b.WriteString(m.helpBar([]string{"Enter Add", "Esc Cancel"}))

	return b.String()
}

// helpBar renders the bottom bar with contextual key hints.
func (m Model) helpBar(items []string) string {
	return statusBarStyle.Width(m.width).Render(strings.Join(items, " • "))
}

// SetSize updates the model dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Tasks returns the tasks currently shown.
func (m Model) Tasks() []task.Task {
	return m.tasks
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}
