// Package render formats task lists and status messages for terminal
// output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tudu/internal/task"
)

var (
	// Colors
	titleColor   = lipgloss.Color("#5FAFAF") // Teal accent
	subtleColor  = lipgloss.Color("#666666") // Gray for secondary text
	pendingColor = lipgloss.Color("#D7AF5F") // Muted amber for pending work
	successColor = lipgloss.Color("#87AF87") // Muted sage for done work

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)
	pendingStyle = lipgloss.NewStyle().Foreground(pendingColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Success formats a confirmation message.
func Success(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// Info formats an informational notice.
func Info(msg string) string {
	return subtleStyle.Render(msg)
}

// List renders the full task listing: pending tasks first, then
// completed, then a summary line. Grouping is display-only; the list
// itself stays in insertion order. An empty list renders a short
// empty-state message instead.
func List(tasks []task.Task) string {
	if len(tasks) == 0 {
		return Info("No tasks found.") + "\nYour todo list is empty!"
	}

	var pending, completed []task.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}

	title := "Your Todo List"
	lines := []string{
		titleStyle.Render(title),
		subtleStyle.Render(strings.Repeat("=", len(title))),
	}

	if len(pending) > 0 {
		lines = append(lines, "", pendingStyle.Render("Pending Tasks:"))
		for _, t := range pending {
			lines = append(lines, "  "+taskLine(t))
		}
	}

	if len(completed) > 0 {
		lines = append(lines, "", successStyle.Render("Completed Tasks:"))
		for _, t := range completed {
			lines = append(lines, "  "+taskLine(t))
		}
	}

	summary := fmt.Sprintf("%s %d total, %d completed, %d pending",
		boldStyle.Render("Summary:"), len(tasks), len(completed), len(pending))
	lines = append(lines, "", summary)

	return strings.Join(lines, "\n")
}

// taskLine formats a single task: ID, checkbox, description, creation
// time.
func taskLine(t task.Task) string {
	checkbox := pendingStyle.Render("[ ]")
	text := t.Description
	if t.Completed {
		checkbox = successStyle.Render("[✓]")
		text = successStyle.Render(text)
	}
	date := subtleStyle.Render("(" + t.CreatedAt.Format(task.TimeLayout) + ")")
	return fmt.Sprintf("%d. %s %s %s", t.ID, checkbox, text, date)
}
