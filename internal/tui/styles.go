package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	accentColor  = lipgloss.Color("#5FAFAF") // Teal accent
	subtleColor  = lipgloss.Color("#666666") // Gray for secondary text
	successColor = lipgloss.Color("#87AF87") // Muted sage for confirmations
	errorColor   = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// titleStyle for headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// subtleStyle for hints and completed rows
	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// selectedStyle for the row under the cursor
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// statusBarStyle for the bottom help bar
	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// successStyle for status line confirmations
	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// errorStyle for status line failures
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
