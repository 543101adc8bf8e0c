package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#6B7280")
	successColor   = lipgloss.Color("#10B981")

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// List title
	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// Selected entry
	selectedTitleStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(primaryColor).
				Foreground(primaryColor).
				Padding(0, 0, 0, 1)

	selectedDescStyle = selectedTitleStyle.
				Foreground(secondaryColor)

	// Status bar notices
	statusMessageStyle = lipgloss.NewStyle().
				Foreground(successColor)
)
