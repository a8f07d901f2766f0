package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fde68a"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Width(26)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("#bbf7d0"))

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	resultLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))

	resultValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#d4d4d8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#bae6fd")).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))
)
