package preview

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	cachedStyle = lipgloss.NewStyle().
			Foreground(successColor)

	keyLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(16)

	sampleStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			MarginTop(1)
)
