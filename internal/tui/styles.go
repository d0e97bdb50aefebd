package tui

import "github.com/charmbracelet/lipgloss"

// Styles is the chrome around the editor.
type Styles struct {
	Title       lipgloss.Style
	Status      lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Hint        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
