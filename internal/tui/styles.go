package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared across views.
type Styles struct {
	Title     lipgloss.Style
	DayHeader lipgloss.Style
	SetRow    lipgloss.Style
	Total     lipgloss.Style
	Label     lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1),
		DayHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		SetRow: lipgloss.NewStyle().
			PaddingLeft(2),
		Total: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("150")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}
