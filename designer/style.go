package designer

import "github.com/charmbracelet/lipgloss"

// Style controls the designer's terminal rendering.
type Style struct {
	Title lipgloss.Style

	Cell     lipgloss.Style
	Selected lipgloss.Style
	Span     lipgloss.Style
	Border   lipgloss.Style
	Handle   lipgloss.Style

	Status  lipgloss.Style
	Notice  lipgloss.Style
	Help    lipgloss.Style
	Preview lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Title: lipgloss.NewStyle().Bold(true),

		Cell:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("24")),
		Span:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Handle:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Preview: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
