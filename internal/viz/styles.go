package viz

import "github.com/charmbracelet/lipgloss"

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
)

// seriesStyle maps a method name to its legend color.
func seriesStyle(name string) lipgloss.Style {
	switch name {
	case "exact":
		return white
	case "explicit":
		return red
	case "implicit-analytic":
		return green
	case "implicit-matrix":
		return cyan
	case "implicit-iterative":
		return yellow
	default:
		return dim
	}
}
