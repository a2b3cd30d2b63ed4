package ui

import "github.com/charmbracelet/lipgloss"

// Browser chrome styles. Effect coloring inside the detail pane comes
// from the format package; these only dress the list and help line.
var (
	listTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	itemStyle      = lipgloss.NewStyle()
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	paneStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			MarginTop(1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
