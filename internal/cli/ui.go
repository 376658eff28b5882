package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")  // Teal - activity
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
)
