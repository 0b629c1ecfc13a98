package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorBg       lipgloss.Color = "#1e1e2e"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorField    lipgloss.Color = "#bac2de"
	colorSurface0 lipgloss.Color = "#313244"
)

// Theme lets config override the two colours users most often change.
type Theme struct {
	Accent string
	Border string
}
