package styles

import "github.com/charmbracelet/lipgloss"

const (
	BackgroundHex = "#374151" // gray-700
	ForegroundHex = "#FFFFFF"
)

var (
	Background = lipgloss.Color(BackgroundHex)
	Foreground = lipgloss.Color(ForegroundHex)
	Subtle     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#6B7280"}
	Highlight  = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	PanelFill  = lipgloss.Color("#414B5A") // slate-50 at 5% over gray-700
	ErrorColor = lipgloss.Color("196")

	HeaderLineStyle = lipgloss.NewStyle().
			Background(Background).
			Foreground(Foreground)

	TemperatureStyle = lipgloss.NewStyle().
				Bold(true).
				Background(Background).
				Foreground(Foreground)

	TextStyle = lipgloss.NewStyle().
			Background(Background).
			Foreground(Foreground)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Background(PanelFill).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(Subtle)
)
