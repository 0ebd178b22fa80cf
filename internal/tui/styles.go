package tui

import "github.com/charmbracelet/lipgloss"

var (
	baseFg      = lipgloss.Color("#E6E6E6")
	baseDimFg   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg    = lipgloss.Color("#7C3AED")
	routeColor  = lipgloss.Color("#A0522D")
	markerColor = lipgloss.Color("#2563EB")
	borderCol   = lipgloss.Color("#243141")

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	popupStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	linkStyle  = lipgloss.NewStyle().Foreground(accentFg).Underline(true)
)
