// Package styles holds the lipgloss colours and styles shared by console output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colours pick the Light or Dark variant from the terminal background.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D73737", Dark: "#FF5555"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#E67E22", Dark: "#FFB86C"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#27AE60", Dark: "#50FA7B"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#8BE9FD"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#6272A4"}
)

var (
	Error   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	Warning = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	Success = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	Info    = lipgloss.NewStyle().Foreground(ColorInfo)
	Verbose = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)
)
