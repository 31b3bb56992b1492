package tui

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))            // cyan
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))            // red
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	helpStyle   = lipgloss.NewStyle().Faint(true)
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 3)
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)
