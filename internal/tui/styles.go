package tui

import (
	"github.com/charmbracelet/lipgloss"

	"docdash/internal/dashboard"
	"docdash/internal/model"
)

var (
	accent  = lipgloss.Color("63")
	muted   = lipgloss.Color("245")
	danger  = lipgloss.Color("196")
	warning = lipgloss.Color("220")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle  = lipgloss.NewStyle().Foreground(danger)
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warning).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 2).
			Align(lipgloss.Center)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2)
	dangerModalStyle = modalStyle.BorderForeground(danger)
	focusedLabel     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	warningStyle     = lipgloss.NewStyle().Foreground(warning).Bold(true)
)

// badge renders a status in its dashboard colour.
func badge(s model.Status) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(dashboard.ColorOf(s).Terminal)).Render(string(s))
}
