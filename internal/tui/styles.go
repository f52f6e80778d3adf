package tui

import "github.com/charmbracelet/lipgloss"

const sidebarWidth = 32

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Italic(true).Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(sidebarWidth).Padding(0, 1)
	sidebarFocusedStyle = sidebarStyle.BorderForeground(lipgloss.Color("12"))
	selectedItemStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dateStyle           = lipgloss.NewStyle().Faint(true)

	userLabelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	assistantLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorBubbleStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Foreground(lipgloss.Color("9")).Padding(0, 1)
)
