package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	systemMsgStyle  = lipgloss.NewStyle().Italic(true).Faint(true)
	npcBadgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	pcBadgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
