package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles shared by the commands.
var (
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Warn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	Faint   = lipgloss.NewStyle().Faint(true)
)

const ruleWidth = 65

// Rule returns a horizontal separator line.
func Rule() string {
	return Faint.Render(strings.Repeat("─", ruleWidth))
}
