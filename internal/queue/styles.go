package queue

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))

	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// stateStyle picks a row color for a job state as squeue reports it.
func stateStyle(state string) lipgloss.Style {
	switch state {
	case "RUNNING", "COMPLETING":
		return runningStyle
	case "PENDING", "CONFIGURING":
		return pendingStyle
	case "":
		return valueStyle
	}
	return stoppedStyle
}
