package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleHeader   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCorrect  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleWrong    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	styleTimeout  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true) // Yellow
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
	stylePrompt   = lipgloss.NewStyle().Bold(true).Width(80)
	styleBarRed   = lipgloss.NewStyle().Background(lipgloss.Color("9")).SetString(" ")
)
