package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used on a terminal.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Name    lipgloss.Style
}

// DefaultStyles returns the terminal palette.
func DefaultStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Name:    lipgloss.NewStyle().Bold(true),
	}
}
