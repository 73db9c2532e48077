package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the harness view.
type Styles struct {
	Header      *lipgloss.Style
	Announce    *lipgloss.Style
	Interrupt   *lipgloss.Style
	Event       *lipgloss.Style
	Suppression *lipgloss.Style
	Active      *lipgloss.Style
	Inactive    *lipgloss.Style
	Error       *lipgloss.Style
	Footer      *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Announce: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Interrupt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Event: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Suppression: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	),
	Active: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Inactive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the harness.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
