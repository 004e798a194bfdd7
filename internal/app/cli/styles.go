// Package cli is the terminal surface of the course list: rendering and the interactive shell.
package cli

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorAccent  = lipgloss.Color("#5FAFD7")
	ColorSuccess = lipgloss.Color("#5FD787")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#6C7A89")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Muted     lipgloss.Style
	Prompt    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Editing   lipgloss.Style
	ResultBox lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Prompt:  lipgloss.NewStyle().Foreground(ColorAccent),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Editing: lipgloss.NewStyle().Foreground(ColorWarning).Padding(0, 1),
	ResultBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Padding(0, 1),
}
