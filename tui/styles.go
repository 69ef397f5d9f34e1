package tui

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles used by the table view.
type Styles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Pinned   lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Detail   lipgloss.Style
	Status   lipgloss.Style
	Filter   lipgloss.Style
}

// DefaultStyles returns a muted dark palette.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Cell:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Pinned:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("58")),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Filter:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	}
}
