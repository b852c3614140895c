// Package tui implements the interactive catalog browser: a listing page
// with pagination controls, per-taxonomy filter dropdowns, and a project
// detail page with an image carousel.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by the browser views.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Tag      lipgloss.Style
	Error    lipgloss.Style
	Pager    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EBEFF8")).
			Background(lipgloss.Color("#3C52EF")).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4761FF")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EBEFF8")).
			Background(lipgloss.Color("#172250")),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAB4CB")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#586175")),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e53935")),
		Pager: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAB4CB")).
			MarginTop(1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#586175")).
			MarginTop(1),
	}
}
