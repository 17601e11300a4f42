package views

import (
	"github.com/charmbracelet/lipgloss"

	"fuzzpick/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Pointer lipgloss.Style
	Marker  lipgloss.Style
	Current lipgloss.Style
	Prompt  lipgloss.Style
}

// NewStyles creates a new Styles instance from the configured colors
func NewStyles(ui config.UISettings) *Styles {
	return &Styles{
		Pointer: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.PointerColor)),
		Marker:  lipgloss.NewStyle().Foreground(lipgloss.Color(ui.MarkerColor)),
		Current: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.CurrentColor)),
		Prompt:  lipgloss.NewStyle().Bold(true),
	}
}
