package views

import (
	"github.com/charmbracelet/lipgloss"

	"lightgrid/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Dim         lipgloss.Style
	Cell        lipgloss.Style
	CellActive  lipgloss.Style
	CellTitle   lipgloss.Style
	CellRef     lipgloss.Style
	Overlay     lipgloss.Style
	OverlayMeta lipgloss.Style
	Backdrop    lipgloss.Style
	Thumb       lipgloss.Style
	ThumbActive lipgloss.Style
	JumpPrompt  lipgloss.Style
}

// NewStyles creates a Styles instance from the display options.
func NewStyles(d config.Display) *Styles {
	thumb := lipgloss.NewStyle().
		Width(d.ThumbSize).
		Align(lipgloss.Center)
	if d.ThumbBorderWidth > 0 {
		thumb = thumb.
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(d.ThumbBorderColor))
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Dim:  lipgloss.NewStyle().Faint(true),
		Cell: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CellActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		CellTitle: lipgloss.NewStyle().Bold(true),
		CellRef:   lipgloss.NewStyle().Faint(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 3).
			Align(lipgloss.Center),
		OverlayMeta: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Backdrop:    lipgloss.NewStyle().Foreground(lipgloss.Color(d.OverlayBackground)),
		Thumb:       thumb.Foreground(lipgloss.Color("250")),
		ThumbActive: thumb.
			Foreground(lipgloss.Color("226")).
			BorderForeground(lipgloss.Color("226")).
			Bold(true),
		JumpPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
