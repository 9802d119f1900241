package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorHeader    = lipgloss.Color("#06B6D4")
)

// Styles is the set of styles a Printer renders with. Styles are bound to
// a renderer so the color profile follows the output writer.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Unit    lipgloss.Style
	Note    lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Detail  lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
	Plot    lipgloss.Style
}

// NewStyles builds the palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		Label: r.NewStyle().
			Foreground(colorMuted),

		Value: r.NewStyle().
			Bold(true),

		Unit: r.NewStyle().
			Foreground(colorSecondary),

		Note: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		Success: r.NewStyle().
			Foreground(colorSecondary),

		Warn: r.NewStyle().
			Foreground(colorAccent),

		Error: r.NewStyle().
			Foreground(colorError).
			Bold(true),

		Detail: r.NewStyle().
			Foreground(colorError),

		Header: r.NewStyle().
			Bold(true).
			Foreground(colorHeader).
			Padding(0, 1),

		Cell: r.NewStyle().
			Padding(0, 1),

		Border: r.NewStyle().
			Foreground(colorMuted),

		Plot: r.NewStyle().
			Foreground(colorSecondary),
	}
}
