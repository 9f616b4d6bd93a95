package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Verdict styles
	Code    lipgloss.Style
	Prose   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Label     lipgloss.Style
	Separator lipgloss.Style
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconCode    string
	IconProse   string
	IconWarning string
	IconSuccess string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Code = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
		s.Prose = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))   // Green
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.BarFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
		s.BarEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

		// Unicode icons
		s.IconCode = "\u26a0"    // ⚠
		s.IconProse = "\u2713"   // ✓
		s.IconWarning = "\u2717" // ✗
		s.IconSuccess = "\u2713" // ✓
	} else {
		s.Code = lipgloss.NewStyle()
		s.Prose = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()
		s.BarFilled = lipgloss.NewStyle()
		s.BarEmpty = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconCode = "CODE:"
		s.IconProse = "OK:"
		s.IconWarning = "WARN:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// ScoreBar renders value in [0, 1] as a bar of the given width
func (s *Styles) ScoreBar(value float64, width int) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value*float64(width) + 0.5)
	fill, empty := "\u2588", "\u2591"
	if !s.enabled {
		fill, empty = "#", "."
	}

	return s.BarFilled.Render(strings.Repeat(fill, filled)) +
		s.BarEmpty.Render(strings.Repeat(empty, width-filled))
}
