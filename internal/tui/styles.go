package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style
	MetaStyle  lipgloss.Style

	// Footer
	LegendStyle lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Tooltip box (colors are applied per frame to support fading)
	TooltipStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.MetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.LegendStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 1)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.TooltipStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	return s
}

// Palette returns the palette the styles were built from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

// TooltipStyleAt returns the tooltip style at the given fade opacity.
func (s *Styles) TooltipStyleAt(opacity float64) lipgloss.Style {
	fade := 1 - opacity
	bg := s.palette.Fade(string(s.palette.TooltipBg), fade)
	fg := s.palette.Fade(string(s.palette.TooltipFg), fade)
	border := s.palette.Fade(string(s.colorAccent), fade)
	return s.TooltipStyle.
		Foreground(fg).
		Background(bg).
		BorderForeground(border).
		BorderBackground(s.colorBg)
}
