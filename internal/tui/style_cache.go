package tui

import "github.com/charmbracelet/lipgloss"

type cellStyleKey struct {
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// StyleCache memoizes per-cell styles so a frame does not rebuild one
// lipgloss.Style per run.
type StyleCache struct {
	styles map[cellStyleKey]lipgloss.Style
}

// NewStyleCache returns an empty cache.
func NewStyleCache() *StyleCache {
	return &StyleCache{styles: make(map[cellStyleKey]lipgloss.Style)}
}

// Get returns the style for a foreground/background pair.
func (c *StyleCache) Get(fg, bg lipgloss.Color, bold bool) lipgloss.Style {
	key := cellStyleKey{fg: fg, bg: bg, bold: bold}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(fg).Background(bg).Bold(bold)
	c.styles[key] = s
	return s
}

// Len returns the number of cached styles.
func (c *StyleCache) Len() int {
	return len(c.styles)
}
