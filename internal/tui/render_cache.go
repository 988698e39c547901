package tui

import (
	"strings"

	"github.com/javiermolinar/gantt/internal/chart"
)

// RenderCache stores the rendered chart rows between frames. Fade steps and
// scrolling reuse them; a new layout or a new hovered row redraws.
type RenderCache struct {
	layout *chart.Layout
	active int
	lines  []string
}

// NewRenderCache returns an empty cache.
func NewRenderCache() *RenderCache {
	return &RenderCache{active: -1}
}

func (c *RenderCache) valid(l *chart.Layout, active int) bool {
	return c.lines != nil && c.layout == l && c.active == active
}

// chartLines returns every row of the chart canvas as ANSI strings.
func (m Model) chartLines() []string {
	active, ok := m.tracker.Active()
	if !ok {
		active = -1
	}
	rc := m.renderCache
	if rc.valid(m.layout, active) {
		return rc.lines
	}

	c := m.drawChart(m.layout)
	rc.lines = strings.Split(c.renderRows(0, c.height, m.styleCache), "\n")
	rc.layout = m.layout
	rc.active = active
	return rc.lines
}
