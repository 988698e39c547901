package tui

import (
	"math"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/gantt/internal/chart"
)

// activeHighlightBoost scales the highlight opacity of the hovered row.
const activeHighlightBoost = 2

// drawChart paints the full layout onto a canvas one cell per unit.
// Drawing order matches the SVG renderer: highlights, bars, labels, axes.
func (m Model) drawChart(l *chart.Layout) *canvas {
	p := m.styles.Palette()
	c := newCanvas(int(math.Ceil(l.Width)), int(math.Ceil(l.Height)), p.Fg, p.Bg)
	active, hovered := m.tracker.Active()

	for _, bar := range l.Bars {
		opacity := bar.HighlightOpacity
		if hovered && bar.Index == active {
			opacity = min(1, opacity*activeHighlightBoost)
		}
		hx0, hx1 := cellSpan(bar.Highlight)
		c.fill(hx0, hx1, rowOf(bar.Highlight.Y), p.Highlight(bar.Fill, opacity))
	}

	for _, bar := range l.Bars {
		x0, x1 := cellSpan(bar.Rect)
		c.fill(x0, x1, rowOf(bar.Rect.Y), lipgloss.Color(bar.Fill))
	}

	for _, bar := range l.Bars {
		x0, x1 := cellSpan(bar.Rect)
		box := bar.Label.Box()
		onBar := p.TextOn(bar.Fill)
		bold := hovered && bar.Index == active
		c.text(int(math.Round(box.X)), rowOf(box.Y), bar.Label.Text, bold, func(x int) lipgloss.Color {
			if x >= x0 && x < x1 {
				return onBar
			}
			return p.Fg
		})
	}

	m.drawAxes(c, l)
	return c
}

// drawAxes draws the row labels, the axis lines and the date ticks.
func (m Model) drawAxes(c *canvas, l *chart.Layout) {
	p := m.styles.Palette()
	axisX := int(l.Plot.X) - 1
	top := rowOf(l.Plot.Y)
	bottom := top + int(l.Plot.Height)
	muted := func(int) lipgloss.Color { return p.FgMuted }

	labelW := max(0, axisX-1)
	for _, tick := range l.YTicks {
		if labelW == 0 {
			break
		}
		label := ansi.Truncate(tick.Label, labelW, "…")
		w := lipgloss.Width(label)
		c.text(axisX-1-w, int(tick.Pos), label, false, muted)
	}

	for y := top; y < bottom; y++ {
		c.put(axisX, y, '│', p.FgMuted)
	}
	c.put(axisX, bottom, '└', p.FgMuted)
	x0, x1 := cellSpan(l.Plot)
	for x := x0; x < x1; x++ {
		c.put(x, bottom, '─', p.FgMuted)
	}

	// Tick labels that would touch the previous one are skipped.
	next := x0
	for _, tick := range l.XTicks {
		w := utf8.RuneCountInString(tick.Label)
		start := int(math.Round(tick.Pos)) - w/2
		start = max(start, 0)
		if start < next {
			continue
		}
		c.put(int(tick.Pos), bottom, '┬', p.FgMuted)
		c.text(start, bottom+1, tick.Label, false, muted)
		next = start + w + 1
	}
}

// cellSpan returns the columns [x0, x1) covered by r, at least one wide.
func cellSpan(r chart.Rect) (int, int) {
	x0 := int(math.Round(r.X))
	x1 := int(math.Round(r.X + r.Width))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

func rowOf(y float64) int {
	return int(math.Floor(y))
}
