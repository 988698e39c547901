package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/chart"
	"github.com/javiermolinar/gantt/internal/task"
)

const (
	headerHeight     = 1
	footerHeight     = 3 // legend, status, help
	footerHeightFull = 5 // legend, status, three rows of full help

	chartMarginTop    = 1
	chartMarginRight  = 1
	chartMarginBottom = 2 // x axis line and tick labels
	axisGap           = 2 // space and axis line between labels and plot

	minChartWidth  = 12
	minChartHeight = chartMarginTop + chartMarginBottom + 1
)

// LayoutCache stores dimensions derived from the window size and the chart
// configuration in terminal cells.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH int
	ChartH  int // rows available for the chart viewport
	FooterH int

	Chart chart.Config
}

// buildLayoutCache converts the window size to cell-unit chart settings.
// One row per task, one column per cell; glyphs are one cell wide.
func (m Model) buildLayoutCache(width, height int) LayoutCache {
	innerW := max(0, width)
	innerH := max(0, height)

	footerH := footerHeight
	if m.help.ShowAll {
		footerH = footerHeightFull
	}
	chartH := max(0, innerH-headerHeight-footerH)

	base := m.chartBase
	cfg := chart.Config{
		Width:  float64(innerW),
		Height: float64(chartH),
		Margins: chart.Margins{
			Left:   float64(labelGutter(m.tasks(), innerW)),
			Top:    chartMarginTop,
			Right:  chartMarginRight,
			Bottom: chartMarginBottom,
		},
		BandPadding:      base.BandPadding,
		ColorRange:       base.ColorRange,
		RowHeight:        1,
		RowGap:           0,
		HighlightOpacity: base.HighlightOpacity,
		LabelOffset:      1,
		FontSize:         1,
		CharWidth:        1,
		TooltipScale:     1,
		TooltipOffset:    1,
	}

	return LayoutCache{
		InnerW:  innerW,
		InnerH:  innerH,
		HeaderH: headerHeight,
		ChartH:  chartH,
		FooterH: footerH,
		Chart:   cfg,
	}
}

// TooSmall reports whether the window cannot hold a chart with one row.
func (lc LayoutCache) TooSmall() bool {
	return lc.InnerW < minChartWidth || lc.ChartH < minChartHeight
}

// labelGutter sizes the left margin to the longest row label, capped at a
// third of the width.
func labelGutter(tasks []task.Task, width int) int {
	longest := 0
	for _, t := range tasks {
		longest = max(longest, lipgloss.Width(t.Label))
	}
	return min(longest+axisGap, max(axisGap, width/3))
}
