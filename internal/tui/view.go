package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/gantt/internal/tui/view"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	state := view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
	if box, left, top, ok := m.tooltipBox(); ok {
		state.ShowTooltip = true
		state.TooltipContent = box
		state.TooltipLeft = left
		state.TooltipTop = top
	}
	return state
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	header := view.RenderHeader(m.headerModel())
	body := m.renderChartArea()
	footer := view.RenderFooterModel(m.footerModel())

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) headerModel() view.HeaderModel {
	title := "gantt"
	if m.dataset != nil && m.dataset.Name != "" {
		title = m.dataset.Name
	}
	return view.HeaderModel{
		InnerW:     m.layoutCache.InnerW,
		Title:      title,
		Tasks:      m.dataset.Len(),
		Categories: m.categoryCount(),
		Scroll:     m.scrollIndicator(),
		TitleStyle: m.styles.TitleStyle,
		MetaStyle:  m.styles.MetaStyle,
		Bg:         m.styles.colorBg,
	}
}

// scrollIndicator shows the visible row range when the chart overflows.
func (m Model) scrollIndicator() string {
	lc := m.layoutCache
	if m.layout == nil || m.canvasHeight() <= lc.ChartH {
		return ""
	}
	first := max(0, m.scrollOffset-chartMarginTop)
	last := min(len(m.layout.Bars), m.scrollOffset+lc.ChartH-chartMarginTop)
	return fmt.Sprintf("rows %d-%d of %d", first+1, max(first+1, last), len(m.layout.Bars))
}

// renderChartArea renders the visible slice of the chart canvas, or a
// placeholder when there is nothing to draw.
func (m Model) renderChartArea() string {
	lc := m.layoutCache
	if lc.ChartH <= 0 {
		return ""
	}

	if msg := m.chartPlaceholder(); msg != "" {
		return view.Placeholder(lc.InnerW, lc.ChartH, msg, m.styles.MetaStyle, m.styles.colorBg)
	}

	lines := m.chartLines()
	from := min(m.scrollOffset, len(lines))
	to := min(m.scrollOffset+lc.ChartH, len(lines))
	rows := strings.Join(lines[from:to], "\n")
	return view.PadLinesWithBackground(rows, lc.InnerW, lc.ChartH, m.styles.colorBg)
}

func (m Model) chartPlaceholder() string {
	switch {
	case m.layoutCache.TooSmall():
		return "Terminal too small"
	case m.loading && m.dataset == nil:
		return "Loading..."
	case m.err != nil && m.layout == nil:
		return "Error: " + m.err.Error()
	case m.layout == nil:
		return "Loading..."
	case len(m.layout.Bars) == 0:
		return "No tasks"
	}
	return ""
}

func (m Model) footerModel() view.FooterModel {
	return view.FooterModel{
		InnerW:      m.layoutCache.InnerW,
		FooterH:     m.layoutCache.FooterH,
		LegendText:  m.legendText(),
		StatusText:  m.statusText(),
		HelpText:    m.help.View(m.keys),
		LegendStyle: m.styles.LegendStyle,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	}
}

// legendText renders one swatch per status in category order.
func (m Model) legendText() string {
	if m.layout == nil || len(m.layout.Legend) == 0 {
		return ""
	}
	sep := m.styles.LegendStyle.Render("  ")
	parts := make([]string, 0, len(m.layout.Legend))
	for _, entry := range m.layout.Legend {
		swatch := m.styleCache.Get(lipgloss.Color(entry.Color), m.styles.colorBg, false).Render("■")
		parts = append(parts, swatch+m.styles.LegendStyle.Render(" "+entry.Status))
	}
	return strings.Join(parts, sep)
}

func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if active, ok := m.tracker.Active(); ok && m.layout != nil {
		return fmt.Sprintf("row %d of %d", active+1, len(m.layout.Bars))
	}
	return ""
}

// tooltipBox renders the tooltip at its current fade opacity and returns
// its screen position. The tooltip is hidden once its row scrolls away.
func (m Model) tooltipBox() (string, int, int, bool) {
	if m.layout == nil || !m.tooltipShown() {
		return "", 0, 0, false
	}
	lc := m.layoutCache
	tip := m.tracker.Tooltip()

	elementRow := rowOf(tip.Y + lc.Chart.TooltipOffset)
	if elementRow < m.scrollOffset || elementRow >= m.scrollOffset+lc.ChartH {
		return "", 0, 0, false
	}

	style := m.styles.TooltipStyleAt(m.tooltipOpacity())
	frameW, _ := style.GetFrameSize()
	maxContent := max(1, min(tooltipMaxWidth, lc.InnerW)-frameW)
	box := style.Render(ansi.Truncate(tip.Content, maxContent, "…"))

	screenRow := elementRow - m.scrollOffset + lc.HeaderH
	anchorY := rowOf(tip.Y) - m.scrollOffset + lc.HeaderH
	left, top := placeTooltip(
		int(math.Round(tip.X)),
		anchorY,
		screenRow+1,
		lipgloss.Width(box),
		lipgloss.Height(box),
		lc.HeaderH,
		lc.InnerW,
		lc.HeaderH+lc.ChartH,
	)
	return box, left, top, true
}
