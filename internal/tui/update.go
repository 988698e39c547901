package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/chart"
	"github.com/javiermolinar/gantt/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout("resize")
		return m, nil

	case commands.DatasetLoadedMsg:
		m.dataset = msg.Dataset
		m.loading = false
		m.err = nil
		m.statusMsg = ""
		m.scrollOffset = 0
		m.cursor = -1
		// Rows may have changed meaning; never keep a hover across datasets.
		if _, ok := m.tracker.Active(); ok {
			m.tracker.Leave()
			m.fade = fadeState{gen: m.tracker.Generation(), step: fadeSteps, out: true}
		}
		m.relayout("load")
		LogDataset(msg.Dataset.Name, msg.Dataset.Len(), m.categoryCount())
		return m, nil

	case commands.FadeMsg:
		cmd := m.advanceFade(msg)
		return m, cmd

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		LogError("command", msg.Err)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// relayout recomputes the chart for the current window and dataset.
// Nothing from the previous layout is kept except the hovered row.
func (m *Model) relayout(reason string) {
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.styleCache = NewStyleCache()

	if m.dataset == nil || m.layoutCache.TooSmall() {
		m.layout = nil
		return
	}

	layout, err := chart.Compute(m.tasks(), m.layoutCache.Chart)
	if err != nil {
		m.layout = nil
		m.err = err
		LogError("relayout", err)
		return
	}
	m.layout = layout
	if m.err != nil && !m.loading {
		m.err = nil
	}

	// Re-anchor the tooltip to the new geometry of the hovered bar.
	if active, ok := m.tracker.Active(); ok {
		if active < len(layout.Bars) {
			bar := layout.Bars[active]
			m.tracker.Enter(bar, bar.Rect)
			m.fade = fadeState{gen: m.tracker.Generation(), step: fadeSteps}
		} else {
			m.tracker.Leave()
			m.fade = fadeState{gen: m.tracker.Generation(), step: fadeSteps, out: true}
		}
	}
	m.clampScroll()

	LogRelayout(reason, m.width, m.height, len(layout.Bars))
}

// handleMouse routes pointer motion through the hit test.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.layout == nil {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(1)
		return nil
	}

	x, y := m.chartPoint(msg.X, msg.Y)
	if !m.tracker.Move(m.layout, x, y) {
		return nil
	}

	m.cursor = -1
	tip := m.tracker.Tooltip()
	active, _ := m.tracker.Active()
	if tip.Visible {
		LogHover("mouse_enter", active, tip, m.tracker.Generation())
		return m.startFade(false)
	}
	LogHover("mouse_leave", active, tip, m.tracker.Generation())
	return m.startFade(true)
}

// chartPoint converts a screen cell to chart coordinates at the cell center.
// Cells outside the chart viewport map to a point no bar contains.
func (m Model) chartPoint(col, row int) (float64, float64) {
	lc := m.layoutCache
	r := row - lc.HeaderH
	if r < 0 || r >= lc.ChartH {
		return -1, -1
	}
	return float64(col) + 0.5, float64(r+m.scrollOffset) + 0.5
}

// startFade begins a fade for the current tracker generation.
func (m *Model) startFade(out bool) tea.Cmd {
	m.fade = fadeState{gen: m.tracker.Generation(), out: out}
	interval := m.fadeInterval()
	if interval <= 0 {
		m.fade.step = fadeSteps
		return nil
	}
	return commands.Fade(m.fade.gen, 1, interval)
}

// advanceFade applies a fade step unless a newer hover superseded it.
func (m *Model) advanceFade(msg commands.FadeMsg) tea.Cmd {
	if msg.Gen != m.tracker.Generation() || msg.Gen != m.fade.gen {
		LogFade(msg.Gen, msg.Step, true)
		return nil
	}
	LogFade(msg.Gen, msg.Step, false)
	m.fade.step = msg.Step
	if m.fade.done() {
		return nil
	}
	return commands.Fade(msg.Gen, msg.Step+1, m.fadeInterval())
}

// tooltipShown reports whether the tooltip is drawn, including while it
// fades out after a leave.
func (m Model) tooltipShown() bool {
	if m.tracker.Tooltip().Visible {
		return true
	}
	return m.fade.out && !m.fade.done() && m.tracker.Tooltip().Content != ""
}

func (m Model) tooltipOpacity() float64 {
	if m.fade.done() {
		if m.fade.out {
			return 0
		}
		return 1
	}
	return m.fade.opacity()
}

func (m Model) categoryCount() int {
	if m.layout == nil {
		return 0
	}
	return m.layout.Categories.Len()
}

// visibleRows returns the chart rows that fit in the viewport.
func (m Model) visibleRows() int {
	return max(1, m.layoutCache.ChartH)
}

func (m Model) canvasHeight() int {
	if m.layout == nil {
		return 0
	}
	return int(m.layout.Height)
}

func (m *Model) scrollBy(delta int) {
	m.scrollOffset += delta
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxScroll := max(0, m.canvasHeight()-m.layoutCache.ChartH)
	m.scrollOffset = min(max(m.scrollOffset, 0), maxScroll)
}

// ensureRowVisible scrolls so that row i sits inside the viewport.
func (m *Model) ensureRowVisible(i int) {
	if m.layout == nil {
		return
	}
	top := int(m.layout.Plot.Y) + i
	if top < m.scrollOffset+chartMarginTop {
		m.scrollOffset = top - chartMarginTop
	}
	bottom := m.scrollOffset + m.layoutCache.ChartH - chartMarginBottom
	if top >= bottom {
		m.scrollOffset += top - bottom + 1
	}
	m.clampScroll()
}
