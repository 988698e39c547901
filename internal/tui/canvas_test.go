package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/gantt/internal/chart"
)

func TestCanvas_DrawAndRender(t *testing.T) {
	fg := lipgloss.Color("#ffffff")
	bg := lipgloss.Color("#000000")
	red := lipgloss.Color("#ff0000")

	c := newCanvas(5, 2, fg, bg)
	c.fill(-1, 3, 0, red)
	c.put(9, 9, 'x', fg)
	c.put(4, 0, '│', fg)
	c.text(3, 1, "hello", true, func(int) lipgloss.Color { return fg })

	if c.cells[0][2].bg != red || c.cells[0][3].bg != bg {
		t.Errorf("fill covered the wrong cells")
	}

	cache := NewStyleCache()
	got := ansi.Strip(c.renderRows(0, 2, cache))
	want := "    │\n   he"
	if got != want {
		t.Errorf("renderRows() = %q, want %q", got, want)
	}
	if cache.Len() != 3 {
		t.Errorf("cached styles = %d, want 3", cache.Len())
	}
}

func TestCanvas_RenderRowsClamps(t *testing.T) {
	c := newCanvas(3, 2, lipgloss.Color("#ffffff"), lipgloss.Color("#000000"))
	got := ansi.Strip(c.renderRows(-5, 10, NewStyleCache()))
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Errorf("got %d lines, want 2", len(lines))
	}
	if got := c.renderRows(2, 1, NewStyleCache()); got != "" {
		t.Errorf("empty range = %q, want empty", got)
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		name   string
		rect   chart.Rect
		x0, x1 int
	}{
		{name: "rounds edges", rect: chart.Rect{X: 9.4, Width: 8.4}, x0: 9, x1: 18},
		{name: "at least one cell", rect: chart.Rect{X: 3.2, Width: 0.1}, x0: 3, x1: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, x1 := cellSpan(tt.rect)
			if x0 != tt.x0 || x1 != tt.x1 {
				t.Errorf("cellSpan() = (%d, %d), want (%d, %d)", x0, x1, tt.x0, tt.x1)
			}
		})
	}
}

func TestDrawChart_LabelTextOnBar(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	c := m.drawChart(m.layout)

	bar := m.layout.Bars[0]
	x0, x1 := cellSpan(bar.Rect)
	row := rowOf(bar.Rect.Y)
	if c.cells[row][x0].bg != lipgloss.Color(bar.Fill) {
		t.Errorf("bar cell background = %q, want %q", c.cells[row][x0].bg, bar.Fill)
	}

	var text strings.Builder
	for x := x0; x < x1; x++ {
		text.WriteRune(c.cells[row][x].ch)
	}
	if !strings.Contains(text.String(), bar.Label.Text) {
		t.Errorf("bar text = %q, want it to contain %q", text.String(), bar.Label.Text)
	}

	want := m.styles.Palette().TextOn(bar.Fill)
	start := strings.Index(text.String(), bar.Label.Text)
	if got := c.cells[row][x0+start].fg; got != want {
		t.Errorf("label color = %q, want %q", got, want)
	}
}

func TestDrawChart_HoveredRowIsBold(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	m, _ = send(t, m, runeKey("j"))
	c := m.drawChart(m.layout)

	box := m.layout.Bars[0].Label.Box()
	cell := c.cells[rowOf(box.Y)][int(box.X+0.5)]
	if !cell.bold {
		t.Error("expected hovered label to be bold")
	}
}
