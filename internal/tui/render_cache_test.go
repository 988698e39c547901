package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sameLines(a, b []string) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func TestRenderCache(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)

	first := m.chartLines()
	if got, want := len(first), int(m.layout.Height); got != want {
		t.Fatalf("lines = %d, want %d", got, want)
	}
	if again := m.chartLines(); !sameLines(first, again) {
		t.Error("expected cached lines to be reused")
	}

	x, y := barCell(m, 1)
	m, _ = send(t, m, motion(x, y))
	hovered := m.chartLines()
	if sameLines(first, hovered) {
		t.Error("expected a redraw after hover")
	}
	if again := m.chartLines(); !sameLines(hovered, again) {
		t.Error("expected cached lines while hover is unchanged")
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if resized := m.chartLines(); sameLines(hovered, resized) {
		t.Error("expected a redraw after relayout")
	}
}
