package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeys_MoveCursor(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	tasks := sampleTasks()

	m, _ = send(t, m, runeKey("j"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	tip := m.tracker.Tooltip()
	if !tip.Visible || tip.Content != tasks[0].Summary() {
		t.Errorf("tooltip = %+v, want visible %q", tip, tasks[0].Summary())
	}

	m, _ = send(t, m, runeKey("j"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	m, _ = send(t, m, runeKey("k"))
	if active, _ := m.tracker.Active(); active != 1 {
		t.Errorf("active = %d, want 1", active)
	}
}

func TestKeys_MoveCursorClamps(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)

	m, _ = send(t, m, runeKey("k"))
	if m.cursor != 5 {
		t.Fatalf("k from idle: cursor = %d, want last row 5", m.cursor)
	}
	gen := m.tracker.Generation()
	m, _ = send(t, m, runeKey("j"))
	if m.cursor != 5 {
		t.Errorf("cursor = %d, want 5", m.cursor)
	}
	if m.tracker.Generation() != gen {
		t.Error("staying on the same row should not be a transition")
	}
}

func TestKeys_MoveCursorFromPointerHover(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	x, y := barCell(m, 3)
	m, _ = send(t, m, motion(x, y))

	m, _ = send(t, m, runeKey("j"))
	if m.cursor != 4 {
		t.Errorf("cursor = %d, want 4", m.cursor)
	}
}

func TestKeys_Leave(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	m, _ = send(t, m, runeKey("j"))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.tracker.Active(); ok {
		t.Error("expected no active hover after esc")
	}
	if m.cursor != -1 {
		t.Errorf("cursor = %d, want -1", m.cursor)
	}
	if m.tracker.Tooltip().Content == "" {
		t.Error("content should be kept after leave")
	}
}

func TestKeys_Copy(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)

	_, cmd := send(t, m, runeKey("y"))
	if cmd != nil {
		t.Error("copy without a tooltip should do nothing")
	}

	m, _ = send(t, m, runeKey("j"))
	_, cmd = send(t, m, runeKey("y"))
	if cmd == nil {
		t.Error("expected a copy command")
	}
}

func TestKeys_Reload(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	m, cmd := send(t, m, runeKey("r"))
	if !m.loading {
		t.Error("expected loading after reload")
	}
	if cmd == nil {
		t.Fatal("expected a load command")
	}
}

func TestKeys_HelpShrinksChart(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	before := m.layoutCache.ChartH

	m, _ = send(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help")
	}
	if got, want := m.layoutCache.ChartH, before-(footerHeightFull-footerHeight); got != want {
		t.Errorf("chart height = %d, want %d", got, want)
	}
}

func TestKeys_PageScroll(t *testing.T) {
	m := newTestModel(t, manyTasks(40), 80, 24)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.scrollOffset != m.visibleRows() {
		t.Errorf("scroll = %d, want %d", m.scrollOffset, m.visibleRows())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.scrollOffset != 0 {
		t.Errorf("scroll = %d, want 0", m.scrollOffset)
	}
}

func TestKeys_Quit(t *testing.T) {
	m := newTestModel(t, sampleTasks(), 80, 24)
	_, cmd := send(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}
