package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/tui/commands"
)

// keyMap defines all keybindings for the TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Leave    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the short help view (single line).
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Leave, k.Copy, k.Reload, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view (multiple columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Leave},
		{k.PageUp, k.PageDown},
		{k.Copy, k.Reload},
		{k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "hover row"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "hover row"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("^u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("^d", "page down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		cmd := m.moveCursor(1)
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		cmd := m.moveCursor(-1)
		return m, cmd

	case key.Matches(msg, m.keys.Leave):
		m.cursor = -1
		if _, ok := m.tracker.Active(); !ok {
			return m, nil
		}
		m.tracker.Leave()
		LogHover("key_leave", -1, m.tracker.Tooltip(), m.tracker.Generation())
		cmd := m.startFade(true)
		return m, cmd

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.visibleRows())

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.visibleRows())

	case key.Matches(msg, m.keys.Copy):
		tip := m.tracker.Tooltip()
		if !tip.Visible || tip.Content == "" {
			return m, nil
		}
		return m, commands.CopyToClipboard(tip.Content)

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.statusMsg = "Reloading..."
		return m, commands.LoadDataset(m.source)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout("help")
	}

	return m, nil
}

// moveCursor moves the keyboard hover by delta rows and routes it through
// the same tracker transition as the pointer.
func (m *Model) moveCursor(delta int) tea.Cmd {
	if m.layout == nil || len(m.layout.Bars) == 0 {
		return nil
	}

	row := m.cursor
	if row < 0 {
		if active, ok := m.tracker.Active(); ok {
			row = active
		} else if delta > 0 {
			row = -1
		} else {
			row = len(m.layout.Bars)
		}
	}
	row = min(max(row+delta, 0), len(m.layout.Bars)-1)
	if active, ok := m.tracker.Active(); ok && active == row {
		m.cursor = row
		return nil
	}

	m.cursor = row
	bar := m.layout.Bars[row]
	m.tracker.Enter(bar, bar.Rect)
	m.ensureRowVisible(row)
	LogHover("key_enter", row, m.tracker.Tooltip(), m.tracker.Generation())
	return m.startFade(false)
}
