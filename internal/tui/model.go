// Package tui provides the terminal user interface for gantt.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/chart"
	"github.com/javiermolinar/gantt/internal/config"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/commands"
	"github.com/javiermolinar/gantt/internal/tui/theme"
)

// fadeSteps is the number of frames in a tooltip fade.
const fadeSteps = 4

// fadeState tracks the tooltip fade scheduled by the latest hover transition.
type fadeState struct {
	gen  uint64
	step int
	out  bool
}

// opacity returns the tooltip opacity in [0, 1].
func (f fadeState) opacity() float64 {
	p := float64(f.step) / fadeSteps
	if f.out {
		return 1 - p
	}
	return p
}

func (f fadeState) done() bool {
	return f.step >= fadeSteps
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	source task.Source
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Chart state
	dataset   *task.Dataset
	chartBase chart.Config // user settings; cell geometry comes from the layout cache
	layout    *chart.Layout
	tracker   *chart.Tracker
	fade      fadeState
	cursor    int // keyboard hover row, -1 when the pointer drives hover
	loading   bool

	// Components
	keys keyMap
	help help.Model

	// Overlay state
	overlay OverlayModel

	// Terminal dimensions and layout
	width        int
	height       int
	scrollOffset int

	// Cached render data
	layoutCache LayoutCache
	styleCache  *StyleCache
	renderCache *RenderCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// New creates a new TUI model.
func New(src task.Source, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	chartBase := cfg.ChartConfig(t.Gradient())

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.HelpStyle.Bold(true)
	h.Styles.FullDesc = styles.HelpStyle
	h.Styles.FullSeparator = styles.HelpStyle

	m := &Model{
		source:      src,
		config:      cfg,
		theme:       t,
		styles:      styles,
		chartBase:   chartBase,
		fade:        fadeState{step: fadeSteps, out: true},
		cursor:      -1,
		loading:     true,
		keys:        defaultKeyMap,
		help:        h,
		overlay:     NewOverlayModel(),
		styleCache:  NewStyleCache(),
		renderCache: NewRenderCache(),
	}
	m.layoutCache = m.buildLayoutCache(0, 0)
	m.tracker = chart.NewTracker(m.layoutCache.Chart)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadDataset(m.source)
}

// tasks returns the loaded tasks in row order.
func (m Model) tasks() []task.Task {
	return m.dataset.Tasks()
}

// fadeInterval returns the delay between fade steps; zero disables fading.
func (m Model) fadeInterval() time.Duration {
	if m.config == nil || m.config.UI.FadeMS <= 0 {
		return 0
	}
	return time.Duration(m.config.UI.FadeMS) * time.Millisecond / fadeSteps
}

// Run starts the TUI.
func Run(src task.Source, cfg *config.Config) error {
	return RunWithDebug(src, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(src task.Source, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(src, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
