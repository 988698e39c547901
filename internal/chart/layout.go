package chart

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/javiermolinar/gantt/internal/task"
)

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Label is a text primitive anchored at its horizontal center and baseline.
type Label struct {
	Text     string
	X        float64
	Y        float64
	Width    float64 // estimated rendered width
	FontSize float64
}

// Box returns the estimated bounding box of the label.
func (l Label) Box() Rect {
	return Rect{X: l.X - l.Width/2, Y: l.Y - l.FontSize, Width: l.Width, Height: l.FontSize}
}

// Bar is the geometry computed for one task row.
type Bar struct {
	Index            int
	Task             task.Task
	Rect             Rect   // task rectangle inside the date band
	Highlight        Rect   // full plot-width band beneath Rect
	Fill             string // shared by Rect and Highlight
	HighlightOpacity float64
	Label            Label
}

// LegendEntry pairs a category with its color.
type LegendEntry struct {
	Status string
	Color  string
}

// Layout is the full set of drawable primitives for one dataset.
type Layout struct {
	Width      float64
	Height     float64
	Plot       Rect
	Categories *CategorySet
	Legend     []LegendEntry
	Bars       []Bar
	XTicks     []Tick
	YTicks     []Tick
}

// Engine combines scales and color encoding into bar geometry.
// An Engine is built for one dataset; use NewEngine again when it changes.
type Engine struct {
	Config     Config
	Categories *CategorySet
	Band       *BandScale
	Rows       *RowScale
	Colors     *ColorEncoder

	// dates and statuses fingerprint the dataset the engine was built for.
	dates    []string
	statuses []string
}

// NewEngine derives categories, scales and the color encoder for tasks.
func NewEngine(tasks []task.Task, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dates := make([]string, len(tasks))
	for i, t := range tasks {
		dates[i] = t.Date
	}

	left := cfg.Margins.Left
	band, err := NewBandScale(dates, left, left+cfg.PlotWidth(), cfg.BandPadding)
	if err != nil {
		return nil, fmt.Errorf("building band scale: %w", err)
	}
	rows, err := NewRowScale(len(tasks), cfg.Margins.Top, cfg.RowHeight)
	if err != nil {
		return nil, fmt.Errorf("building row scale: %w", err)
	}
	colors, err := NewColorEncoder(cfg.ColorRange[0], cfg.ColorRange[1])
	if err != nil {
		return nil, fmt.Errorf("building color encoder: %w", err)
	}

	categories := Categories(tasks)
	return &Engine{
		Config:     cfg,
		Categories: categories,
		Band:       band,
		Rows:       rows,
		Colors:     colors,
		dates:      band.Domain(),
		statuses:   categories.Values(),
	}, nil
}

// Compute lays out tasks with freshly built scales.
func Compute(tasks []task.Task, cfg Config) (*Layout, error) {
	e, err := NewEngine(tasks, cfg)
	if err != nil {
		return nil, err
	}
	return e.Layout(tasks)
}

// Layout computes the geometry of tasks. It only reads the engine, so
// repeated calls with the same tasks yield identical layouts.
func (e *Engine) Layout(tasks []task.Task) (*Layout, error) {
	if err := e.check(tasks); err != nil {
		return nil, err
	}

	cfg := e.Config
	plot := Rect{
		X:      cfg.Margins.Left,
		Y:      cfg.Margins.Top,
		Width:  cfg.PlotWidth(),
		Height: e.Rows.Extent(),
	}

	bars := make([]Bar, 0, len(tasks))
	yTicks := e.Rows.Ticks()
	for i, t := range tasks {
		bar, err := e.bar(i, t, plot)
		if err != nil {
			return nil, fmt.Errorf("task %d (%q): %w", i, t.Label, err)
		}
		bars = append(bars, bar)
		yTicks[i].Label = t.Label
	}

	legend := make([]LegendEntry, 0, e.Categories.Len())
	for i, status := range e.Categories.Values() {
		color, err := e.Colors.Color(i, e.Categories.Len())
		if err != nil {
			return nil, err
		}
		legend = append(legend, LegendEntry{Status: status, Color: color})
	}

	return &Layout{
		Width:      cfg.Width,
		Height:     max(cfg.Height, cfg.Margins.Top+plot.Height+cfg.Margins.Bottom),
		Plot:       plot,
		Categories: e.Categories,
		Legend:     legend,
		Bars:       bars,
		XTicks:     e.Band.Ticks(),
		YTicks:     yTicks,
	}, nil
}

// check rejects tasks whose row count, date domain or statuses differ from
// the dataset the engine was built for.
func (e *Engine) check(tasks []task.Task) error {
	if len(tasks) != e.Rows.Len() {
		return fmt.Errorf("%w: %d rows, %d tasks", ErrStaleScale, e.Rows.Len(), len(tasks))
	}
	dates := make([]string, len(tasks))
	for i, t := range tasks {
		dates[i] = t.Date
	}
	if got := NewCategorySet(dates...).Values(); !slices.Equal(got, e.dates) {
		return fmt.Errorf("%w: dates %v, want %v", ErrStaleScale, got, e.dates)
	}
	if got := Categories(tasks).Values(); !slices.Equal(got, e.statuses) {
		return fmt.Errorf("%w: statuses %v, want %v", ErrStaleScale, got, e.statuses)
	}
	return nil
}

func (e *Engine) bar(i int, t task.Task, plot Rect) (Bar, error) {
	cfg := e.Config
	if err := t.Validate(); err != nil {
		return Bar{}, err
	}

	x, err := e.Band.Scale(t.Date)
	if err != nil {
		return Bar{}, err
	}
	rowTop, err := e.Rows.Scale(i)
	if err != nil {
		return Bar{}, err
	}
	fill, err := e.Colors.ForStatus(e.Categories, t.Status)
	if err != nil {
		return Bar{}, err
	}

	inset := cfg.RowHeight * cfg.RowGap / 2
	height := cfg.RowHeight * (1 - cfg.RowGap)
	width := e.Band.Bandwidth()

	return Bar{
		Index:            i,
		Task:             t,
		Rect:             Rect{X: x, Y: rowTop + inset, Width: width, Height: height},
		Highlight:        Rect{X: plot.X, Y: rowTop + inset, Width: plot.Width, Height: height},
		Fill:             fill,
		HighlightOpacity: cfg.HighlightOpacity,
		Label: Label{
			Text:     t.Label,
			X:        x + width/2,
			Y:        rowTop + cfg.LabelOffset,
			Width:    textWidth(t.Label, cfg.FontSize, cfg.CharWidth),
			FontSize: cfg.FontSize,
		},
	}, nil
}

// textWidth estimates rendered text width from the glyph count.
func textWidth(s string, fontSize, charWidth float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * charWidth
}
