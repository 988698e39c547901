package chart

// Tooltip is the hover overlay state.
type Tooltip struct {
	Visible bool
	Content string
	X       float64
	Y       float64
}

// Tracker is the hover state machine shared by every bar and label.
// It is Idle until Enter and returns to Idle on Leave; the latest event wins.
type Tracker struct {
	scale   float64
	offset  float64
	active  int
	gen     uint64
	tooltip Tooltip
}

// NewTracker returns an idle tracker using the tooltip settings of cfg.
func NewTracker(cfg Config) *Tracker {
	scale := cfg.TooltipScale
	if scale <= 0 {
		scale = 1
	}
	return &Tracker{scale: scale, offset: cfg.TooltipOffset, active: -1}
}

// Enter moves the tracker to Hovered on bar. element is the geometry of
// whatever was hovered (the task rectangle or its label).
func (t *Tracker) Enter(bar Bar, element Rect) Tooltip {
	t.active = bar.Index
	t.gen++
	t.tooltip = Tooltip{
		Visible: true,
		Content: bar.Task.Summary(),
		X:       (element.X + element.Width/2) * t.scale,
		Y:       element.Y*t.scale - t.offset,
	}
	return t.tooltip
}

// Leave hides the tooltip. The content stays until the next Enter.
func (t *Tracker) Leave() Tooltip {
	t.active = -1
	t.gen++
	t.tooltip.Visible = false
	return t.tooltip
}

// Move routes a pointer position through the layout. It reports whether
// the tooltip changed.
func (t *Tracker) Move(l *Layout, x, y float64) bool {
	bar, element, ok := HitTest(l, x, y)
	switch {
	case !ok && t.active < 0:
		return false
	case !ok:
		t.Leave()
		return true
	case bar.Index == t.active:
		return false
	default:
		t.Enter(bar, element)
		return true
	}
}

// Tooltip returns the current tooltip state.
func (t *Tracker) Tooltip() Tooltip { return t.tooltip }

// Active returns the hovered bar index.
func (t *Tracker) Active() (int, bool) {
	return t.active, t.active >= 0
}

// Generation increases on every transition. Deferred work such as a fade
// compares generations to detect that a newer event superseded it.
func (t *Tracker) Generation() uint64 { return t.gen }

// HitTest returns the bar under (x, y) and the geometry of the element hit.
// Later bars are drawn on top and win ties.
func HitTest(l *Layout, x, y float64) (Bar, Rect, bool) {
	if l == nil {
		return Bar{}, Rect{}, false
	}
	for i := len(l.Bars) - 1; i >= 0; i-- {
		b := l.Bars[i]
		if b.Rect.Contains(x, y) {
			return b, b.Rect, true
		}
		if box := b.Label.Box(); box.Contains(x, y) {
			return b, box, true
		}
	}
	return Bar{}, Rect{}, false
}
