package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	TooltipBg   lipgloss.Color
	TooltipFg   lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnTooltip lipgloss.Color

	Gradient [2]string
	Light    bool

	bg string
	fg string
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		TooltipBg:   lipgloss.Color(t.TooltipBg),
		TooltipFg:   lipgloss.Color(t.TooltipFg),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnTooltip: lipgloss.Color(chooseTextColor(t.TooltipBg, t.TooltipFg, t.Bg)),

		Gradient: t.Gradient(),
		Light:    isLightTheme(t.Bg),

		bg: t.Bg,
		fg: t.Fg,
	}
}

// TextOn returns the theme text color that reads best on fill.
func (p *Palette) TextOn(fill string) lipgloss.Color {
	return lipgloss.Color(chooseTextColor(fill, p.fg, p.bg))
}

// Highlight composites fill over the background at the given opacity,
// the terminal stand-in for a translucent band.
func (p *Palette) Highlight(fill string, opacity float64) lipgloss.Color {
	return lipgloss.Color(blendColors(p.bg, fill, opacity))
}

// Fade returns hex moved towards the background. t = 0 is the color itself,
// t = 1 the background.
func (p *Palette) Fade(hex string, t float64) lipgloss.Color {
	return lipgloss.Color(blendColors(hex, p.bg, t))
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func chooseTextColor(bg, lightText, darkText string) string {
	lightContrast := contrastRatio(bg, lightText)
	darkContrast := contrastRatio(bg, darkText)
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance follows WCAG 2; unparsable colors count as black.
func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a towards b in RGB. Unparsable input returns a unchanged.
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
