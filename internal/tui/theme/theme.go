// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name         string `toml:"name"`
	Bg           string `toml:"bg"`            // Base background
	BgHighlight  string `toml:"bg_highlight"`  // Axis gutter, legend panel
	BgSelection  string `toml:"bg_selection"`  // Keyboard cursor row
	Fg           string `toml:"fg"`            // Primary foreground
	FgMuted      string `toml:"fg_muted"`      // Axis lines and ticks
	Accent       string `toml:"accent"`        // Title, borders
	GradientLow  string `toml:"gradient_low"`  // First status color
	GradientHigh string `toml:"gradient_high"` // Last status color

	// Tooltip colors (fall back to base theme values)
	TooltipBg string `toml:"tooltip_bg"`
	TooltipFg string `toml:"tooltip_fg"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// Gradient returns the status gradient endpoints.
func (t *Theme) Gradient() [2]string {
	return [2]string{t.GradientLow, t.GradientHigh}
}

func (t *Theme) applyDefaults() {
	if t.TooltipBg == "" {
		t.TooltipBg = coalesce(t.BgSelection, t.BgHighlight, t.Bg)
	}
	if t.TooltipFg == "" {
		t.TooltipFg = t.Fg
	}
	if t.GradientLow == "" {
		t.GradientLow = t.Accent
	}
	if t.GradientHigh == "" {
		t.GradientHigh = coalesce(t.Accent, t.Fg)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
