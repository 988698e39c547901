// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/gantt/internal/chart"
)

// Config holds the application configuration.
type Config struct {
	Chart  ChartConfig  `toml:"chart"`
	Source SourceConfig `toml:"source"`
	UI     UIConfig     `toml:"ui"`
}

// ChartConfig holds layout settings. Empty colors fall back to the theme gradient.
type ChartConfig struct {
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
	MarginLeft       float64 `toml:"margin_left"`
	MarginTop        float64 `toml:"margin_top"`
	MarginRight      float64 `toml:"margin_right"`
	MarginBottom     float64 `toml:"margin_bottom"`
	BandPadding      float64 `toml:"band_padding"`
	ColorLow         string  `toml:"color_low"`  // e.g., "#4e79a7"
	ColorHigh        string  `toml:"color_high"` // e.g., "#e15759"
	RowHeight        float64 `toml:"row_height"`
	RowGap           float64 `toml:"row_gap"`
	HighlightOpacity float64 `toml:"highlight_opacity"`
	LabelOffset      float64 `toml:"label_offset"`
	FontSize         float64 `toml:"font_size"`
	CharWidth        float64 `toml:"char_width"`
	TooltipScale     float64 `toml:"tooltip_scale"`
	TooltipOffset    float64 `toml:"tooltip_offset"`
}

// SourceConfig holds the default task source.
type SourceConfig struct {
	Path    string `toml:"path"`
	Format  string `toml:"format"`  // "auto", "yaml", "toml", "json", "csv", "sqlite"
	Dataset string `toml:"dataset"` // sqlite dataset name
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme  string `toml:"theme"`   // "mocha", "macchiato", "frappe", "latte", "light"
	FadeMS int    `toml:"fade_ms"` // tooltip fade duration, 0 disables
}

// Default returns the default configuration.
func Default() *Config {
	d := chart.DefaultConfig()
	return &Config{
		Chart: ChartConfig{
			Width:            d.Width,
			Height:           d.Height,
			MarginLeft:       d.Margins.Left,
			MarginTop:        d.Margins.Top,
			MarginRight:      d.Margins.Right,
			MarginBottom:     d.Margins.Bottom,
			BandPadding:      d.BandPadding,
			ColorLow:         "",
			ColorHigh:        "",
			RowHeight:        d.RowHeight,
			RowGap:           d.RowGap,
			HighlightOpacity: d.HighlightOpacity,
			LabelOffset:      d.LabelOffset,
			FontSize:         d.FontSize,
			CharWidth:        d.CharWidth,
			TooltipScale:     d.TooltipScale,
			TooltipOffset:    d.TooltipOffset,
		},
		Source: SourceConfig{
			Path:    "",
			Format:  "auto",
			Dataset: "default",
		},
		UI: UIConfig{
			Theme:  "frappe",
			FadeMS: 200,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "gantt", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Source.Path = expandPath(cfg.Source.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"GANTT_WIDTH", &cfg.Chart.Width},
		{"GANTT_HEIGHT", &cfg.Chart.Height},
		{"GANTT_BAND_PADDING", &cfg.Chart.BandPadding},
		{"GANTT_ROW_HEIGHT", &cfg.Chart.RowHeight},
		{"GANTT_TOOLTIP_SCALE", &cfg.Chart.TooltipScale},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", f.key, err)
		}
		*f.dst = n
	}

	// Chart colors
	if v := os.Getenv("GANTT_COLOR_LOW"); v != "" {
		cfg.Chart.ColorLow = v
	}
	if v := os.Getenv("GANTT_COLOR_HIGH"); v != "" {
		cfg.Chart.ColorHigh = v
	}

	// Source overrides
	if v := os.Getenv("GANTT_SOURCE"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("GANTT_FORMAT"); v != "" {
		cfg.Source.Format = v
	}
	if v := os.Getenv("GANTT_DATASET"); v != "" {
		cfg.Source.Dataset = v
	}

	// UI overrides
	if v := os.Getenv("GANTT_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("GANTT_UI_FADE_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing GANTT_UI_FADE_MS: %w", err)
		}
		cfg.UI.FadeMS = n
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validFormats = map[string]bool{
	"auto":   true,
	"yaml":   true,
	"toml":   true,
	"json":   true,
	"csv":    true,
	"sqlite": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if (c.Chart.ColorLow == "") != (c.Chart.ColorHigh == "") {
		return errors.New("both color_low and color_high must be set, or neither")
	}
	cc := c.ChartConfig([2]string{"#000000", "#ffffff"})
	if err := cc.Validate(); err != nil {
		return err
	}
	if !validFormats[strings.ToLower(c.Source.Format)] {
		return fmt.Errorf("invalid source format: %s", c.Source.Format)
	}
	if strings.EqualFold(c.Source.Format, "sqlite") && c.Source.Dataset == "" {
		return errors.New("dataset must be set for sqlite sources")
	}
	if c.UI.FadeMS < 0 {
		return errors.New("fade_ms cannot be negative")
	}
	return nil
}

// HasColors returns true if the gradient endpoints are configured.
func (c *Config) HasColors() bool {
	return c.Chart.ColorLow != "" && c.Chart.ColorHigh != ""
}

// ChartConfig converts the [chart] section to layout settings.
// fallback supplies the gradient when no colors are configured.
func (c *Config) ChartConfig(fallback [2]string) chart.Config {
	colors := fallback
	if c.HasColors() {
		colors = [2]string{c.Chart.ColorLow, c.Chart.ColorHigh}
	}
	return chart.Config{
		Width:  c.Chart.Width,
		Height: c.Chart.Height,
		Margins: chart.Margins{
			Left:   c.Chart.MarginLeft,
			Top:    c.Chart.MarginTop,
			Right:  c.Chart.MarginRight,
			Bottom: c.Chart.MarginBottom,
		},
		BandPadding:      c.Chart.BandPadding,
		ColorRange:       colors,
		RowHeight:        c.Chart.RowHeight,
		RowGap:           c.Chart.RowGap,
		HighlightOpacity: c.Chart.HighlightOpacity,
		LabelOffset:      c.Chart.LabelOffset,
		FontSize:         c.Chart.FontSize,
		CharWidth:        c.Chart.CharWidth,
		TooltipScale:     c.Chart.TooltipScale,
		TooltipOffset:    c.Chart.TooltipOffset,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
