package chart

import (
	"fmt"
	"math"
)

// Margins reserves space around the plot area.
type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Config holds every constant the layout engine consumes.
type Config struct {
	Width            float64
	Height           float64
	Margins          Margins
	BandPadding      float64   // fraction of each date band left empty, [0, 1)
	ColorRange       [2]string // low and high gradient endpoints
	RowHeight        float64   // fixed pitch per row
	RowGap           float64   // fraction of the row pitch left empty, [0, 1)
	HighlightOpacity float64
	LabelOffset      float64 // label baseline below the row top
	FontSize         float64
	CharWidth        float64 // average glyph width as a fraction of FontSize
	TooltipScale     float64 // correction applied to hovered element coordinates
	TooltipOffset    float64 // tooltip lift above the hovered element
}

// DefaultConfig returns the default chart configuration.
func DefaultConfig() Config {
	return Config{
		Width:            500,
		Height:           400,
		Margins:          Margins{Left: 40, Top: 30, Right: 40, Bottom: 50},
		BandPadding:      0.4,
		ColorRange:       [2]string{"#4e79a7", "#e15759"},
		RowHeight:        30,
		RowGap:           0.2,
		HighlightOpacity: 0.2,
		LabelOffset:      18,
		FontSize:         12,
		CharWidth:        0.6,
		TooltipScale:     1,
		TooltipOffset:    8,
	}
}

// PlotWidth returns the horizontal space between the margins.
func (c Config) PlotWidth() float64 {
	return c.Width - c.Margins.Left - c.Margins.Right
}

// Validate checks the configuration.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"left margin", c.Margins.Left},
		{"top margin", c.Margins.Top},
		{"right margin", c.Margins.Right},
		{"bottom margin", c.Margins.Bottom},
		{"band padding", c.BandPadding},
		{"row height", c.RowHeight},
		{"row gap", c.RowGap},
		{"highlight opacity", c.HighlightOpacity},
		{"label offset", c.LabelOffset},
		{"font size", c.FontSize},
		{"char width", c.CharWidth},
		{"tooltip scale", c.TooltipScale},
		{"tooltip offset", c.TooltipOffset},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, f.name)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive", ErrInvalidConfig)
	}
	if c.Margins.Left < 0 || c.Margins.Top < 0 || c.Margins.Right < 0 || c.Margins.Bottom < 0 {
		return fmt.Errorf("%w: margins cannot be negative", ErrInvalidConfig)
	}
	if c.PlotWidth() <= 0 {
		return fmt.Errorf("%w: margins leave no plot width", ErrInvalidConfig)
	}
	if c.BandPadding < 0 || c.BandPadding >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidPadding, c.BandPadding)
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("%w: row height must be positive", ErrInvalidConfig)
	}
	if c.RowGap < 0 || c.RowGap >= 1 {
		return fmt.Errorf("%w: row gap must be in [0, 1)", ErrInvalidConfig)
	}
	if c.HighlightOpacity < 0 || c.HighlightOpacity > 1 {
		return fmt.Errorf("%w: highlight opacity must be in [0, 1]", ErrInvalidConfig)
	}
	if c.FontSize < 0 || c.CharWidth < 0 {
		return fmt.Errorf("%w: font size and char width cannot be negative", ErrInvalidConfig)
	}
	if c.TooltipScale <= 0 {
		return fmt.Errorf("%w: tooltip scale must be positive", ErrInvalidConfig)
	}
	return nil
}
