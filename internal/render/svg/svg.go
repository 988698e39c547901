// Package svg renders a chart layout as a standalone SVG document.
package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/javiermolinar/gantt/internal/chart"
)

// Options controls presentation that the layout does not carry.
type Options struct {
	Title      string
	FontFamily string
	FontSize   float64
	CharWidth  float64 // average glyph width as a fraction of FontSize
	Background string
	Foreground string
	Axis       string
	HoverFade  float64 // opacity of a hovered task group
}

// DefaultOptions returns options matching the default chart configuration.
func DefaultOptions() Options {
	cfg := chart.DefaultConfig()
	return Options{
		FontFamily: "sans-serif",
		FontSize:   cfg.FontSize,
		CharWidth:  cfg.CharWidth,
		Background: "#ffffff",
		Foreground: "#333333",
		Axis:       "#999999",
		HoverFade:  0.8,
	}
}

const (
	tickSize     = 6
	legendSwatch = 10
	legendGap    = 16
)

// Render returns the SVG document for l.
func Render(l *chart.Layout, opts Options) string {
	var svg strings.Builder

	svg.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&svg, `<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		num(l.Width), num(l.Height), num(l.Width), num(l.Height))
	if opts.Title != "" {
		fmt.Fprintf(&svg, "<title>%s</title>\n", escapeXML(opts.Title))
	}
	fmt.Fprintf(&svg, `<defs>
<style>
text { font-family: %s; font-size: %spx; fill: %s; }
.axis line, .axis path { stroke: %s; }
.task:hover { opacity: %s; }
.label { text-anchor: middle; pointer-events: none; }
.y-tick text { text-anchor: end; }
.x-tick text { text-anchor: middle; }
</style>
</defs>
`, escapeXML(opts.FontFamily), num(opts.FontSize), opts.Foreground, opts.Axis, num(opts.HoverFade))
	fmt.Fprintf(&svg, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background)

	drawAxes(&svg, l, opts)
	for _, b := range l.Bars {
		drawBar(&svg, b)
	}
	drawLegend(&svg, l, opts)

	svg.WriteString("</svg>\n")
	return svg.String()
}

// Write renders l to w.
func Write(w io.Writer, l *chart.Layout, opts Options) error {
	if _, err := io.WriteString(w, Render(l, opts)); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func drawAxes(svg *strings.Builder, l *chart.Layout, opts Options) {
	p := l.Plot
	bottom := p.Y + p.Height

	svg.WriteString(`<g class="axis x-axis">` + "\n")
	fmt.Fprintf(svg, `<path d="M%s,%sH%s"/>`+"\n", num(p.X), num(bottom), num(p.X+p.Width))
	for _, t := range l.XTicks {
		fmt.Fprintf(svg, `<g class="x-tick"><line x1="%s" y1="%s" x2="%s" y2="%s"/><text x="%s" y="%s">%s</text></g>`+"\n",
			num(t.Pos), num(bottom), num(t.Pos), num(bottom+tickSize),
			num(t.Pos), num(bottom+tickSize+opts.FontSize), escapeXML(t.Label))
	}
	svg.WriteString("</g>\n")

	svg.WriteString(`<g class="axis y-axis">` + "\n")
	fmt.Fprintf(svg, `<path d="M%s,%sV%s"/>`+"\n", num(p.X), num(p.Y), num(bottom))
	for _, t := range l.YTicks {
		fmt.Fprintf(svg, `<g class="y-tick"><line x1="%s" y1="%s" x2="%s" y2="%s"/><text x="%s" y="%s">%s</text></g>`+"\n",
			num(p.X-tickSize), num(t.Pos), num(p.X), num(t.Pos),
			num(p.X-tickSize-2), num(t.Pos+opts.FontSize/3), escapeXML(t.Label))
	}
	svg.WriteString("</g>\n")
}

// drawBar writes the highlight band, the task rectangle and the label as one
// group sharing a native tooltip.
func drawBar(svg *strings.Builder, b chart.Bar) {
	fmt.Fprintf(svg, `<g class="task" data-index="%d">`+"\n", b.Index)
	fmt.Fprintf(svg, "<title>%s</title>\n", escapeXML(b.Task.Summary()))
	fmt.Fprintf(svg, `<rect class="highlight" x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		num(b.Highlight.X), num(b.Highlight.Y), num(b.Highlight.Width), num(b.Highlight.Height),
		b.Fill, num(b.HighlightOpacity))
	fmt.Fprintf(svg, `<rect class="bar" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(b.Rect.X), num(b.Rect.Y), num(b.Rect.Width), num(b.Rect.Height), b.Fill)
	fmt.Fprintf(svg, `<text class="label" x="%s" y="%s" font-size="%s">%s</text>`+"\n",
		num(b.Label.X), num(b.Label.Y), num(b.Label.FontSize), escapeXML(b.Label.Text))
	svg.WriteString("</g>\n")
}

// drawLegend lays the category swatches out in one row along the bottom edge.
func drawLegend(svg *strings.Builder, l *chart.Layout, opts Options) {
	if len(l.Legend) == 0 {
		return
	}
	y := l.Height - legendSwatch - 4
	x := l.Plot.X

	svg.WriteString(`<g class="legend">` + "\n")
	for _, e := range l.Legend {
		fmt.Fprintf(svg, `<rect x="%s" y="%s" width="%d" height="%d" fill="%s"/>`,
			num(x), num(y), legendSwatch, legendSwatch, e.Color)
		fmt.Fprintf(svg, `<text x="%s" y="%s">%s</text>`+"\n",
			num(x+legendSwatch+4), num(y+legendSwatch), escapeXML(e.Status))
		x += legendSwatch + 4 + estimateTextWidth(e.Status, opts) + legendGap
	}
	svg.WriteString("</g>\n")
}

func estimateTextWidth(text string, opts Options) float64 {
	return float64(utf8.RuneCountInString(text)) * opts.FontSize * opts.CharWidth
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
