package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		lineWidth := lipgloss.Width(lines[i])
		if lineWidth >= width {
			continue
		}
		lines[i] += paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Placeholder centers a single message in a w x h box.
func Placeholder(w, h int, msg string, style lipgloss.Style, bg lipgloss.Color) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Center,
		lipgloss.Center,
		style.Render(msg),
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}
