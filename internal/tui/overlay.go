package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// tooltipMaxWidth caps the tooltip box, border included.
const tooltipMaxWidth = 60

// OverlayModel splices a pre-rendered box onto the base view. Cells under
// the box are replaced; everything else is kept byte for byte.
type OverlayModel struct {
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// SetBackground sets the color re-applied after resets inside the box.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content on top of base with its top-left cell at (left, top).
// The box is clipped to the screen.
func (o OverlayModel) Render(base string, width, height int, content string, left, top int) string {
	if width <= 0 || height <= 0 {
		return base
	}
	contentLines := o.contentLines(content)
	boxW, boxH := o.contentSize(contentLines)
	if boxW == 0 || boxH == 0 {
		return base
	}

	left = min(max(left, 0), max(0, width-1))
	boxW = min(boxW, width-left)

	bgSeq := ""
	if o.bgColor != "" {
		bgSeq = ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	}

	baseLines := o.normalizeBase(base, width, height)
	for i, line := range contentLines {
		row := top + i
		if row < 0 || row >= height {
			continue
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth > boxW {
			line = ansi.Cut(line, 0, boxW)
			lineWidth = boxW
		}
		if lineWidth < boxW {
			line += strings.Repeat(" ", boxW-lineWidth)
		}
		line = o.applyOverlayBackgroundResets(line, bgSeq)

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		baseLines[row] = leftSlice + line + ansi.ResetStyle + rightSlice
	}

	return strings.Join(baseLines, "\n")
}

// placeTooltip positions a boxW x boxH box centered on anchorX with its
// bottom edge on anchorY. When the box would cover the header it flips below
// the hovered row. The result stays on screen.
func placeTooltip(anchorX, anchorY, belowY, boxW, boxH, minTop, width, height int) (int, int) {
	left := anchorX - boxW/2
	left = min(max(left, 0), max(0, width-boxW))

	top := anchorY - boxH + 1
	if top < minTop {
		top = belowY
	}
	top = min(max(top, minTop), max(minTop, height-boxH))
	return left, top
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func (o OverlayModel) applyOverlayBackgroundResets(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func (o OverlayModel) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
