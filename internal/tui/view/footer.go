package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	FooterH     int
	LegendText  string
	StatusText  string
	HelpText    string
	LegendStyle lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooterModel renders the legend, status and help lines.
func RenderFooterModel(model FooterModel) string {
	if model.FooterH <= 0 {
		return ""
	}

	legendLine := footerLine(model.InnerW, model.LegendStyle, model.LegendText)
	statusLine := footerLine(model.InnerW, model.StatusStyle, model.StatusText)
	helpLine := footerLine(model.InnerW, model.HelpStyle, model.HelpText)

	s := legendLine + "\n" + statusLine + "\n" + helpLine
	return PlaceBox(model.InnerW, model.FooterH, model.VAlign, s, model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
