package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderModel contains content and styles for the title bar.
type HeaderModel struct {
	InnerW     int
	Title      string
	Tasks      int
	Categories int
	Scroll     string
	TitleStyle lipgloss.Style
	MetaStyle  lipgloss.Style
	Bg         lipgloss.Color
}

// HeaderMeta formats the dataset counters shown next to the title.
func HeaderMeta(tasks, categories int) string {
	return fmt.Sprintf("%d %s · %d %s", tasks, plural(tasks, "task", "tasks"), categories, plural(categories, "status", "statuses"))
}

// RenderHeader renders the one-line title bar. The scroll indicator is
// right aligned when it fits.
func RenderHeader(model HeaderModel) string {
	if model.InnerW <= 0 {
		return ""
	}
	left := model.TitleStyle.Render(model.Title) + model.MetaStyle.Render("  "+HeaderMeta(model.Tasks, model.Categories))
	left = ansi.Truncate(left, model.InnerW, "…")

	line := left
	if model.Scroll != "" {
		gap := model.InnerW - lipgloss.Width(left) - lipgloss.Width(model.Scroll)
		if gap >= 1 {
			spacer := lipgloss.NewStyle().Background(model.Bg).Render(fmt.Sprintf("%*s", gap, ""))
			line = left + spacer + model.MetaStyle.Render(model.Scroll)
		}
	}
	return PadLinesWithBackground(line, model.InnerW, 1, model.Bg)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
