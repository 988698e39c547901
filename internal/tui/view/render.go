// Package view provides view composition helpers for the TUI.
package view

// OverlayRenderer splices an overlay box onto base content at a cell offset.
type OverlayRenderer interface {
	Render(base string, width, height int, content string, left, top int) string
}

// ViewState contains pre-rendered content and overlay metadata.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	TooltipContent   string
	TooltipLeft      int
	TooltipTop       int
	ShowTooltip      bool
	Overlay          OverlayRenderer
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	base := state.BaseContent
	if state.ShowTooltip && state.Overlay != nil && state.TooltipContent != "" {
		return state.Overlay.Render(base, state.Width, state.Height, state.TooltipContent, state.TooltipLeft, state.TooltipTop)
	}

	return base
}
