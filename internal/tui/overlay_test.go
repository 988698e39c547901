package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlayRender_SplicesAtOffset(t *testing.T) {
	overlay := NewOverlayModel()

	width, height := 12, 4
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row

	got := overlay.Render(base, width, height, "ab\ncd", 3, 1)
	lines := strings.Split(ansi.Strip(got), "\n")
	if len(lines) != height {
		t.Fatalf("got %d lines, want %d", len(lines), height)
	}
	want := []string{
		"............",
		"...ab.......",
		"...cd.......",
		"............",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestOverlayRender_Clips(t *testing.T) {
	overlay := NewOverlayModel()
	base := "......\n......"

	got := overlay.Render(base, 6, 2, "wxyz\nWXYZ\nextra", 4, 1)
	lines := strings.Split(ansi.Strip(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "......" {
		t.Errorf("line 0 = %q, want unchanged", lines[0])
	}
	if lines[1] != "....wx" {
		t.Errorf("line 1 = %q, want %q", lines[1], "....wx")
	}
	for i, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
}

func TestOverlayRender_EmptyContent(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	if got := overlay.Render(base, 10, 2, "", 0, 0); got != base {
		t.Errorf("expected base unchanged, got %q", got)
	}
	if got := overlay.Render(base, 0, 0, "x", 0, 0); got != base {
		t.Errorf("expected base unchanged for zero size, got %q", got)
	}
}

func TestOverlayRender_BackgroundResets(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor("#0c0c0c")).String()

	content := "a" + ansi.ResetStyle + "b"
	got := overlay.Render("....", 4, 1, content, 0, 0)
	if !strings.Contains(got, ansi.ResetStyle+bgSeq) {
		t.Error("expected background to be re-applied after reset")
	}
}

func TestPlaceTooltip(t *testing.T) {
	tests := []struct {
		name     string
		anchorX  int
		anchorY  int
		belowY   int
		wantLeft int
		wantTop  int
	}{
		{name: "above the row", anchorX: 20, anchorY: 10, belowY: 12, wantLeft: 15, wantTop: 8},
		{name: "flips below near the top", anchorX: 20, anchorY: 1, belowY: 3, wantLeft: 15, wantTop: 3},
		{name: "clamped left", anchorX: 2, anchorY: 10, belowY: 12, wantLeft: 0, wantTop: 8},
		{name: "clamped right", anchorX: 38, anchorY: 10, belowY: 12, wantLeft: 30, wantTop: 8},
		{name: "clamped bottom", anchorX: 20, anchorY: 1, belowY: 19, wantLeft: 15, wantTop: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, top := placeTooltip(tt.anchorX, tt.anchorY, tt.belowY, 10, 3, 1, 40, 20)
			if left != tt.wantLeft || top != tt.wantTop {
				t.Errorf("placeTooltip() = (%d, %d), want (%d, %d)", left, top, tt.wantLeft, tt.wantTop)
			}
		})
	}
}
