package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	ch   rune
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// canvas is a fixed grid of styled cells. Writes outside the grid are dropped.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int, fg, bg lipgloss.Color) *canvas {
	c := &canvas{width: max(0, width), height: max(0, height)}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		row := make([]cell, c.width)
		for x := range row {
			row[x] = cell{ch: ' ', fg: fg, bg: bg}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// fill paints the background of [x0, x1) on row y.
func (c *canvas) fill(x0, x1, y int, bg lipgloss.Color) {
	if y < 0 || y >= c.height {
		return
	}
	for x := max(0, x0); x < min(c.width, x1); x++ {
		c.cells[y][x].bg = bg
	}
}

// put writes one rune keeping the existing background.
func (c *canvas) put(x, y int, ch rune, fg lipgloss.Color) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y][x].ch = ch
	c.cells[y][x].fg = fg
}

// text writes s starting at x. fgAt picks the foreground per column so text
// can change color where it crosses a filled bar.
func (c *canvas) text(x, y int, s string, bold bool, fgAt func(x int) lipgloss.Color) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range s {
		if x >= c.width {
			return
		}
		if x >= 0 {
			c.cells[y][x].ch = r
			c.cells[y][x].fg = fgAt(x)
			c.cells[y][x].bold = bold
		}
		x++
	}
}

// renderRows renders rows [from, to) joining runs of equal style.
func (c *canvas) renderRows(from, to int, cache *StyleCache) string {
	from = max(0, from)
	to = min(c.height, to)
	lines := make([]string, 0, max(0, to-from))
	for y := from; y < to; y++ {
		lines = append(lines, c.renderRow(y, cache))
	}
	return strings.Join(lines, "\n")
}

func (c *canvas) renderRow(y int, cache *StyleCache) string {
	row := c.cells[y]
	var b strings.Builder
	var run strings.Builder
	for x := 0; x < len(row); {
		start := x
		run.Reset()
		for x < len(row) && sameStyle(row[x], row[start]) {
			run.WriteRune(row[x].ch)
			x++
		}
		s := row[start]
		b.WriteString(cache.Get(s.fg, s.bg, s.bold).Render(run.String()))
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}
