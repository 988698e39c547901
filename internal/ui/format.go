package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/gantt/internal/chart"
)

// Fixed column widths of the layout table. The label column takes the rest.
const (
	colIndex   = 3
	colNumber  = 7
	colFill    = 7
	minLabelW  = 8
	maxLabelW  = 24
	numColumns = 4 // x, y, width, height
)

// layoutColumns sizes the date, status and label columns to fit width.
func layoutColumns(l *chart.Layout, width int) (labelW, dateW, statusW int) {
	dateW, statusW = len("DATE"), len("STATUS")
	labelW = len("LABEL")
	for _, b := range l.Bars {
		dateW = max(dateW, ansi.StringWidth(b.Task.Date))
		statusW = max(statusW, ansi.StringWidth(b.Task.Status))
		labelW = max(labelW, ansi.StringWidth(b.Task.Label))
	}

	fixed := colIndex + dateW + statusW + numColumns*colNumber + colFill + 8 // column gaps
	labelW = min(labelW, maxLabelW, max(minLabelW, width-fixed))
	return labelW, dateW, statusW
}

// PrintLayoutTable prints one row per bar with its geometry and fill,
// truncating labels so rows fit in width.
func PrintLayoutTable(w io.Writer, l *chart.Layout, width int) {
	labelW, dateW, statusW := layoutColumns(l, width)

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %*s %*s %*s %*s %-*s",
		colIndex, "#",
		labelW, "LABEL",
		dateW, "DATE",
		statusW, "STATUS",
		colNumber, "X",
		colNumber, "Y",
		colNumber, "W",
		colNumber, "H",
		colFill, "FILL",
	)
	fmt.Fprintln(w, formatHeader(header))

	for _, b := range l.Bars {
		label := ansi.Truncate(b.Task.Label, labelW, "…")
		fmt.Fprintf(w, "%-*d %s %-*s %-*s %s %s %s %s %s\n",
			colIndex, b.Index,
			formatLabel(padRight(label, labelW)),
			dateW, b.Task.Date,
			statusW, b.Task.Status,
			formatNumber(padLeft(coord(b.Rect.X), colNumber)),
			formatNumber(padLeft(coord(b.Rect.Y), colNumber)),
			formatNumber(padLeft(coord(b.Rect.Width), colNumber)),
			formatNumber(padLeft(coord(b.Rect.Height), colNumber)),
			b.Fill,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatMuted(fmt.Sprintf("%d tasks, %d dates, %d statuses, %gx%g",
		len(l.Bars), len(l.XTicks), len(l.Legend), l.Width, l.Height)))
}

// coord formats a coordinate with at most two decimals.
func coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func padRight(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}
