package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/chart"
)

func (a *App) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories [file]",
		Short: "List statuses and their colors",
		Long: `List the distinct statuses in first-seen order with the color each one
gets on the chart.

Example:
  gantt categories plan.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(context.Background(), args)
			if err != nil {
				return err
			}
			l, err := a.computeLayout(ds, a.themeGradient())
			if err != nil {
				return err
			}

			var opts []termenv.OutputOption
			if a.noColor {
				opts = append(opts, termenv.WithProfile(termenv.Ascii))
			}
			PrintLegend(termenv.NewOutput(cmd.OutOrStdout(), opts...), l.Legend)
			return nil
		},
	}
}

// PrintLegend prints one line per status with a color swatch. The swatch is
// dropped when the output cannot show color.
func PrintLegend(out *termenv.Output, legend []chart.LegendEntry) {
	w := io.Writer(out)
	if len(legend) == 0 {
		fmt.Fprintln(w, formatMuted("No statuses"))
		return
	}
	for i, entry := range legend {
		swatch := "  "
		if out.Profile != termenv.Ascii {
			swatch = out.String("  ").Background(out.Color(entry.Color)).String()
		}
		fmt.Fprintf(w, "%2d %s %s %s\n", i, swatch, entry.Color, entry.Status)
	}
}
