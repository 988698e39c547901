package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/chart"
	"github.com/javiermolinar/gantt/internal/render/svg"
)

func (a *App) renderCmd() *cobra.Command {
	var output string
	var title string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the chart as SVG",
		Long: `Render the task list as a standalone SVG document.

Each task gets a highlight band, a bar and a label. Hovering a bar in a
browser shows the same summary as the interactive view.

Example:
  gantt render plan.yaml -o plan.svg
  gantt render plan.csv > plan.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(context.Background(), args)
			if err != nil {
				return err
			}
			l, err := a.computeLayout(ds, chart.DefaultConfig().ColorRange)
			if err != nil {
				return err
			}

			opts := svg.DefaultOptions()
			opts.Title = title
			opts.FontSize = a.config.Chart.FontSize
			opts.CharWidth = a.config.Chart.CharWidth

			if output == "" || output == "-" {
				return svg.Write(cmd.OutOrStdout(), l, opts)
			}
			return writeFile(output, func(w io.Writer) error {
				return svg.Write(w, l, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	return cmd
}

// writeFile creates path and writes it with fn, closing the file on every path.
func writeFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()
	return fn(f)
}
