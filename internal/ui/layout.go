package ui

import (
	"context"

	"github.com/spf13/cobra"
)

func (a *App) layoutCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the computed chart geometry",
		Long: `Print the rectangle and fill computed for every task, in chart units.

Useful to check how a configuration change moves the bars without opening
the interactive view.

Example:
  gantt layout plan.yaml
  gantt layout plan.yaml --no-color --width 120`,
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
			if width <= 0 {
				width = termWidth()
			}
			PrintLayoutTable(cmd.OutOrStdout(), l, width)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Table width (default terminal width)")
	return cmd
}
