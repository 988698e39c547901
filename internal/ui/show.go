package ui

import (
	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Open the interactive chart",
		Long: `Open the task list as an interactive chart.

Move the pointer over a bar or its label to show the task details. j/k move
the hover between rows, y copies the tooltip, r reloads the source.

Example:
  gantt show plan.yaml
  gantt show tasks.db --dataset sprint-12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTUI(args)
		},
	}
}
