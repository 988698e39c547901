package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/chart"
	"github.com/javiermolinar/gantt/internal/config"
	"github.com/javiermolinar/gantt/internal/source"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui"
	"github.com/javiermolinar/gantt/internal/tui/theme"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	source task.Source // opened by the TUI commands, closed by Close

	// Global flags
	configPath string
	format     string
	dataset    string
	debug      bool // Enable debug logging
	noColor    bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "gantt [file]",
		Short: "Gantt charts for task lists in the terminal",
		Long: `Gantt lays out an ordered task list as a chart: one row per task,
one band per date, and one color per status.

Tasks are read from YAML, TOML, JSON, CSV or a SQLite database. Without a
subcommand the chart opens in an interactive view with hover tooltips.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTUI(args)
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ~/.config/gantt/config.toml)")
	flags.StringVar(&a.format, "format", "", "Task file format: auto, yaml, toml, json, csv, sqlite")
	flags.StringVar(&a.dataset, "dataset", "", "Dataset name inside a SQLite source")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.layoutCmd())
	a.root.AddCommand(a.categoriesCmd())

	return a
}

// prepare applies the global flags before any command runs.
func (a *App) prepare(_ *cobra.Command, _ []string) error {
	if a.noColor {
		DisableColor()
	}
	if a.configPath != "" {
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}
	if a.config == nil {
		a.config = config.Default()
	}
	if a.format != "" {
		a.config.Source.Format = a.format
	}
	if a.dataset != "" {
		a.config.Source.Dataset = a.dataset
	}
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gantt %s (commit: %s)\n", Version, Commit)
		},
	}
}

// openSource opens the task source named by args or the config.
func (a *App) openSource(args []string) (task.Source, error) {
	path := a.config.Source.Path
	if len(args) > 0 {
		path = args[0]
	}
	format, err := source.ParseFormat(a.config.Source.Format)
	if err != nil {
		return nil, err
	}
	return source.Open(source.Options{
		Path:    path,
		Format:  format,
		Dataset: a.config.Source.Dataset,
	})
}

// loadDataset reads the dataset once and releases the source.
func (a *App) loadDataset(ctx context.Context, args []string) (*task.Dataset, error) {
	src, err := a.openSource(args)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return ds, nil
}

// computeLayout lays out ds with the configured chart settings. fallback
// supplies the gradient when the config sets no colors.
func (a *App) computeLayout(ds *task.Dataset, fallback [2]string) (*chart.Layout, error) {
	l, err := chart.Compute(ds.Tasks(), a.config.ChartConfig(fallback))
	if err != nil {
		return nil, fmt.Errorf("computing layout: %w", err)
	}
	return l, nil
}

// themeGradient returns the gradient of the configured theme, so terminal
// output matches the interactive view.
func (a *App) themeGradient() [2]string {
	t, err := theme.Load(a.config.UI.Theme)
	if err != nil {
		return chart.DefaultConfig().ColorRange
	}
	return t.Gradient()
}

func (a *App) runTUI(args []string) error {
	src, err := a.openSource(args)
	if err != nil {
		return err
	}
	a.source = src
	return tui.RunWithDebug(src, a.config, a.debug)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the task source opened by the interactive view.
func (a *App) Close() error {
	if a.source == nil {
		return nil
	}
	err := a.source.Close()
	a.source = nil
	return err
}
