package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gantt/internal/config"
	"github.com/javiermolinar/gantt/internal/source"
	"github.com/javiermolinar/gantt/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the effective configuration.

If no config file exists, creates one with default values. With --edit,
prompts for the source and UI settings and saves them.

Example:
  gantt config
  gantt config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return a.runConfig(cmd.InOrStdin(), cmd.OutOrStdout(), path, edit)
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")
	return cmd
}

func (a *App) runConfig(in io.Reader, out io.Writer, path string, edit bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", path)
	cfg := a.config

	// Check if file exists
	_, fileErr := os.Stat(path)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := config.Default().SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", path)
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(in)
	fmt.Fprintln(out)

	cfg.Source.Path = promptValue(reader, out, "Task file", cfg.Source.Path)
	cfg.Source.Format = promptFormat(reader, out, cfg.Source.Format)
	cfg.Source.Dataset = promptValue(reader, out, "SQLite dataset", cfg.Source.Dataset)
	cfg.Chart.ColorLow = promptValue(reader, out, "Gradient low color (empty for theme)", cfg.Chart.ColorLow)
	cfg.Chart.ColorHigh = promptValue(reader, out, "Gradient high color (empty for theme)", cfg.Chart.ColorHigh)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.FadeMS = promptInt(reader, out, "Tooltip fade (ms, 0 disables)", cfg.UI.FadeMS)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	c := cfg.Chart
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[chart]")
	fmt.Fprintf(out, "  size              = %gx%g\n", c.Width, c.Height)
	fmt.Fprintf(out, "  margins           = %g %g %g %g\n", c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft)
	fmt.Fprintf(out, "  band_padding      = %g\n", c.BandPadding)
	if cfg.HasColors() {
		fmt.Fprintf(out, "  colors            = %s → %s\n", c.ColorLow, c.ColorHigh)
	} else {
		fmt.Fprintln(out, "  colors            = (theme)")
	}
	fmt.Fprintf(out, "  row_height        = %g\n", c.RowHeight)
	fmt.Fprintf(out, "  highlight_opacity = %g\n", c.HighlightOpacity)
	fmt.Fprintln(out, "\n[source]")
	fmt.Fprintf(out, "  path              = %s\n", orNone(cfg.Source.Path))
	fmt.Fprintf(out, "  format            = %s\n", cfg.Source.Format)
	fmt.Fprintf(out, "  dataset           = %s\n", cfg.Source.Dataset)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme             = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  fade_ms           = %d\n", cfg.UI.FadeMS)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && n >= 0 {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptFormat(reader *bufio.Reader, out io.Writer, current string) string {
	label := "Format (auto, yaml, toml, json, csv, sqlite)"
	for {
		value := promptValue(reader, out, label, current)
		f, err := source.ParseFormat(value)
		if err == nil {
			return string(f)
		}
		fmt.Fprintf(out, "  %v\n", err)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
