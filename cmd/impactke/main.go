package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/impactke/internal/config"
	"github.com/san-kum/impactke/internal/impact"
	"github.com/san-kum/impactke/internal/logging"
	"github.com/san-kum/impactke/internal/report"
)

var (
	configFile string
	preset     string
	logLevel   string
	// report
	styled bool
	theme  string
	// plot
	points int
	width  int
	height int
	// table
	composition string
	// export
	format string
	// config init
	force bool
)

// main registers the commands and runs the root command, which prints the
// impact report when no subcommand is given. It exits with status 1 if the
// command returns an error.
func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "impactke",
		Short:        "asteroid impact kinetic energy calculator",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "presentation config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset presentation profile")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "print the impact energy report",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}
	reportCmd.Flags().BoolVar(&styled, "style", false, "render with colors and borders")
	reportCmd.Flags().StringVar(&theme, "theme", "", "theme for styled output (implies --style)")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print energies in erg and tons of TNT",
		Args:  cobra.NoArgs,
		RunE:  runTable,
	}
	tableCmd.Flags().StringVar(&composition, "composition", "", "only show this composition (see compositions)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot kinetic energy against diameter",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&points, "points", 0, "samples per series")
	plotCmd.Flags().IntVar(&width, "width", 0, "plot width")
	plotCmd.Flags().IntVar(&height, "height", 0, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the result as json, yaml or csv",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "", "output format (json, yaml, csv)")

	compositionsCmd := &cobra.Command{
		Use:   "compositions",
		Short: "list asteroid compositions",
		Args:  cobra.NoArgs,
		RunE:  listCompositions,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list report themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range report.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presentation presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage presentation config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved presentation config to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(reportCmd, tableCmd, plotCmd, exportCmd, compositionsCmd, themesCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig resolves presentation settings: defaults, then preset, then
// config file, then environment, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.ApplyEnv()

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("points") {
		cfg.Plot.Points = points
	}
	if cmd.Flags().Changed("width") {
		cfg.Plot.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Plot.Height = height
	}
	if cmd.Flags().Changed("format") {
		cfg.ExportFormat = format
	}

	return cfg, nil
}

// setup loads the config and computes the fixed scenario.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, impact.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, zerolog.Nop(), impact.Result{}, err
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	log.Debug().Str("config", configFile).Str("preset", preset).Msg("configuration loaded")

	result := impact.Compute(impact.Default(), log)
	return cfg, log, result, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, _, result, err := setup(cmd)
	if err != nil {
		return err
	}

	if !styled && !cmd.Flags().Changed("theme") {
		return report.Text(cmd.OutOrStdout(), result)
	}

	t, err := report.GetTheme(cfg.Theme)
	if err != nil {
		return err
	}
	return report.Styled(cmd.OutOrStdout(), result, t)
}

func runTable(cmd *cobra.Command, args []string) error {
	_, log, result, err := setup(cmd)
	if err != nil {
		return err
	}

	if composition != "" {
		c, err := impact.NewRegistry().Get(composition)
		if err != nil {
			return err
		}
		s := impact.Default()
		s.Compositions = []impact.Composition{c}
		result = impact.Compute(s, log)
	}

	return report.Table(cmd.OutOrStdout(), result)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, log, _, err := setup(cmd)
	if err != nil {
		return err
	}

	log.Debug().
		Int("points", cfg.Plot.Points).
		Int("width", cfg.Plot.Width).
		Int("height", cfg.Plot.Height).
		Msg("plotting energy vs diameter")

	return report.Plot(cmd.OutOrStdout(), impact.Default(), report.PlotOptions{
		Width:  cfg.Plot.Width,
		Height: cfg.Plot.Height,
		Points: cfg.Plot.Points,
	})
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, _, result, err := setup(cmd)
	if err != nil {
		return err
	}
	return report.Export(cmd.OutOrStdout(), result, cfg.ExportFormat)
}

func listCompositions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tDENSITY (g/cm3)")

	for _, c := range impact.NewRegistry().All() {
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", c.Name, c.Label, c.Density)
	}

	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
