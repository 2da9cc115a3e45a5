package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/magdy/fawkes/tidytodo/internal/config"
	"github.com/magdy/fawkes/tidytodo/internal/logging"
	"github.com/magdy/fawkes/tidytodo/internal/tui"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type App struct {
	ConfigPath string
	Theme      string
	Filter     string
	Logs       bool

	// run starts the UI; tests swap it out.
	run func(tui.Options) error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{run: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tidytodo [item...]",
		Short:        "A small terminal todo list",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start with an empty list
  tidytodo

  # Seed a couple of items and start in dark mode
  tidytodo --theme dark "Buy milk" "Walk dog"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(cmd, args)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to a TOML config file (default: $TIDYTODO_CONFIG or ~/.config/tidytodo/config.toml)")
	cmd.Flags().StringVar(&app.Theme, "theme", "", "Initial theme (light|dark|auto)")
	cmd.Flags().StringVar(&app.Filter, "filter", "", "Initial filter (all|active|completed)")
	cmd.Flags().BoolVar(&app.Logs, "logs", false, "Enable debug logging to the configured log file")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (app *App) options(cmd *cobra.Command, args []string) (tui.Options, config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return tui.Options{}, config.Config{}, err
	}
	// Flags override config.
	if cmd.Flags().Changed("theme") {
		cfg.UI.Theme = app.Theme
	}
	if cmd.Flags().Changed("filter") {
		cfg.UI.Filter = app.Filter
	}
	if app.Logs {
		cfg.Log.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return tui.Options{}, config.Config{}, err
	}
	return tui.Options{UI: cfg.UI, Seeds: args}, cfg, nil
}

func (app *App) runTUI(cmd *cobra.Command, args []string) error {
	opts, cfg, err := app.options(cmd, args)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	defer closeLog()
	opts.Logger = logger
	return app.run(opts)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "tidytodo", Version)
			return err
		},
	}
}
