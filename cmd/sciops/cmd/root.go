package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/sciops/internal/constants"
	"github.com/msto63/sciops/internal/notebook"
	"github.com/msto63/sciops/internal/output"
	"github.com/msto63/sciops/internal/units"
	"github.com/msto63/sciops/pkg/core/cache"
	"github.com/msto63/sciops/pkg/core/config"
	"github.com/msto63/sciops/pkg/core/logging"
	"github.com/msto63/sciops/pkg/core/version"
)

var (
	cfgFile      string
	verbose      bool
	noColor      bool
	logResult    bool
	outputFormat string
)

// env is what every command runs against. It is built once per
// invocation in PersistentPreRunE.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	printer  *output.Printer
	registry *units.Registry
	conv     *units.Converter
	consts   *constants.Table
	notebook *notebook.Notebook
}

var app *env

var rootCmd = &cobra.Command{
	Use:   "sciops",
	Short: "Science Ops - a terminal toolkit for scientists",
	Long: `sciops is a terminal Swiss army knife for scientists and engineers.

Groups:
  constants   physical constants
  units       unit conversion with dimensional analysis
  stats       descriptive statistics and the normal distribution
  waves       waveform generation with ASCII plots
  notebook    timestamped lab notebook
  astro       sidereal time and horizontal coordinates
  chem        molarity and dilution
  mech        projectiles, work, power, pendulums, orbits
  relativity  Lorentz factor, dilation, energy
  bio         population genetics and DNA sequences
  data        CSV/TSV exploration
  analysis    regression and uncertainty
  optics      Snell's law and thin lenses
  em          Coulomb force and reactance
  labcalc     stock dilution and percent error

Numeric inputs marked as quantities accept a unit suffix, e.g. 3ft or 72km/h.`,
	Version:           version.Platform,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil && app.logger != nil {
			_ = app.logger.Sync()
		}
	},
}

// Execute runs the root command and renders any error on stderr.
func Execute() error {
	return execute(context.Background(), rootCmd)
}

func execute(ctx context.Context, root *cobra.Command) error {
	app = nil
	err := root.ExecuteContext(ctx)
	if err != nil {
		p := errorPrinter(root)
		p.Error(err, hints(err)...)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SCIOPS_CONFIG or $XDG_CONFIG_HOME/sciops/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logResult, "log", false, "append the result to the lab notebook")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json or yaml")

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
}

func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultLoggerConfig("sciops")
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Output = cmd.ErrOrStderr()
	if verbose {
		logCfg.Level = "debug"
	}
	logger := logging.NewLogger(logCfg)

	color := cfg.ColorEnabled() && !noColor && os.Getenv("NO_COLOR") == ""
	printer := output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(),
		output.WithColor(color),
		output.WithPrecision(cfg.Output.Precision),
		output.WithFormat(format),
	)

	reg := units.DefaultRegistry()
	logger.Debug("configuration loaded",
		zap.String("file", cfg.File()),
		zap.String("notebook", cfg.Notebook.Path),
		zap.Int("units", reg.Len()))

	app = &env{
		cfg:      cfg,
		logger:   logger,
		printer:  printer,
		registry: reg,
		conv:     units.NewConverter(reg, units.WithLogger(logger), units.WithCache(cache.DefaultMaxItems)),
		consts:   constants.DefaultTable(),
		notebook: notebook.New(cfg.Notebook.Path, notebook.WithLogger(logger)),
	}
	return nil
}

// errorPrinter returns the configured printer, or a plain one when setup
// itself failed.
func errorPrinter(root *cobra.Command) *output.Printer {
	if app != nil && app.printer != nil {
		return app.printer
	}
	return output.New(root.OutOrStdout(), root.ErrOrStderr(), output.WithColor(!noColor && os.Getenv("NO_COLOR") == ""))
}
