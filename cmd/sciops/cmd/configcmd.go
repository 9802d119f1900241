package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings and the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and save the config file",
	Long: `Changes one setting and writes the config file.

Keys:
  notebook_path  lab notebook file
  default_body   body preset for mech and relativity (earth, moon, ...)
  color          true/false, yes/no, on/off, 1/0
  precision      significant digits, 1-17
  log_level      debug, info, warn or error`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings := app.cfg.Settings()
	if app.printer.Machine() {
		return app.printer.Encode(settings)
	}

	rows := make([][]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, []string{s.Key, s.Value})
	}
	app.printer.Table("Configuration", []string{"Key", "Value"}, rows)
	app.printer.Text("File", app.cfg.File())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := app.cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := app.cfg.Save(app.cfg.File()); err != nil {
		return err
	}
	app.logger.Info("config updated", zap.String("key", args[0]), zap.String("file", app.cfg.File()))
	app.printer.Success("Set %s = %s (%s)", args[0], args[1], app.cfg.File())
	return nil
}
