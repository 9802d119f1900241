package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/constants"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Physical constants: search and list commonly used values",
}

var constantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available constants",
	Args:  cobra.NoArgs,
	RunE:  runConstantsList,
}

var constantsGetCmd = &cobra.Command{
	Use:   "get <key|alias|name fragment>",
	Short: "Show a constant by key, alias or name fragment",
	Long: `Looks a constant up by key or alias first, then by a case-insensitive
fragment of its name or symbol.

Examples:
  sciops constants get c
  sciops constants get boltzmann
  sciops constants get mass`,
	Args: cobra.ExactArgs(1),
	RunE: runConstantsGet,
}

func init() {
	rootCmd.AddCommand(constantsCmd)
	constantsCmd.AddCommand(constantsListCmd)
	constantsCmd.AddCommand(constantsGetCmd)
}

func runConstantsList(cmd *cobra.Command, args []string) error {
	entries := app.consts.List()
	if app.printer.Machine() {
		return app.printer.Encode(entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Key, e.Name, e.Symbol, app.printer.Number(e.Value), e.Unit, e.Reference})
	}
	app.printer.Table("Physical Constants", []string{"Key", "Name", "Symbol", "Value", "Unit", "Reference"}, rows)
	return nil
}

func runConstantsGet(cmd *cobra.Command, args []string) error {
	matches, err := app.consts.Search(args[0])
	if err != nil {
		return err
	}
	if app.printer.Machine() {
		return app.printer.Encode(matches)
	}

	p := app.printer
	if len(matches) == 1 {
		e := matches[0]
		p.Title(fmt.Sprintf("%s - %s", e.Key, e.Name))
		p.Text("Symbol", e.Symbol)
		p.Text("Value", fmt.Sprintf("%.10g %s", e.Value, e.Unit))
		if e.Description != "" {
			p.Text("Note", e.Description)
		}
		p.Text("Ref", e.Reference)
		return logLine(constantLine(e))
	}

	for _, e := range matches {
		p.Println(constantLine(e))
	}
	return nil
}

func constantLine(e constants.Entry) string {
	return fmt.Sprintf("%s - %s (%s) = %.10g %s", e.Key, e.Name, e.Symbol, e.Value, e.Unit)
}
