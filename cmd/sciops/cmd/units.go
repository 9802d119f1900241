package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/sciops/internal/tui/converter"
	"github.com/msto63/sciops/internal/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Unit conversion with dimensional analysis",
}

var unitsConvertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value between compatible units",
	Long: `Converts a value between two unit expressions of the same dimension.

Expressions combine registered units with '*', '/' and integer powers.
Negative values go after '--' so they are not read as flags.

Examples:
  sciops units convert 100 C F
  sciops units convert 72 km/h m/s
  sciops units convert 1 kg*m/s^2 N
  sciops units convert 9.81 m/s^2 ft/s^2
  sciops units convert -- -40 C F`,
	Args: cobra.ExactArgs(3),
	RunE: runUnitsConvert,
}

var unitsListCmd = &cobra.Command{
	Use:   "list-dimensions",
	Short: "List known units grouped by dimension",
	Args:  cobra.NoArgs,
	RunE:  runUnitsList,
}

var unitsInteractiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Convert interactively with live results",
	Long: `Starts a small terminal UI with a value field ("12.5 km/h") and a target
field ("m/s"). The result updates on every keystroke.

Navigation:
  Tab     switch field
  Enter   keep the result in the history
  Ctrl+L  clear the history
  Esc     quit`,
	Args: cobra.NoArgs,
	RunE: runUnitsInteractive,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
	unitsCmd.AddCommand(unitsConvertCmd)
	unitsCmd.AddCommand(unitsListCmd)
	unitsCmd.AddCommand(unitsInteractiveCmd)
}

// conversion is the machine-readable form of a conversion.
type conversion struct {
	Value  float64 `json:"value" yaml:"value"`
	From   string  `json:"from" yaml:"from"`
	Result float64 `json:"result" yaml:"result"`
	To     string  `json:"to" yaml:"to"`
	Affine bool    `json:"affine" yaml:"affine"`
}

func runUnitsConvert(cmd *cobra.Command, args []string) error {
	value, err := number("value", args[0])
	if err != nil {
		return err
	}

	res, err := app.conv.Do(units.Request{Value: value, From: args[1], To: args[2]})
	if err != nil {
		return err
	}

	p := app.printer
	if p.Machine() {
		return p.Encode(conversion{Value: value, From: args[1], Result: res.Value, To: args[2], Affine: res.Affine})
	}

	line := fmt.Sprintf("%s %s = %s %s", p.Number(value), args[1], p.Number(res.Value), args[2])
	p.Println(line)
	return logLine(line)
}

// dimensionGroup is the listing form of units.DimensionGroup.
type dimensionGroup struct {
	Name      string   `json:"name" yaml:"name"`
	Dimension string   `json:"dimension" yaml:"dimension"`
	BaseUnits string   `json:"base_units" yaml:"base_units"`
	Units     []string `json:"units" yaml:"units"`
}

func runUnitsList(cmd *cobra.Command, args []string) error {
	groups := app.registry.ListByDimension()

	if app.printer.Machine() {
		out := make([]dimensionGroup, 0, len(groups))
		for _, g := range groups {
			out = append(out, dimensionGroup{Name: g.Name, Dimension: g.Dim.String(), BaseUnits: g.BaseUnits, Units: g.Symbols})
		}
		return app.printer.Encode(out)
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Name, g.Dim.String(), g.BaseUnits, strings.Join(g.Symbols, ", ")})
	}
	app.printer.Table("Units by dimension", []string{"Quantity", "Dimension", "SI base", "Units"}, rows)
	return nil
}

func runUnitsInteractive(cmd *cobra.Command, args []string) error {
	app.logger.Debug("starting interactive converter", zap.Int("precision", app.printer.Precision()))
	return converter.Run(app.conv, app.printer.Precision())
}
