package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/calc/labcalc"
)

var labcalcCmd = &cobra.Command{
	Use:   "labcalc",
	Short: "Bench calculations: stock dilution and percent error",
}

var labcalcStockCmd = &cobra.Command{
	Use:   "stock-dilution <c-stock> <c-final> <v-final>",
	Short: "Volume of stock needed for a target solution",
	Long: `Solves C_stock V_stock = C_final V_final for V_stock. Concentrations
share any unit, and the stock volume comes out in the unit of v-final.

Example:
  sciops labcalc stock-dilution 10 0.5 100`,
	Args: cobra.ExactArgs(3),
	RunE: runLabcalcStock,
}

var labcalcPercentErrorCmd = &cobra.Command{
	Use:   "percent-error <measured> <true>",
	Short: "Relative error of a measurement in percent",
	Args:  cobra.ExactArgs(2),
	RunE:  runLabcalcPercentError,
}

func init() {
	rootCmd.AddCommand(labcalcCmd)
	labcalcCmd.AddCommand(labcalcStockCmd, labcalcPercentErrorCmd)
}

func runLabcalcStock(cmd *cobra.Command, args []string) error {
	v, err := numbers("value", args)
	if err != nil {
		return err
	}
	return emitResult(labcalc.StockDilution(labcalc.StockDilutionInput{CStock: v[0], CFinal: v[1], VFinal: v[2]}))
}

func runLabcalcPercentError(cmd *cobra.Command, args []string) error {
	v, err := numbers("value", args)
	if err != nil {
		return err
	}
	return emitResult(labcalc.PercentError(labcalc.PercentErrorInput{Measured: v[0], True: v[1]}))
}
