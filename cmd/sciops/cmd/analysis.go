package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/calc"
	"github.com/msto63/sciops/internal/stats"
)

var analysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "Regression and uncertainty propagation",
}

var analysisRegressCmd = &cobra.Command{
	Use:   "regress <file> <x-column> <y-column>",
	Short: "Least-squares line through two columns of a file",
	Long: `Fits y = m x + b through the rows where both columns are numeric and
reports the slope, intercept, r and r^2.

Example:
  sciops analysis regress calibration.csv concentration absorbance`,
	Args: cobra.ExactArgs(3),
	RunE: runAnalysisRegress,
}

var analysisUncertaintyCmd = &cobra.Command{
	Use:   "uncertainty <u1> [u2...]",
	Short: "Combine independent uncertainties in quadrature",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalysisUncertainty,
}

func init() {
	rootCmd.AddCommand(analysisCmd)
	analysisCmd.AddCommand(analysisRegressCmd, analysisUncertaintyCmd)

	analysisRegressCmd.Flags().StringVarP(&dataDelimiter, "delimiter", "d", "", `field delimiter (default: sniffed)`)
}

func runAnalysisRegress(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(args[0])
	if err != nil {
		return err
	}
	x, y, err := tbl.Pairs(args[1], args[2])
	if err != nil {
		return err
	}
	return emitResult(stats.LinearRegression(x, y))
}

func runAnalysisUncertainty(cmd *cobra.Command, args []string) error {
	values, err := numbers("uncertainty", args)
	if err != nil {
		return err
	}
	total, err := stats.Quadrature(values)
	if err != nil {
		return err
	}
	return emit(calc.Report{
		Title: "Uncertainty",
		Rows:  []calc.Row{calc.Num("combined (quadrature)", total, "")},
	})
}
