package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sciops/internal/calc"
	"github.com/msto63/sciops/internal/stats"
)

var (
	normalMu    float64
	normalSigma float64
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Descriptive statistics and the normal distribution",
}

var statsDescribeCmd = &cobra.Command{
	Use:   "describe <values...>",
	Short: "Count, mean, sample standard deviation, min, max and median",
	Long: `Summarizes a list of numbers. The standard deviation is the sample
standard deviation (n-1) and is 0 for a single value.

Example:
  sciops stats describe 1 2 3 4 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStatsDescribe,
}

var statsPDFCmd = &cobra.Command{
	Use:   "normal-pdf <x>",
	Short: "Normal probability density at x",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormal("pdf", stats.NormalPDF),
}

var statsCDFCmd = &cobra.Command{
	Use:   "normal-cdf <x>",
	Short: "Normal cumulative probability up to x",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormal("cdf", stats.NormalCDF),
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsDescribeCmd)
	statsCmd.AddCommand(statsPDFCmd)
	statsCmd.AddCommand(statsCDFCmd)

	for _, c := range []*cobra.Command{statsPDFCmd, statsCDFCmd} {
		c.Flags().Float64Var(&normalMu, "mu", 0, "mean")
		c.Flags().Float64Var(&normalSigma, "sigma", 1, "standard deviation (> 0)")
	}
}

func runStatsDescribe(cmd *cobra.Command, args []string) error {
	values, err := numbers("value", args)
	if err != nil {
		return err
	}
	return emitResult(stats.Describe(values))
}

func runNormal(label string, fn func(x, mu, sigma float64) (float64, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		x, err := number("x", args[0])
		if err != nil {
			return err
		}
		v, err := fn(x, normalMu, normalSigma)
		if err != nil {
			return err
		}
		return emit(calc.Report{
			Title: "Normal distribution (mu=" + app.printer.Number(normalMu) + ", sigma=" + app.printer.Number(normalSigma) + ")",
			Rows:  []calc.Row{calc.Num(label+"("+app.printer.Number(x)+")", v, "")},
		})
	}
}
