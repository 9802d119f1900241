package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/sciops/internal/dataset"
	"github.com/msto63/sciops/internal/plot"
	"github.com/msto63/sciops/internal/stats"
)

var (
	dataDelimiter string
	dataRows      int
	dataBins      int
	dataWidth     int
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Explore CSV and TSV files",
	Long: `Quick looks at delimited text files with a header row. The delimiter is
sniffed (tab when the header has tabs but no commas) unless -d is given.`,
}

var dataSummarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Descriptive statistics of every numeric column",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataSummarize,
}

var dataHeadCmd = &cobra.Command{
	Use:   "head <file>",
	Short: "Show the first rows",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataHead,
}

var dataHistCmd = &cobra.Command{
	Use:   "hist <file> <column>",
	Short: "ASCII histogram of a numeric column",
	Args:  cobra.ExactArgs(2),
	RunE:  runDataHist,
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataSummarizeCmd, dataHeadCmd, dataHistCmd)

	dataCmd.PersistentFlags().StringVarP(&dataDelimiter, "delimiter", "d", "", `field delimiter, e.g. "," or "tab" (default: sniffed)`)
	dataHeadCmd.Flags().IntVarP(&dataRows, "rows", "n", 5, "number of rows")
	dataHistCmd.Flags().IntVar(&dataBins, "bins", 10, "number of bins")
	dataHistCmd.Flags().IntVar(&dataWidth, "width", plot.DefaultBarWidth, "length of the longest bar")
}

func loadTable(path string) (*dataset.Table, error) {
	delim, err := dataset.ParseDelimiter(dataDelimiter)
	if err != nil {
		return nil, err
	}
	tbl, err := dataset.Load(path, delim)
	if err != nil {
		return nil, err
	}
	app.logger.Debug("dataset loaded",
		zap.String("path", path),
		zap.Int("columns", len(tbl.Headers)),
		zap.Int("rows", len(tbl.Rows)))
	return tbl, nil
}

// columnSummary is a stats.Summary labelled with its column.
type columnSummary struct {
	Column        string `json:"column" yaml:"column"`
	stats.Summary `yaml:",inline"`
}

func runDataSummarize(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(args[0])
	if err != nil {
		return err
	}

	p := app.printer
	var out []columnSummary
	for _, name := range tbl.NumericColumns() {
		values, err := tbl.Column(name)
		if err != nil {
			return err
		}
		s, err := stats.Describe(values)
		if err != nil {
			return err
		}
		out = append(out, columnSummary{Column: name, Summary: s})
	}
	if len(out) == 0 {
		p.Warn("no numeric columns in %s", args[0])
		return nil
	}
	if p.Machine() {
		return p.Encode(out)
	}

	rows := make([][]string, 0, len(out))
	for _, s := range out {
		rows = append(rows, []string{
			s.Column, strconv.Itoa(s.Count), p.Number(s.Mean), p.Number(s.Std),
			p.Number(s.Min), p.Number(s.Max), p.Number(s.Median),
		})
	}
	p.Table("Summary: "+args[0], []string{"Column", "Count", "Mean", "Std", "Min", "Max", "Median"}, rows)
	return nil
}

func runDataHead(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(args[0])
	if err != nil {
		return err
	}
	rows := tbl.Head(dataRows)

	if app.printer.Machine() {
		records := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			rec := make(map[string]string, len(tbl.Headers))
			for i, h := range tbl.Headers {
				rec[h] = row[i]
			}
			records = append(records, rec)
		}
		return app.printer.Encode(records)
	}

	app.printer.Table(fmt.Sprintf("%s (%d of %d rows)", args[0], len(rows), len(tbl.Rows)), tbl.Headers, rows)
	return nil
}

func runDataHist(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(args[0])
	if err != nil {
		return err
	}
	values, err := tbl.Column(args[1])
	if err != nil {
		return err
	}
	bins, err := stats.Histogram(values, dataBins)
	if err != nil {
		return err
	}

	p := app.printer
	if p.Machine() {
		return p.Encode(bins)
	}
	p.Title(fmt.Sprintf("Histogram of %s (%d values)", args[1], len(values)))
	p.Lines(plot.Histogram(bins, dataWidth))
	return nil
}
