// Package labcalc implements everyday bench calculations.
package labcalc

import (
	"fmt"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// StockDilutionInput asks how much stock at CStock makes VFinal of CFinal.
// Concentrations share one unit, as do volumes.
type StockDilutionInput struct {
	CStock float64
	CFinal float64
	VFinal float64
}

// StockDilutionResult holds the stock volume to pipette and the solvent
// that tops it up.
type StockDilutionResult struct {
	StockVolume float64
	Solvent     float64
}

// StockDilution solves C1·V1 = C2·V2 for V1.
func StockDilution(in StockDilutionInput) (StockDilutionResult, error) {
	if err := calc.First(
		calc.Positive("stock concentration", in.CStock),
		calc.Positive("target concentration", in.CFinal),
		calc.Positive("final volume", in.VFinal),
	); err != nil {
		return StockDilutionResult{}, err
	}
	if in.CFinal >= in.CStock {
		return StockDilutionResult{}, scierr.InvalidInput("target concentration must be less than stock concentration")
	}
	v := in.CFinal * in.VFinal / in.CStock
	return StockDilutionResult{StockVolume: v, Solvent: in.VFinal - v}, nil
}

// Report implements calc.Reporter.
func (r StockDilutionResult) Report() calc.Report {
	return calc.Report{
		Title: "Stock dilution",
		Rows: []calc.Row{
			calc.Num("Stock volume", r.StockVolume, ""),
			calc.Num("Add solvent", r.Solvent, ""),
		},
	}
}

// PercentErrorInput is a measurement and its accepted value.
type PercentErrorInput struct {
	Measured float64
	True     float64
}

// PercentErrorResult holds the signed error in percent.
type PercentErrorResult struct {
	Percent float64
}

// PercentError computes (measured - true) / true · 100.
func PercentError(in PercentErrorInput) (PercentErrorResult, error) {
	if err := calc.First(calc.Finite("measured", in.Measured), calc.NonZero("true value", in.True)); err != nil {
		return PercentErrorResult{}, err
	}
	return PercentErrorResult{Percent: (in.Measured - in.True) / in.True * 100}, nil
}

// Report implements calc.Reporter.
func (r PercentErrorResult) Report() calc.Report {
	return calc.Report{
		Title: "Percent error",
		Rows:  []calc.Row{calc.Num("Percent error", r.Percent, "%")},
	}
}

// String renders the error to six significant digits.
func (r PercentErrorResult) String() string {
	return fmt.Sprintf("%.6g%%", r.Percent)
}
