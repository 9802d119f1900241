// Package chem implements solution chemistry helpers.
package chem

import (
	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// MolarityInput is an amount of solute in a solution volume.
type MolarityInput struct {
	Moles   float64 // mol
	VolumeL float64 // L
}

// MolarityResult holds the concentration in mol/L.
type MolarityResult struct {
	MolarityInput
	Molarity float64
}

// Molarity computes n / V.
func Molarity(in MolarityInput) (MolarityResult, error) {
	if err := calc.First(calc.NonNegative("moles", in.Moles), calc.Positive("volume", in.VolumeL)); err != nil {
		return MolarityResult{}, err
	}
	return MolarityResult{MolarityInput: in, Molarity: in.Moles / in.VolumeL}, nil
}

// Report implements calc.Reporter.
func (r MolarityResult) Report() calc.Report {
	return calc.Report{
		Title: "Molarity",
		Rows: []calc.Row{
			calc.Num("Moles", r.Moles, "mol"),
			calc.Num("Volume", r.VolumeL, "L"),
			calc.Num("Molarity", r.Molarity, "M"),
		},
	}
}

// DilutionInput uses C1·V1 = C2·V2 to dilute V1 of stock C1 down to C2.
type DilutionInput struct {
	C1 float64 // M
	V1 float64 // mL
	C2 float64 // M
}

// DilutionResult holds the final volume and the solvent to add.
type DilutionResult struct {
	FinalVolume float64
	Solvent     float64
}

// Dilution computes the final volume of a dilution.
func Dilution(in DilutionInput) (DilutionResult, error) {
	if err := calc.First(
		calc.Positive("stock concentration", in.C1),
		calc.Positive("stock volume", in.V1),
		calc.Positive("target concentration", in.C2),
	); err != nil {
		return DilutionResult{}, err
	}
	if in.C2 >= in.C1 {
		return DilutionResult{}, scierr.InvalidInput("target concentration must be lower than the stock for dilution")
	}
	v2 := in.C1 * in.V1 / in.C2
	return DilutionResult{FinalVolume: v2, Solvent: v2 - in.V1}, nil
}

// Report implements calc.Reporter.
func (r DilutionResult) Report() calc.Report {
	return calc.Report{
		Title: "Dilution",
		Rows: []calc.Row{
			calc.Num("Final volume", r.FinalVolume, "mL"),
			calc.Num("Add solvent", r.Solvent, "mL"),
		},
		Notes: []string{"assuming ideal mixing"},
	}
}
