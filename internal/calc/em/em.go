// Package em implements electrostatics and AC circuit helpers.
package em

import (
	"math"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
	"github.com/msto63/sciops/internal/constants"
)

// CoulombInput is a pair of point charges in C separated by R in m.
type CoulombInput struct {
	Q1 float64
	Q2 float64
	R  float64
}

// CoulombResult holds the force magnitude in N.
type CoulombResult struct {
	Force     float64
	Repulsive bool
}

// Coulomb computes F = k·|q1·q2| / r².
func Coulomb(in CoulombInput) (CoulombResult, error) {
	if err := calc.First(
		calc.Finite("q1", in.Q1),
		calc.Finite("q2", in.Q2),
		calc.Positive("separation distance r", in.R),
	); err != nil {
		return CoulombResult{}, err
	}
	product := in.Q1 * in.Q2
	return CoulombResult{
		Force:     constants.CoulombK * math.Abs(product) / (in.R * in.R),
		Repulsive: product > 0,
	}, nil
}

// Interaction returns "repulsive" or "attractive".
func (r CoulombResult) Interaction() string {
	if r.Repulsive {
		return "repulsive"
	}
	return "attractive"
}

// Report implements calc.Reporter.
func (r CoulombResult) Report() calc.Report {
	return calc.Report{
		Title: "Coulomb's law",
		Rows: []calc.Row{
			calc.Num("F", r.Force, "N"),
			calc.Txt("Interaction", r.Interaction()),
		},
	}
}

// ReactanceInput is a series LC branch driven at Freq Hz. A zero L or C
// leaves that element out.
type ReactanceInput struct {
	Freq        float64
	Inductance  float64 // H
	Capacitance float64 // F
}

// ReactanceResult holds the reactances in Ω.
type ReactanceResult struct {
	XL    float64
	XC    float64
	Total float64
}

// Reactance computes X_L = 2πfL, X_C = -1/(2πfC) and their series sum.
func Reactance(in ReactanceInput) (ReactanceResult, error) {
	if err := calc.First(
		calc.Positive("frequency", in.Freq),
		calc.NonNegative("inductance", in.Inductance),
		calc.NonNegative("capacitance", in.Capacitance),
	); err != nil {
		return ReactanceResult{}, err
	}
	if in.Inductance <= 0 && in.Capacitance <= 0 {
		return ReactanceResult{}, scierr.InvalidInput("provide at least one of inductance or capacitance")
	}

	omega := 2 * math.Pi * in.Freq
	var res ReactanceResult
	if in.Inductance > 0 {
		res.XL = omega * in.Inductance
	}
	if in.Capacitance > 0 {
		res.XC = -1 / (omega * in.Capacitance)
	}
	res.Total = res.XL + res.XC
	return res, nil
}

// Report implements calc.Reporter.
func (r ReactanceResult) Report() calc.Report {
	return calc.Report{
		Title: "Reactance",
		Rows: []calc.Row{
			calc.Num("X_L", r.XL, "Ω"),
			calc.Num("X_C", r.XC, "Ω"),
			calc.Num("X_total (series)", r.Total, "Ω"),
		},
	}
}
