// Package relativity implements special and general relativity helpers.
package relativity

import (
	"math"
	"strings"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
	"github.com/msto63/sciops/internal/constants"
)

const c = constants.SpeedOfLight

// Velocity is a speed given either as a fraction of c or in m/s.
type Velocity struct {
	Value           float64
	MetersPerSecond bool
}

// Beta returns v/c.
func (v Velocity) Beta() float64 {
	if v.MetersPerSecond {
		return v.Value / c
	}
	return v.Value
}

// Gamma returns the Lorentz factor 1/√(1-β²) for β in [0, 1).
func Gamma(beta float64) (float64, error) {
	if math.IsNaN(beta) || beta < 0 || beta >= 1 {
		return 0, scierr.OutOfRange("β must be in [0, 1)").WithDetail("beta", beta)
	}
	return 1 / math.Sqrt(1-beta*beta), nil
}

// GammaResult is the Lorentz factor for a velocity.
type GammaResult struct {
	Beta  float64
	Gamma float64
}

// LorentzGamma computes γ for v.
func LorentzGamma(v Velocity) (GammaResult, error) {
	beta := v.Beta()
	g, err := Gamma(beta)
	if err != nil {
		return GammaResult{}, err
	}
	return GammaResult{Beta: beta, Gamma: g}, nil
}

// Report implements calc.Reporter.
func (r GammaResult) Report() calc.Report {
	return calc.Report{
		Title: "Lorentz factor",
		Rows:  []calc.Row{calc.Num("β", r.Beta, ""), calc.Num("γ", r.Gamma, "")},
	}
}

// TimeDilationInput is a proper time interval observed at velocity V.
type TimeDilationInput struct {
	ProperTime float64 // s
	V          Velocity
}

// TimeDilationResult holds Δt = γ·Δτ.
type TimeDilationResult struct {
	GammaResult
	Dilated float64
}

// TimeDilation computes the coordinate time for a proper time interval.
func TimeDilation(in TimeDilationInput) (TimeDilationResult, error) {
	if err := calc.NonNegative("proper time", in.ProperTime); err != nil {
		return TimeDilationResult{}, err
	}
	g, err := LorentzGamma(in.V)
	if err != nil {
		return TimeDilationResult{}, err
	}
	return TimeDilationResult{GammaResult: g, Dilated: g.Gamma * in.ProperTime}, nil
}

// Report implements calc.Reporter.
func (r TimeDilationResult) Report() calc.Report {
	return calc.Report{
		Title: "Time dilation",
		Rows: []calc.Row{
			calc.Num("β", r.Beta, ""),
			calc.Num("γ", r.Gamma, ""),
			calc.Num("Δt", r.Dilated, "s"),
		},
	}
}

// LengthContractionInput is a proper length moving at velocity V.
type LengthContractionInput struct {
	ProperLength float64 // m
	V            Velocity
}

// LengthContractionResult holds L = L0/γ.
type LengthContractionResult struct {
	GammaResult
	Contracted float64
}

// LengthContraction computes the observed length.
func LengthContraction(in LengthContractionInput) (LengthContractionResult, error) {
	if err := calc.NonNegative("proper length", in.ProperLength); err != nil {
		return LengthContractionResult{}, err
	}
	g, err := LorentzGamma(in.V)
	if err != nil {
		return LengthContractionResult{}, err
	}
	return LengthContractionResult{GammaResult: g, Contracted: in.ProperLength / g.Gamma}, nil
}

// Report implements calc.Reporter.
func (r LengthContractionResult) Report() calc.Report {
	return calc.Report{
		Title: "Length contraction",
		Rows: []calc.Row{
			calc.Num("β", r.Beta, ""),
			calc.Num("γ", r.Gamma, ""),
			calc.Num("L", r.Contracted, "m"),
		},
	}
}

// EnergyInput is a rest mass moving at velocity V.
type EnergyInput struct {
	Mass float64 // kg
	V    Velocity
}

// EnergyResult holds rest, total and kinetic energy.
type EnergyResult struct {
	GammaResult
	Rest    float64
	Total   float64
	Kinetic float64
}

// Energy computes E = γmc², E0 = mc² and K = (γ-1)mc².
func Energy(in EnergyInput) (EnergyResult, error) {
	if err := calc.NonNegative("mass", in.Mass); err != nil {
		return EnergyResult{}, err
	}
	g, err := LorentzGamma(in.V)
	if err != nil {
		return EnergyResult{}, err
	}
	mc2 := in.Mass * c * c
	return EnergyResult{
		GammaResult: g,
		Rest:        mc2,
		Total:       g.Gamma * mc2,
		Kinetic:     (g.Gamma - 1) * mc2,
	}, nil
}

// Report implements calc.Reporter.
func (r EnergyResult) Report() calc.Report {
	return calc.Report{
		Title: "Relativistic energy",
		Rows: []calc.Row{
			calc.Num("β", r.Beta, ""),
			calc.Num("γ", r.Gamma, ""),
			calc.Num("E_rest", r.Rest, "J"),
			calc.Num("E_total", r.Total, "J"),
			calc.Num("Kinetic", r.Kinetic, "J"),
		},
	}
}

// GravInput is a point at distance Radius from the centre of Mass.
type GravInput struct {
	Mass   float64 // kg
	Radius float64 // m
}

// GravInputForBody places the observer at altitude above a body preset.
// Negative altitudes are clamped to the surface.
func GravInputForBody(body string, altitude float64) (GravInput, error) {
	b, err := constants.LookupBody(body)
	if err != nil {
		return GravInput{}, err
	}
	return GravInput{Mass: b.Mass, Radius: b.Radius + math.Max(0, altitude)}, nil
}

// IsNoBody reports whether a --body value disables the presets.
func IsNoBody(body string) bool {
	b := strings.TrimSpace(strings.ToLower(body))
	return b == "" || b == "none"
}

// GravResult holds dτ/dt = √(1 - 2GM/(rc²)).
type GravResult struct {
	Mass    float64
	Radius  float64
	RsOverR float64
	Factor  float64
}

// GravDilation computes the Schwarzschild time dilation factor outside a
// non-rotating mass.
func GravDilation(in GravInput) (GravResult, error) {
	if err := calc.First(calc.Positive("mass", in.Mass), calc.Positive("radius", in.Radius)); err != nil {
		return GravResult{}, err
	}
	rs := 2 * constants.Gravitational * in.Mass / (in.Radius * c * c)
	if rs >= 1 {
		return GravResult{}, scierr.New("r is at or inside the Schwarzschild radius").
			WithCode(scierr.CodeValueOutOfRange).
			WithDetail("rs_over_r", rs)
	}
	return GravResult{Mass: in.Mass, Radius: in.Radius, RsOverR: rs, Factor: math.Sqrt(1 - rs)}, nil
}

// Report implements calc.Reporter.
func (r GravResult) Report() calc.Report {
	return calc.Report{
		Title: "Gravitational time dilation",
		Rows: []calc.Row{
			calc.Num("Mass", r.Mass, "kg"),
			calc.Num("r", r.Radius, "m"),
			calc.Num("2GM/(r c^2)", r.RsOverR, ""),
			calc.Num("dτ/dt", r.Factor, ""),
		},
		Notes: []string{"proper time per far-away coordinate time"},
	}
}
