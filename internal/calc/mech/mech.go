// Package mech implements classical mechanics calculators: projectile
// motion, work, power, pendulum and orbital period.
package mech

import (
	"math"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
	"github.com/msto63/sciops/internal/constants"
)

// ProjectileInput describes a launch in a uniform field without drag.
type ProjectileInput struct {
	V0       float64 // m/s
	AngleDeg float64 // above horizontal
	Y0       float64 // m
	G        float64 // m/s^2
}

// ProjectileResult holds the trajectory summary.
type ProjectileResult struct {
	TimeOfFlight float64
	Range        float64
	MaxHeight    float64
	Vx0          float64
	Vy0          float64
}

// Projectile solves y(t) = y0 + vy0·t - g·t²/2 = 0 for the landing time.
func Projectile(in ProjectileInput) (ProjectileResult, error) {
	if err := calc.First(
		calc.Finite("initial speed", in.V0),
		calc.Finite("angle", in.AngleDeg),
		calc.Finite("initial height", in.Y0),
		calc.Positive("g", in.G),
	); err != nil {
		return ProjectileResult{}, err
	}

	theta := in.AngleDeg * math.Pi / 180
	vx0 := in.V0 * math.Cos(theta)
	vy0 := in.V0 * math.Sin(theta)

	a := -0.5 * in.G
	b := vy0
	c := in.Y0

	disc := b*b - 4*a*c
	if disc < 0 {
		return ProjectileResult{}, scierr.New("no real impact time (object never reaches y=0)").
			WithCode(scierr.CodeValueOutOfRange)
	}

	t1 := (-b + math.Sqrt(disc)) / (2 * a)
	t2 := (-b - math.Sqrt(disc)) / (2 * a)
	flight := math.Max(t1, t2)

	yMax := in.Y0
	if vy0 > 0 {
		tPeak := vy0 / in.G
		yMax = in.Y0 + vy0*tPeak - 0.5*in.G*tPeak*tPeak
	}

	return ProjectileResult{
		TimeOfFlight: flight,
		Range:        vx0 * flight,
		MaxHeight:    yMax,
		Vx0:          vx0,
		Vy0:          vy0,
	}, nil
}

// Report implements calc.Reporter.
func (r ProjectileResult) Report() calc.Report {
	return calc.Report{
		Title: "Projectile motion (no drag)",
		Rows: []calc.Row{
			calc.Num("Time of flight", r.TimeOfFlight, "s"),
			calc.Num("Horizontal range", r.Range, "m"),
			calc.Num("Maximum height", r.MaxHeight, "m"),
			calc.Num("vx0", r.Vx0, "m/s"),
			calc.Num("vy0", r.Vy0, "m/s"),
		},
		Notes: []string{"flat ground, constant g, no air resistance"},
	}
}

// WorkInput is a force applied along a displacement.
type WorkInput struct {
	Force    float64 // N
	Distance float64 // m
	AngleDeg float64 // between force and displacement
}

// WorkResult holds W = F·d·cos θ.
type WorkResult struct {
	Work float64
}

// Work computes mechanical work.
func Work(in WorkInput) (WorkResult, error) {
	if err := calc.First(
		calc.Finite("force", in.Force),
		calc.Finite("distance", in.Distance),
		calc.Finite("angle", in.AngleDeg),
	); err != nil {
		return WorkResult{}, err
	}
	theta := in.AngleDeg * math.Pi / 180
	return WorkResult{Work: in.Force * in.Distance * math.Cos(theta)}, nil
}

// Report implements calc.Reporter.
func (r WorkResult) Report() calc.Report {
	return calc.Report{Title: "Work", Rows: []calc.Row{calc.Num("W", r.Work, "J")}}
}

// PowerInput is work done over a time interval.
type PowerInput struct {
	Work float64 // J
	Time float64 // s
}

// PowerResult holds the average power.
type PowerResult struct {
	Power float64
}

// Power computes P = W / Δt.
func Power(in PowerInput) (PowerResult, error) {
	if err := calc.First(calc.Finite("work", in.Work), calc.Positive("time", in.Time)); err != nil {
		return PowerResult{}, err
	}
	return PowerResult{Power: in.Work / in.Time}, nil
}

// Report implements calc.Reporter.
func (r PowerResult) Report() calc.Report {
	return calc.Report{Title: "Average power", Rows: []calc.Row{calc.Num("P", r.Power, "W")}}
}

// PendulumInput describes a simple pendulum.
type PendulumInput struct {
	Length float64 // m
	G      float64 // m/s^2
}

// PendulumResult holds the small-angle period.
type PendulumResult struct {
	Period float64
}

// Pendulum computes T = 2π·√(L/g).
func Pendulum(in PendulumInput) (PendulumResult, error) {
	if err := calc.First(calc.Positive("length", in.Length), calc.Positive("g", in.G)); err != nil {
		return PendulumResult{}, err
	}
	return PendulumResult{Period: 2 * math.Pi * math.Sqrt(in.Length/in.G)}, nil
}

// Report implements calc.Reporter.
func (r PendulumResult) Report() calc.Report {
	return calc.Report{
		Title: "Simple pendulum",
		Rows:  []calc.Row{calc.Num("T", r.Period, "s")},
		Notes: []string{"small-angle approximation"},
	}
}

// OrbitInput describes a Keplerian two-body orbit.
type OrbitInput struct {
	SemiMajorAxis float64 // m
	Mu            float64 // m^3/s^2
}

// OrbitResult holds the orbital period.
type OrbitResult struct {
	Period float64
}

// OrbitPeriod computes T = 2π·√(a³/μ).
func OrbitPeriod(in OrbitInput) (OrbitResult, error) {
	if err := calc.First(calc.Positive("semi-major axis", in.SemiMajorAxis), calc.Positive("mu", in.Mu)); err != nil {
		return OrbitResult{}, err
	}
	a := in.SemiMajorAxis
	return OrbitResult{Period: 2 * math.Pi * math.Sqrt(a*a*a/in.Mu)}, nil
}

// Report implements calc.Reporter.
func (r OrbitResult) Report() calc.Report {
	return calc.Report{
		Title: "Orbital period",
		Rows: []calc.Row{
			calc.Num("T", r.Period, "s"),
			calc.Num("T", r.Period/3600, "h"),
		},
	}
}

// SurfaceGravity returns g for a body preset.
func SurfaceGravity(body string) (float64, error) {
	b, err := constants.LookupBody(body)
	if err != nil {
		return 0, err
	}
	return b.G, nil
}

// GravitationalParameter returns μ = GM for a body preset.
func GravitationalParameter(body string) (float64, error) {
	b, err := constants.LookupBody(body)
	if err != nil {
		return 0, err
	}
	return b.Mu, nil
}
