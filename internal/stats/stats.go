// Package stats implements descriptive statistics, the normal distribution
// and simple linear regression on top of gonum.
package stats

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
}

// Describe summarizes values. Std is the sample standard deviation
// (n-1 denominator) and is 0 for a single value.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, scierr.InvalidInput("no data provided")
	}
	for _, v := range values {
		if err := calc.Finite("value", v); err != nil {
			return Summary{}, err
		}
	}

	s := Summary{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: Median(values),
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s, nil
}

// Median returns the middle value, averaging the two middle values of an
// even-length sample. values is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Report implements calc.Reporter.
func (s Summary) Report() calc.Report {
	return calc.Report{
		Title: "Summary",
		Rows: []calc.Row{
			calc.Txt("count", strconv.Itoa(s.Count)),
			calc.Num("mean", s.Mean, ""),
			calc.Num("std", s.Std, ""),
			calc.Num("min", s.Min, ""),
			calc.Num("max", s.Max, ""),
			calc.Num("median", s.Median, ""),
		},
	}
}

func normal(mu, sigma float64) (distuv.Normal, error) {
	if err := calc.First(calc.Finite("mu", mu), calc.Positive("sigma", sigma)); err != nil {
		return distuv.Normal{}, err
	}
	return distuv.Normal{Mu: mu, Sigma: sigma}, nil
}

// NormalPDF evaluates the normal density at x.
func NormalPDF(x, mu, sigma float64) (float64, error) {
	d, err := normal(mu, sigma)
	if err != nil {
		return 0, err
	}
	return d.Prob(x), nil
}

// NormalCDF evaluates the normal cumulative distribution at x.
func NormalCDF(x, mu, sigma float64) (float64, error) {
	d, err := normal(mu, sigma)
	if err != nil {
		return 0, err
	}
	return d.CDF(x), nil
}

// Regression is a least-squares fit y = Slope·x + Intercept.
type Regression struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	R         float64 `json:"r" yaml:"r"`
	R2        float64 `json:"r2" yaml:"r2"`
	N         int     `json:"n" yaml:"n"`
}

// LinearRegression fits a line through the points. R carries the sign of
// the slope. R2 is 0 when y is constant.
func LinearRegression(x, y []float64) (Regression, error) {
	if len(x) != len(y) {
		return Regression{}, scierr.InvalidInput("x and y must have the same length (%d != %d)", len(x), len(y))
	}
	if len(x) < 2 {
		return Regression{}, scierr.InvalidInput("need at least 2 numeric pairs for regression")
	}
	if floats.Min(x) == floats.Max(x) {
		return Regression{}, scierr.InvalidInput("x values are all equal, slope is undefined")
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	r2 := 0.0
	if floats.Min(y) != floats.Max(y) {
		r2 = stat.RSquared(x, y, nil, intercept, slope)
	}
	r := math.Sqrt(math.Max(r2, 0))
	if slope < 0 {
		r = -r
	}
	return Regression{Slope: slope, Intercept: intercept, R: r, R2: r2, N: len(x)}, nil
}

// Report implements calc.Reporter.
func (r Regression) Report() calc.Report {
	return calc.Report{
		Title: "Linear regression",
		Rows: []calc.Row{
			calc.Num("slope (m)", r.Slope, ""),
			calc.Num("intercept (b)", r.Intercept, ""),
			calc.Num("r", r.R, ""),
			calc.Num("r^2", r.R2, ""),
		},
	}
}

// Quadrature combines independent uncertainties as √Σu².
func Quadrature(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, scierr.InvalidInput("provide at least one uncertainty value")
	}
	return floats.Norm(values, 2), nil
}

// Bin is one histogram bucket covering [Lo, Hi). The last bin also
// includes Hi.
type Bin struct {
	Lo    float64 `json:"lo" yaml:"lo"`
	Hi    float64 `json:"hi" yaml:"hi"`
	Count int     `json:"count" yaml:"count"`
}

// Histogram sorts values into equal-width bins over [min, max]. A sample
// with a single distinct value is binned over [v-0.5, v+0.5].
func Histogram(values []float64, bins int) ([]Bin, error) {
	if len(values) == 0 {
		return nil, scierr.InvalidInput("no data provided")
	}
	if bins < 1 {
		return nil, scierr.OutOfRange("bins must be at least 1").WithDetail("bins", bins)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lo: edges[i], Hi: edges[i+1], Count: int(counts[i])}
	}
	return out, nil
}
