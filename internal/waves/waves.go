// Package waves generates sampled periodic signals over t in [0, 1].
package waves

import (
	"math"

	"gonum.org/v1/gonum/floats"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// DefaultSamples is the sample count used when none is given.
const DefaultSamples = 40

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields just start.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

func validate(freq float64, samples int) error {
	if err := calc.Finite("frequency", freq); err != nil {
		return err
	}
	if samples < 1 {
		return scierr.OutOfRange("samples must be at least 1").WithDetail("samples", samples)
	}
	return nil
}

// Sine samples sin(2π·freq·t).
func Sine(freq float64, samples int) ([]float64, error) {
	if err := validate(freq, samples); err != nil {
		return nil, err
	}
	t := Linspace(0, 1, samples)
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = math.Sin(2 * math.Pi * freq * ti)
	}
	return y, nil
}

// Square samples a ±1 square wave that is high for the first duty
// fraction of each period.
func Square(freq float64, samples int, duty float64) ([]float64, error) {
	if err := validate(freq, samples); err != nil {
		return nil, err
	}
	if err := calc.InRange("duty", duty, 0, 1); err != nil {
		return nil, err
	}

	t := Linspace(0, 1, samples)
	y := make([]float64, len(t))
	for i, ti := range t {
		phase := math.Mod(freq*ti, 1)
		if phase < 0 {
			phase++
		}
		if phase < duty {
			y[i] = 1
		} else {
			y[i] = -1
		}
	}
	return y, nil
}
