package calc

import (
	"math"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// Positive fails unless v > 0.
func Positive(name string, v float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return scierr.OutOfRange("%s must be positive", name).WithDetail(name, v)
	}
	return nil
}

// NonNegative fails unless v >= 0.
func NonNegative(name string, v float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return scierr.OutOfRange("%s must be non-negative", name).WithDetail(name, v)
	}
	return nil
}

// NonZero fails when v == 0.
func NonZero(name string, v float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v == 0 {
		return scierr.InvalidInput("%s cannot be zero", name).WithDetail(name, v)
	}
	return nil
}

// InRange fails unless lo <= v <= hi.
func InRange(name string, v, lo, hi float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return scierr.OutOfRange("%s must be between %g and %g", name, lo, hi).WithDetail(name, v)
	}
	return nil
}

// Finite rejects NaN and infinities.
func Finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return scierr.InvalidInput("%s must be a finite number", name).WithDetail(name, v)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
