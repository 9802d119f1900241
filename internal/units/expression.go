package units

import (
	"strings"
)

// Term is one unit raised to an integer power inside an expression.
type Term struct {
	Unit     Unit
	Exponent int
}

// Expression is a parsed, normalized unit expression. Terms referring to
// the same unit are merged, zero exponents are dropped and the order of
// first appearance is kept, so "m*s/m/s" and "1" are equivalent.
type Expression struct {
	raw   string
	terms []Term
	dim   Dimension
	scale float64
}

// newExpression merges like terms. When a merged exponent leaves
// [-MaxExponent, MaxExponent] it returns the index of the offending term,
// otherwise -1.
func newExpression(raw string, terms []Term) (Expression, int) {
	merged := make([]Term, 0, len(terms))
	index := make(map[string]int, len(terms))
	for k, t := range terms {
		if i, ok := index[t.Unit.Symbol]; ok {
			merged[i].Exponent += t.Exponent
			if merged[i].Exponent > MaxExponent || merged[i].Exponent < -MaxExponent {
				return Expression{}, k
			}
			continue
		}
		index[t.Unit.Symbol] = len(merged)
		merged = append(merged, t)
	}

	e := Expression{raw: raw, scale: 1}
	for _, t := range merged {
		if t.Exponent == 0 {
			continue
		}
		e.terms = append(e.terms, t)
		e.dim = e.dim.Mul(t.Unit.Dim.Pow(t.Exponent))
		e.scale *= intPow(t.Unit.Scale, t.Exponent)
	}
	return e, -1
}

// intPow raises x to an integer power by squaring. Callers keep |n| within
// MaxExponent.
func intPow(x float64, n int) float64 {
	neg := n < 0
	if neg {
		n = -n
	}
	r := 1.0
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	if neg {
		return 1 / r
	}
	return r
}

// Raw returns the expression as the user wrote it.
func (e Expression) Raw() string { return e.raw }

// Terms returns a copy of the normalized terms.
func (e Expression) Terms() []Term {
	return append([]Term(nil), e.terms...)
}

// Dimension returns the aggregate dimension vector.
func (e Expression) Dimension() Dimension { return e.dim }

// Scale returns the factor converting one unit of the expression to SI base
// units.
func (e Expression) Scale() float64 { return e.scale }

// IsDimensionless reports whether the expression describes a pure number.
func (e Expression) IsDimensionless() bool { return e.dim.IsDimensionless() }

// Single returns the unit when the expression is exactly one unit with
// exponent 1.
func (e Expression) Single() (Unit, bool) {
	if len(e.terms) == 1 && e.terms[0].Exponent == 1 {
		return e.terms[0].Unit, true
	}
	return Unit{}, false
}

// offsetUnit returns the first term whose unit carries an affine offset.
func (e Expression) offsetUnit() (Unit, bool) {
	for _, t := range e.terms {
		if t.Unit.HasOffset() {
			return t.Unit, true
		}
	}
	return Unit{}, false
}

// String renders the normalized form, e.g. "kg·m·s^-2". A dimensionless
// expression with no terms renders as "1".
func (e Expression) String() string {
	if len(e.terms) == 0 {
		return "1"
	}
	parts := make([]string, len(e.terms))
	for i, t := range e.terms {
		parts[i] = power(t.Unit.Symbol, t.Exponent)
	}
	return strings.Join(parts, middleDot)
}
