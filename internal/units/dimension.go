package units

import (
	"strconv"
	"strings"
)

// Base is one of the seven SI base dimensions.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity

	numBases
)

var baseSymbols = [numBases]string{"L", "M", "T", "I", "Θ", "N", "J"}

// baseUnits lists the SI base unit of each dimension, in the conventional
// order used when printing base-unit equivalents (kg before m).
var baseUnits = [numBases]string{"m", "kg", "s", "A", "K", "mol", "cd"}

var baseUnitOrder = [numBases]Base{Mass, Length, Time, Current, Temperature, Amount, LuminousIntensity}

// String returns the dimension symbol (L, M, T, ...).
func (b Base) String() string {
	if b < 0 || b >= numBases {
		return "?"
	}
	return baseSymbols[b]
}

// Dimension is a vector of integer exponents over the base dimensions.
// It is a value type: every operation returns a new vector.
type Dimension [numBases]int

// Dimensionless is the zero vector.
var Dimensionless Dimension

// NewDimension builds a vector from exponents in L, M, T, I, Θ, N, J order.
func NewDimension(l, m, t, i, theta, n, j int) Dimension {
	return Dimension{l, m, t, i, theta, n, j}
}

// Of returns the vector with exponent 1 for b and 0 elsewhere.
func Of(b Base) Dimension {
	var d Dimension
	d[b] = 1
	return d
}

// Mul returns the dimension of a product (componentwise sum).
func (d Dimension) Mul(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] + o[i]
	}
	return r
}

// Div returns the dimension of a quotient.
func (d Dimension) Div(o Dimension) Dimension {
	return d.Mul(o.Inv())
}

// Inv returns the dimension of the reciprocal (negated vector).
func (d Dimension) Inv() Dimension {
	return d.Pow(-1)
}

// Pow returns the dimension raised to n (vector scaled by n).
func (d Dimension) Pow(n int) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] * n
	}
	return r
}

// Equal reports componentwise equality.
func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// Exponent returns the exponent of a single base dimension.
func (d Dimension) Exponent(b Base) int {
	return d[b]
}

// String renders the vector with dimension symbols, e.g. "L·T^-2".
// The dimensionless vector renders as "1".
func (d Dimension) String() string {
	var parts []string
	for b := Base(0); b < numBases; b++ {
		if d[b] != 0 {
			parts = append(parts, power(b.String(), d[b]))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

// BaseUnits renders the SI base-unit equivalent, e.g. "kg·m·s^-2".
func (d Dimension) BaseUnits() string {
	var parts []string
	for _, b := range baseUnitOrder {
		if d[b] != 0 {
			parts = append(parts, power(baseUnits[b], d[b]))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

func power(symbol string, exp int) string {
	if exp == 1 {
		return symbol
	}
	return symbol + "^" + strconv.Itoa(exp)
}
