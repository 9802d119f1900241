package units

import (
	"fmt"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// UnknownUnitError is returned when a symbol is not in the registry.
// Position is the byte offset of the symbol inside Expression, or -1 when
// the symbol was looked up directly.
type UnknownUnitError struct {
	Symbol     string
	Expression string
	Position   int
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Symbol)
}

// Code implements scierr.Coder.
func (e *UnknownUnitError) Code() scierr.Code { return scierr.CodeUnknownUnit }

// MalformedExpressionError reports a syntax error in a unit expression.
type MalformedExpressionError struct {
	Expression string
	Position   int
	Reason     string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed unit expression %q at position %d: %s", e.Expression, e.Position, e.Reason)
}

// Code implements scierr.Coder.
func (e *MalformedExpressionError) Code() scierr.Code { return scierr.CodeMalformedUnitExpression }

// DimensionMismatchError is returned when source and destination do not
// describe the same physical quantity.
type DimensionMismatchError struct {
	From    string
	To      string
	FromDim Dimension
	ToDim   Dimension
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("incompatible units: %s [%s] cannot be converted to %s [%s]", e.From, e.FromDim, e.To, e.ToDim)
}

// Code implements scierr.Coder.
func (e *DimensionMismatchError) Code() scierr.Code { return scierr.CodeDimensionMismatch }

// AffineCompositionError is returned when a unit with an offset (°C, °F)
// appears in a compound expression or is raised to a power. Offsets only
// compose for a lone unit with exponent 1.
type AffineCompositionError struct {
	Expression string
	Symbol     string
}

func (e *AffineCompositionError) Error() string {
	return fmt.Sprintf("unit %q has an offset and cannot be used in compound expression %q; use K or R instead", e.Symbol, e.Expression)
}

// Code implements scierr.Coder.
func (e *AffineCompositionError) Code() scierr.Code { return scierr.CodeAffineComposition }
