// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across sciops so the command layer
//              can classify failures without depending on concrete types.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Unit, constant and calculator codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Unit conversion
	CodeUnknownUnit             Code = "UNKNOWN_UNIT"
	CodeMalformedUnitExpression Code = "MALFORMED_UNIT_EXPRESSION"
	CodeDimensionMismatch       Code = "DIMENSION_MISMATCH"
	CodeAffineComposition       Code = "AFFINE_COMPOSITION"

	// Lookup tables
	CodeUnknownConstant Code = "UNKNOWN_CONSTANT"
	CodeUnknownBody     Code = "UNKNOWN_BODY"

	// Validation
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration and files
	CodeConfigError Code = "CONFIG_ERROR"
	CodeIOError     Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsLookupFailure reports whether the code means a name was not found in
// one of the static tables.
func (c Code) IsLookupFailure() bool {
	switch c {
	case CodeUnknownUnit, CodeUnknownConstant, CodeUnknownBody, CodeNotFound:
		return true
	default:
		return false
	}
}

// IsUserError reports whether the failure was caused by the invocation
// rather than by the environment.
func (c Code) IsUserError() bool {
	switch c {
	case CodeInternal, CodeIOError, CodeConfigError, CodeUnknown:
		return false
	default:
		return true
	}
}
