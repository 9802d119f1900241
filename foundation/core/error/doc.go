// Package error provides the coded error type shared by all sciops packages.
//
// Package: error
// Title: sciops Error Handling
// Description: Structured errors with a machine-readable code, a human message,
//              an optional cause and key-value details used for diagnostics.
//              Domain packages either return *Error directly or define their
//              own typed errors that implement Coder, so GetCode works on any
//              error in a chain.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced to codes, details and cause for the sciops CLI;
//                      GetCode resolves typed domain errors via errors.As
//
// Usage:
//   import scierr "github.com/msto63/sciops/foundation/core/error"
//
//   err := scierr.New("time must be positive").
//     WithCode(scierr.CodeValueOutOfRange).
//     WithDetail("time", t)
//
//   if scierr.HasCode(err, scierr.CodeDimensionMismatch) {
//     // print both dimension vectors
//   }
package error
