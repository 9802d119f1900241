// Package units implements dimensional analysis for unit conversion.
//
// A Registry holds the known units, each with a Dimension vector over the
// seven SI base dimensions, a scale to SI base units and, for temperature
// scales, an affine offset. Expressions such as "kg*m/s^2" are parsed into
// an Expression whose dimension and scale are derived from its terms. A
// Converter refuses any conversion whose two sides differ in dimension.
//
// Basic usage:
//
//	reg := units.DefaultRegistry()
//	conv := units.NewConverter(reg)
//	kmh, err := conv.Convert(10, "m/s", "km/h") // 36
//
// Temperature offsets are only applied when both sides are a single
// temperature unit. Expressions that combine °C or °F with other units are
// rejected with an *AffineCompositionError; K and R compose freely.
package units
