package units

// Unit is a single registry entry. Values are copied out of the registry,
// so a Unit held by a caller can never change the registry's contents.
type Unit struct {
	Symbol   string
	Name     string
	Aliases  []string
	Dim      Dimension
	Category string

	// Scale converts one unit to the SI base units of Dim.
	Scale float64

	// Offset is added before scaling: base = (value + Offset) * Scale.
	// Only temperature scales carry a non-zero offset.
	Offset float64

	// Affine marks units that take part in offset-aware conversion when
	// they stand alone in an expression (K, °C, °F, °R).
	Affine bool
}

// ToBase converts a value in this unit to the SI base unit, applying the
// affine offset.
func (u Unit) ToBase(v float64) float64 {
	return (v + u.Offset) * u.Scale
}

// FromBase is the inverse of ToBase.
func (u Unit) FromBase(v float64) float64 {
	return v/u.Scale - u.Offset
}

// HasOffset reports whether the unit needs an affine transform.
func (u Unit) HasOffset() bool {
	return u.Offset != 0
}

// BaseEquivalent returns the canonical SI base-unit string for the unit's
// dimension, e.g. "kg·m·s^-2" for N.
func (u Unit) BaseEquivalent() string {
	return u.Dim.BaseUnits()
}

// Names returns the symbol followed by all aliases.
func (u Unit) Names() []string {
	names := make([]string, 0, 1+len(u.Aliases))
	names = append(names, u.Symbol)
	return append(names, u.Aliases...)
}
