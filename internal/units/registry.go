package units

import (
	"math"
	"strings"
	"unicode/utf8"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// ambiguous marks a case-folded name that belongs to more than one unit.
const ambiguous = -1

// minFoldedAlias is the shortest alias that also matches case-insensitively.
// Shorter names are symbols or abbreviations where case carries an SI prefix
// (MV and mV, Ms and ms).
const minFoldedAlias = 4

// Registry is an immutable table of units. It is built once and shared
// read-only; every accessor hands out copies.
type Registry struct {
	units    []Unit
	byName   map[string]int
	byFolded map[string]int
}

// NewRegistry validates defs and builds a registry from them. Symbols and
// aliases must be unique, must lex as a single identifier and scales must
// be positive and finite.
func NewRegistry(defs []Unit) (*Registry, error) {
	r := &Registry{
		units:    make([]Unit, 0, len(defs)),
		byName:   make(map[string]int),
		byFolded: make(map[string]int),
	}

	for _, def := range defs {
		if err := validate(def); err != nil {
			return nil, err
		}

		u := def
		u.Aliases = append([]string(nil), def.Aliases...)
		idx := len(r.units)
		r.units = append(r.units, u)

		for _, name := range u.Names() {
			if prev, ok := r.byName[name]; ok {
				return nil, scierr.Newf("unit name %q is used by both %q and %q", name, r.units[prev].Symbol, u.Symbol).
					WithCode(scierr.CodeInternal).
					WithOperation("units.NewRegistry")
			}
			r.byName[name] = idx
		}

		for _, name := range u.Aliases {
			if utf8.RuneCountInString(name) < minFoldedAlias {
				continue
			}
			folded := strings.ToLower(name)
			if prev, ok := r.byFolded[folded]; ok && prev != idx {
				r.byFolded[folded] = ambiguous
			} else if !ok {
				r.byFolded[folded] = idx
			}
		}
	}

	return r, nil
}

func validate(u Unit) error {
	fail := func(format string, args ...interface{}) error {
		return scierr.Newf(format, args...).
			WithCode(scierr.CodeInternal).
			WithOperation("units.NewRegistry").
			WithDetail("symbol", u.Symbol)
	}

	for _, name := range u.Names() {
		if !isSymbol(name) {
			return fail("unit name %q is not a valid symbol", name)
		}
	}
	if u.Scale <= 0 || math.IsInf(u.Scale, 0) || math.IsNaN(u.Scale) {
		return fail("unit %q has invalid scale %v", u.Symbol, u.Scale)
	}
	if u.HasOffset() && !u.Affine {
		return fail("unit %q has an offset but is not marked affine", u.Symbol)
	}
	return nil
}

// MustNewRegistry is like NewRegistry but panics on invalid definitions.
func MustNewRegistry(defs []Unit) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry builds a registry from the built-in definitions.
func DefaultRegistry() *Registry {
	return MustNewRegistry(Definitions())
}

// Lookup resolves a symbol or alias. An exact, case-sensitive match wins;
// otherwise a word alias ("Celsius", "KILOMETER") matches case-insensitively
// if the folded spelling is unique. Symbols are never folded, so "MV" does
// not resolve to mV.
func (r *Registry) Lookup(name string) (Unit, error) {
	if idx, ok := r.byName[name]; ok {
		return r.unit(idx), nil
	}
	if idx, ok := r.byFolded[strings.ToLower(name)]; ok && idx != ambiguous {
		return r.unit(idx), nil
	}
	return Unit{}, &UnknownUnitError{Symbol: name, Expression: name, Position: -1}
}

func (r *Registry) unit(idx int) Unit {
	u := r.units[idx]
	u.Aliases = append([]string(nil), u.Aliases...)
	return u
}

// Len returns the number of units.
func (r *Registry) Len() int {
	return len(r.units)
}

// Units returns all units in definition order.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	for i := range r.units {
		out[i] = r.unit(i)
	}
	return out
}

// Parse parses a unit expression against this registry.
func (r *Registry) Parse(expr string) (Expression, error) {
	return NewParser(r).Parse(expr)
}

// DimensionGroup lists the units sharing one dimension vector. Name is the
// category of the first unit defined with that dimension.
type DimensionGroup struct {
	Name      string
	Dim       Dimension
	BaseUnits string
	Symbols   []string
}

// ListByDimension groups unit symbols by dimension in definition order.
func (r *Registry) ListByDimension() []DimensionGroup {
	var groups []DimensionGroup
	index := make(map[Dimension]int)

	for _, u := range r.units {
		i, ok := index[u.Dim]
		if !ok {
			i = len(groups)
			index[u.Dim] = i
			groups = append(groups, DimensionGroup{
				Name:      u.Category,
				Dim:       u.Dim,
				BaseUnits: u.Dim.BaseUnits(),
			})
		}
		groups[i].Symbols = append(groups[i].Symbols, u.Symbol)
	}
	return groups
}
