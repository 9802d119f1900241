// Package constants provides the curated table of physical constants and
// the celestial body presets used by the calculators.
package constants

import (
	"fmt"
	"sort"
	"strings"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// Frequently used values, exported for calculators that need them as plain
// numbers.
const (
	SpeedOfLight  = 2.99792458e8      // m/s
	Gravitational = 6.67430e-11       // m^3 kg^-1 s^-2
	Planck        = 6.62607015e-34    // J·s
	Boltzmann     = 1.380649e-23      // J/K
	Avogadro      = 6.02214076e23     // 1/mol
	Elementary    = 1.602176634e-19   // C
	VacuumPermit  = 8.8541878128e-12  // F/m
	CoulombK      = 8.9875517923e9    // N·m^2/C^2
	StandardG     = 9.80665           // m/s^2
	GasConstant   = 8.314462618       // J/(mol·K)
	StefanBoltz   = 5.670374419e-8    // W/(m^2·K^4)
	ElectronMass  = 9.1093837015e-31  // kg
	ProtonMass    = 1.67262192369e-27 // kg
)

const codata2018 = "CODATA 2018"

// Entry is one row of the constants table. Unit is written so that the
// units package can parse it.
type Entry struct {
	Key         string   `json:"key" yaml:"key"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Symbol      string   `json:"symbol" yaml:"symbol"`
	Value       float64  `json:"value" yaml:"value"`
	Unit        string   `json:"unit" yaml:"unit"`
	Description string   `json:"description" yaml:"description"`
	Reference   string   `json:"reference" yaml:"reference"`
}

func (e Entry) clone() Entry {
	e.Aliases = append([]string(nil), e.Aliases...)
	return e
}

// UnknownConstantError is returned when neither a key, an alias nor a name
// fragment matches.
type UnknownConstantError struct {
	Query string
}

func (e *UnknownConstantError) Error() string {
	return fmt.Sprintf("no constants matched %q", e.Query)
}

// Code implements scierr.Coder.
func (e *UnknownConstantError) Code() scierr.Code { return scierr.CodeUnknownConstant }

// Table is an immutable, case-insensitive lookup table of constants.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table. Keys and aliases are matched case-insensitively
// and must be unique under that rule.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int),
	}

	for _, e := range entries {
		if e.Key == "" {
			return nil, scierr.New("constant with empty key").
				WithCode(scierr.CodeInternal).
				WithDetail("name", e.Name)
		}
		idx := len(t.entries)
		t.entries = append(t.entries, e.clone())

		for _, name := range append([]string{e.Key}, e.Aliases...) {
			folded := strings.ToLower(name)
			if prev, ok := t.index[folded]; ok {
				return nil, scierr.Newf("constant name %q is used by both %q and %q", name, t.entries[prev].Key, e.Key).
					WithCode(scierr.CodeInternal)
			}
			t.index[folded] = idx
		}
	}
	return t, nil
}

// DefaultTable returns the built-in table.
func DefaultTable() *Table {
	t, err := NewTable(Entries())
	if err != nil {
		panic(err)
	}
	return t
}

// Get looks a constant up by key or alias, ignoring case.
func (t *Table) Get(key string) (Entry, error) {
	if idx, ok := t.index[strings.ToLower(strings.TrimSpace(key))]; ok {
		return t.entries[idx].clone(), nil
	}
	return Entry{}, &UnknownConstantError{Query: key}
}

// Value returns just the numeric value of a constant.
func (t *Table) Value(key string) (float64, error) {
	e, err := t.Get(key)
	if err != nil {
		return 0, err
	}
	return e.Value, nil
}

// List returns all entries in declaration order.
func (t *Table) List() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.clone()
	}
	return out
}

// Search returns the exact key or alias match if there is one, otherwise
// every entry whose name or symbol contains query (case-insensitive).
func (t *Table) Search(query string) ([]Entry, error) {
	if e, err := t.Get(query); err == nil {
		return []Entry{e}, nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, &UnknownConstantError{Query: query}
	}

	var matches []Entry
	for _, e := range t.entries {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Symbol), q) {
			matches = append(matches, e.clone())
		}
	}
	if len(matches) == 0 {
		return nil, &UnknownConstantError{Query: query}
	}
	return matches, nil
}

// Keys returns the sorted primary keys.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the built-in constants. Units use "coulomb" and "farad"
// because C and F denote temperature scales in the unit registry.
func Entries() []Entry {
	return []Entry{
		{Key: "c", Aliases: []string{"speed_of_light"}, Name: "Speed of light in vacuum", Symbol: "c",
			Value: SpeedOfLight, Unit: "m/s", Description: "exact by definition of the metre", Reference: codata2018},
		{Key: "h", Aliases: []string{"planck"}, Name: "Planck constant", Symbol: "h",
			Value: Planck, Unit: "J·s", Description: "quantum of action", Reference: codata2018},
		{Key: "hbar", Aliases: []string{"reduced_planck"}, Name: "Reduced Planck constant", Symbol: "ħ",
			Value: 1.054571817e-34, Unit: "J·s", Description: "h divided by 2π", Reference: codata2018},
		{Key: "kb", Aliases: []string{"k_b", "boltzmann"}, Name: "Boltzmann constant", Symbol: "k_B",
			Value: Boltzmann, Unit: "J/K", Description: "energy per kelvin per particle", Reference: codata2018},
		{Key: "na", Aliases: []string{"n_a", "avogadro"}, Name: "Avogadro constant", Symbol: "N_A",
			Value: Avogadro, Unit: "1/mol", Description: "particles per mole", Reference: codata2018},
		{Key: "g", Aliases: []string{"newton_g", "gravitational"}, Name: "Newtonian constant of gravitation", Symbol: "G",
			Value: Gravitational, Unit: "m^3/kg/s^2", Description: "strength of gravity", Reference: codata2018},
		{Key: "e", Aliases: []string{"elementary_charge"}, Name: "Elementary charge", Symbol: "e",
			Value: Elementary, Unit: "coulomb", Description: "charge of the proton", Reference: codata2018},
		{Key: "me", Aliases: []string{"m_e", "electron_mass"}, Name: "Electron mass", Symbol: "m_e",
			Value: ElectronMass, Unit: "kg", Description: "rest mass of the electron", Reference: codata2018},
		{Key: "mp", Aliases: []string{"m_p", "proton_mass"}, Name: "Proton mass", Symbol: "m_p",
			Value: ProtonMass, Unit: "kg", Description: "rest mass of the proton", Reference: codata2018},
		{Key: "eps0", Aliases: []string{"epsilon0", "permittivity"}, Name: "Vacuum electric permittivity", Symbol: "ε0",
			Value: VacuumPermit, Unit: "farad/m", Description: "electric constant", Reference: codata2018},
		{Key: "mu0", Aliases: []string{"permeability"}, Name: "Vacuum magnetic permeability", Symbol: "μ0",
			Value: 1.25663706212e-6, Unit: "H/m", Description: "magnetic constant", Reference: codata2018},
		{Key: "ke", Aliases: []string{"coulomb_constant"}, Name: "Coulomb constant", Symbol: "k_e",
			Value: CoulombK, Unit: "N*m^2/coulomb^2", Description: "1/(4πε0)", Reference: codata2018},
		{Key: "r", Aliases: []string{"gas_constant"}, Name: "Molar gas constant", Symbol: "R",
			Value: GasConstant, Unit: "J/mol/K", Description: "N_A times k_B", Reference: codata2018},
		{Key: "faraday", Name: "Faraday constant", Symbol: "F",
			Value: 96485.33212, Unit: "coulomb/mol", Description: "charge per mole of electrons", Reference: codata2018},
		{Key: "sigma", Aliases: []string{"stefan_boltzmann"}, Name: "Stefan-Boltzmann constant", Symbol: "σ",
			Value: StefanBoltz, Unit: "W/m^2/K^4", Description: "black-body radiant exitance per T^4", Reference: codata2018},
		{Key: "wien", Name: "Wien wavelength displacement constant", Symbol: "b",
			Value: 2.897771955e-3, Unit: "m*K", Description: "peak wavelength times temperature", Reference: codata2018},
		{Key: "alpha", Aliases: []string{"fine_structure"}, Name: "Fine-structure constant", Symbol: "α",
			Value: 7.2973525693e-3, Unit: "1", Description: "dimensionless coupling of electromagnetism", Reference: codata2018},
		{Key: "a0", Aliases: []string{"bohr_radius"}, Name: "Bohr radius", Symbol: "a_0",
			Value: 5.29177210903e-11, Unit: "m", Description: "most probable electron distance in hydrogen", Reference: codata2018},
		{Key: "rinf", Aliases: []string{"rydberg"}, Name: "Rydberg constant", Symbol: "R_∞",
			Value: 10973731.568160, Unit: "1/m", Description: "limiting wavenumber of hydrogen", Reference: codata2018},
		{Key: "amu", Aliases: []string{"atomic_mass_unit", "dalton"}, Name: "Atomic mass constant", Symbol: "m_u",
			Value: 1.66053906660e-27, Unit: "kg", Description: "one twelfth of the mass of carbon-12", Reference: codata2018},
		{Key: "gn", Aliases: []string{"g_n", "g0", "standard_gravity"}, Name: "Standard acceleration of gravity", Symbol: "g_n",
			Value: StandardG, Unit: "m/s^2", Description: "conventional value at sea level", Reference: "CGPM 1901"},
		{Key: "atm", Aliases: []string{"standard_atmosphere"}, Name: "Standard atmosphere", Symbol: "atm",
			Value: 101325, Unit: "Pa", Description: "conventional sea-level pressure", Reference: "CGPM 1954"},
	}
}
