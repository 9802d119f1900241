package constants

import (
	"fmt"
	"sort"
	"strings"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// Body holds the parameters of a celestial body preset. Mu is the standard
// gravitational parameter GM and G the surface gravity.
type Body struct {
	Key    string  `json:"key" yaml:"key"`
	Name   string  `json:"name" yaml:"name"`
	Mass   float64 `json:"mass_kg" yaml:"mass_kg"`
	Radius float64 `json:"radius_m" yaml:"radius_m"`
	Mu     float64 `json:"mu_m3_s2" yaml:"mu_m3_s2"`
	G      float64 `json:"g_m_s2" yaml:"g_m_s2"`
}

var bodies = map[string]Body{
	"earth":   {Key: "earth", Name: "Earth", Mass: 5.97219e24, Radius: 6.371e6, Mu: 3.986004418e14, G: 9.80665},
	"venus":   {Key: "venus", Name: "Venus", Mass: 4.8675e24, Radius: 6.0518e6, Mu: 3.24859e14, G: 8.87},
	"moon":    {Key: "moon", Name: "Moon", Mass: 7.342e22, Radius: 1.7374e6, Mu: 4.9048695e12, G: 1.62},
	"mars":    {Key: "mars", Name: "Mars", Mass: 6.4171e23, Radius: 3.3895e6, Mu: 4.282837e13, G: 3.721},
	"jupiter": {Key: "jupiter", Name: "Jupiter", Mass: 1.89813e27, Radius: 6.9911e7, Mu: 1.26686534e17, G: 24.79},
	"saturn":  {Key: "saturn", Name: "Saturn", Mass: 5.6834e26, Radius: 5.8232e7, Mu: 3.7931187e16, G: 10.44},
	"sun":     {Key: "sun", Name: "Sun", Mass: 1.98847e30, Radius: 6.9634e8, Mu: 1.32712440018e20, G: 274.0},
}

// UnknownBodyError is returned for a body name without a preset.
type UnknownBodyError struct {
	Name string
}

func (e *UnknownBodyError) Error() string {
	return fmt.Sprintf("unknown body %q (known: %s)", e.Name, strings.Join(BodyKeys(), ", "))
}

// Code implements scierr.Coder.
func (e *UnknownBodyError) Code() scierr.Code { return scierr.CodeUnknownBody }

// LookupBody returns the preset for name, ignoring case.
func LookupBody(name string) (Body, error) {
	b, ok := bodies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Body{}, &UnknownBodyError{Name: name}
	}
	return b, nil
}

// BodyKeys returns the sorted preset keys.
func BodyKeys() []string {
	keys := make([]string, 0, len(bodies))
	for k := range bodies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bodies returns all presets sorted by key.
func Bodies() []Body {
	keys := BodyKeys()
	out := make([]Body, len(keys))
	for i, k := range keys {
		out[i] = bodies[k]
	}
	return out
}
