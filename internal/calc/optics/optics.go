// Package optics implements refraction and thin lens calculations.
package optics

import (
	"math"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// SnellInput is a ray crossing from medium n1 into medium n2.
type SnellInput struct {
	N1     float64
	N2     float64
	Theta1 float64 // degrees from the normal
}

// SnellResult holds the refraction angle. TotalInternal is set when no
// refracted ray exists.
type SnellResult struct {
	SnellInput
	Theta2        float64
	TotalInternal bool
}

// Snell applies n1·sin θ1 = n2·sin θ2.
func Snell(in SnellInput) (SnellResult, error) {
	if err := calc.First(
		calc.Positive("n1", in.N1),
		calc.Positive("n2", in.N2),
		calc.Finite("theta1", in.Theta1),
	); err != nil {
		return SnellResult{}, err
	}

	s2 := in.N1 / in.N2 * math.Sin(in.Theta1*math.Pi/180)
	if math.Abs(s2) > 1 {
		return SnellResult{SnellInput: in, TotalInternal: true}, nil
	}
	return SnellResult{SnellInput: in, Theta2: math.Asin(s2) * 180 / math.Pi}, nil
}

// CriticalAngle returns the critical angle in degrees for light going from
// n1 into a less dense n2.
func CriticalAngle(n1, n2 float64) (float64, error) {
	if err := calc.First(calc.Positive("n1", n1), calc.Positive("n2", n2)); err != nil {
		return 0, err
	}
	if n2 >= n1 {
		return 0, scierr.InvalidInput("no critical angle when n2 >= n1")
	}
	return math.Asin(n2/n1) * 180 / math.Pi, nil
}

// Report implements calc.Reporter.
func (r SnellResult) Report() calc.Report {
	rep := calc.Report{Title: "Snell's law"}
	if r.TotalInternal {
		rep.Rows = []calc.Row{calc.Txt("Result", "total internal reflection")}
		if c, err := CriticalAngle(r.N1, r.N2); err == nil {
			rep.Rows = append(rep.Rows, calc.Num("Critical angle", c, "°"))
		}
		return rep
	}
	rep.Rows = []calc.Row{calc.Num("theta2", r.Theta2, "°")}
	return rep
}

// ThinLensInput is a lens of focal length F with an object at distance Do.
// Both share one length unit.
type ThinLensInput struct {
	F  float64
	Do float64
}

// ThinLensResult describes the image. AtInfinity is set when the object
// sits at the focal point; Di and Magnification are then undefined.
type ThinLensResult struct {
	Di            float64
	Magnification float64
	AtInfinity    bool
	Real          bool
	Inverted      bool
}

// ThinLens applies 1/f = 1/do + 1/di.
func ThinLens(in ThinLensInput) (ThinLensResult, error) {
	if err := calc.First(calc.NonZero("focal length", in.F), calc.NonZero("object distance", in.Do)); err != nil {
		return ThinLensResult{}, err
	}

	denom := 1/in.F - 1/in.Do
	if denom == 0 {
		return ThinLensResult{AtInfinity: true}, nil
	}
	di := 1 / denom
	m := -di / in.Do
	return ThinLensResult{
		Di:            di,
		Magnification: m,
		Real:          di > 0,
		Inverted:      m < 0,
	}, nil
}

// Report implements calc.Reporter.
func (r ThinLensResult) Report() calc.Report {
	rep := calc.Report{Title: "Thin lens"}
	if r.AtInfinity {
		rep.Rows = []calc.Row{calc.Txt("Image", "at infinity (object at focal point)")}
		return rep
	}

	kind := "virtual"
	if r.Real {
		kind = "real"
	}
	orientation := "upright"
	if r.Inverted {
		orientation = "inverted"
	}
	rep.Rows = []calc.Row{
		calc.Num("Image distance", r.Di, ""),
		calc.Num("Magnification", r.Magnification, ""),
		calc.Txt("Image", kind+", "+orientation),
	}
	return rep
}
