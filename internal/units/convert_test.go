package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	return NewConverter(DefaultRegistry(), WithLogger(zap.NewNop()))
}

func TestConvert_KnownValues(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		value float64
		from  string
		to    string
		want  float64
	}{
		{1, "m", "km", 0.001},
		{0, "C", "F", 32},
		{100, "C", "F", 212},
		{-40, "C", "F", -40},
		{32, "F", "C", 0},
		{0, "C", "K", 273.15},
		{0, "K", "C", -273.15},
		{491.67, "R", "F", 32},
		{0, "F", "R", 459.67},
		{10, "m/s", "km/h", 36},
		{1, "N", "kg*m/s^2", 1},
		{1, "mi", "km", 1.609344},
		{1, "atm", "Pa", 101325},
		{1, "atm", "psi", 14.695948775513449},
		{1, "kWh", "J", 3.6e6},
		{1, "eV", "J", 1.602176634e-19},
		{180, "deg", "rad", math.Pi},
		{60, "mph", "km/h", 96.56064},
		{1, "L", "cm^3", 1000},
		{1, "g/cm^3", "kg/m^3", 1000},
		{1, "W/m^2/K", "W/m^2/R", 5.0 / 9.0},
		{1, "1/s", "Hz", 1},
		{9.80665, "m/s^2", "gn", 1},
		{1, "lbf", "N", 4.4482216152605},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			got, err := c.Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9*math.Max(1, math.Abs(tt.want)))
		})
	}
}

func TestConvert_ExactLinear(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.Convert(1, "m", "km")
	require.NoError(t, err)
	assert.Equal(t, 0.001, got)

	got, err = c.Convert(1, "N", "kg*m/s^2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestConvert_RoundTripAllCompatiblePairs(t *testing.T) {
	c := newTestConverter(t)
	all := c.Registry().Units()

	for _, x := range []float64{3.7, -12.5, 1e6} {
		for _, a := range all {
			for _, b := range all {
				if !a.Dim.Equal(b.Dim) {
					continue
				}
				there, err := c.Convert(x, a.Symbol, b.Symbol)
				require.NoError(t, err, "%s -> %s", a.Symbol, b.Symbol)
				back, err := c.Convert(there, b.Symbol, a.Symbol)
				require.NoError(t, err, "%s -> %s", b.Symbol, a.Symbol)

				if math.Abs(back-x) > 1e-9*math.Abs(x) {
					t.Errorf("%v %s -> %s -> %s = %v", x, a.Symbol, b.Symbol, a.Symbol, back)
				}
			}
		}
	}
}

func TestConvert_MismatchAllIncompatiblePairs(t *testing.T) {
	c := newTestConverter(t)
	all := c.Registry().Units()

	for _, a := range all {
		for _, b := range all {
			if a.Dim.Equal(b.Dim) {
				continue
			}
			_, err := c.Convert(1, a.Symbol, b.Symbol)

			var mismatch *DimensionMismatchError
			if !assert.ErrorAs(t, err, &mismatch, "%s -> %s", a.Symbol, b.Symbol) {
				continue
			}
			assert.Equal(t, a.Dim, mismatch.FromDim)
			assert.Equal(t, b.Dim, mismatch.ToDim)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		name     string
		from, to string
		wantCode scierr.Code
	}{
		{"unknown destination", "m", "bananas", scierr.CodeUnknownUnit},
		{"unknown source", "furlongs", "m", scierr.CodeUnknownUnit},
		{"dangling operator", "m/", "m", scierr.CodeMalformedUnitExpression},
		{"length to time", "m", "s", scierr.CodeDimensionMismatch},
		{"velocity to acceleration", "m/s", "m/s^2", scierr.CodeDimensionMismatch},
		{"celsius in compound", "C/m", "K/m", scierr.CodeAffineComposition},
		{"fahrenheit squared", "F^2", "K^2", scierr.CodeAffineComposition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Convert(1, tt.from, tt.to)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, scierr.GetCode(err))
		})
	}
}

func TestConvert_UnknownUnitNamesSymbol(t *testing.T) {
	_, err := newTestConverter(t).Convert(1, "m", "bananas")

	var unknown *UnknownUnitError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bananas", unknown.Symbol)
}

func TestConvert_MismatchMessage(t *testing.T) {
	_, err := newTestConverter(t).Convert(1, "m", "s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incompatible units")
	assert.Contains(t, err.Error(), "[L]")
	assert.Contains(t, err.Error(), "[T]")
}

func TestDo_ReportsAffinePath(t *testing.T) {
	c := newTestConverter(t)

	res, err := c.Do(Request{Value: 25, From: "C", To: "K"})
	require.NoError(t, err)
	assert.True(t, res.Affine)
	assert.InDelta(t, 298.15, res.Value, 1e-9)
	assert.Equal(t, 25.0, res.Request.Value)

	res, err = c.Do(Request{Value: 0, From: "C", To: "K*m/m*s/s"})
	require.NoError(t, err)
	assert.True(t, res.Affine)
	assert.InDelta(t, 273.15, res.Value, 1e-9)
	assert.Equal(t, "K", res.ToExpr.String())

	res, err = c.Do(Request{Value: 2, From: "km", To: "m"})
	require.NoError(t, err)
	assert.False(t, res.Affine)
	assert.Equal(t, 2000.0, res.Value)
}

func TestConverter_WithCache(t *testing.T) {
	c := NewConverter(DefaultRegistry(), WithCache(4))

	for i := 0; i < 3; i++ {
		v, err := c.Convert(36, "km/h", "m/s")
		require.NoError(t, err)
		assert.InDelta(t, 10, v, 1e-12)
	}
	hits, misses, _ := c.parsed.Stats()
	assert.Equal(t, int64(2), misses)
	assert.Equal(t, int64(4), hits)

	_, err := c.Convert(1, "m/", "m")
	require.Error(t, err)
	_, err = c.Convert(1, "m/", "m")
	assert.True(t, scierr.HasCode(err, scierr.CodeMalformedUnitExpression))
	assert.Equal(t, 2, c.parsed.Size())
}
