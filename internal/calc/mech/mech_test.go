package mech

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func TestProjectile(t *testing.T) {
	tests := []struct {
		name       string
		in         ProjectileInput
		wantFlight float64
		wantRange  float64
		wantHeight float64
	}{
		{
			name:       "45 degrees from ground",
			in:         ProjectileInput{V0: 20, AngleDeg: 45, G: 9.81},
			wantFlight: 2 * 20 * math.Sin(math.Pi/4) / 9.81,
			wantRange:  20 * 20 / 9.81,
			wantHeight: math.Pow(20*math.Sin(math.Pi/4), 2) / (2 * 9.81),
		},
		{
			name:       "horizontal from a cliff",
			in:         ProjectileInput{V0: 10, AngleDeg: 0, Y0: 19.62, G: 9.81},
			wantFlight: 2,
			wantRange:  20,
			wantHeight: 19.62,
		},
		{
			name:       "thrown downward keeps launch height as maximum",
			in:         ProjectileInput{V0: 5, AngleDeg: -90, Y0: 10, G: 9.81},
			wantFlight: (-5 + math.Sqrt(25+4*0.5*9.81*10)) / 9.81,
			wantRange:  0,
			wantHeight: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Projectile(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantFlight, got.TimeOfFlight, 1e-9)
			assert.InDelta(t, tt.wantRange, got.Range, 1e-9)
			assert.InDelta(t, tt.wantHeight, got.MaxHeight, 1e-9)
		})
	}
}

func TestProjectile_Errors(t *testing.T) {
	_, err := Projectile(ProjectileInput{V0: 10, AngleDeg: 45, G: 0})
	assert.True(t, scierr.HasCode(err, scierr.CodeValueOutOfRange))

	_, err = Projectile(ProjectileInput{V0: 1, AngleDeg: 90, Y0: -100, G: 9.81})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never reaches")
}

func TestWorkAndPower(t *testing.T) {
	w, err := Work(WorkInput{Force: 10, Distance: 3, AngleDeg: 60})
	require.NoError(t, err)
	assert.InDelta(t, 15, w.Work, 1e-9)

	p, err := Power(PowerInput{Work: 100, Time: 4})
	require.NoError(t, err)
	assert.Equal(t, 25.0, p.Power)

	_, err = Power(PowerInput{Work: 100, Time: 0})
	assert.True(t, scierr.HasCode(err, scierr.CodeValueOutOfRange))
}

func TestPendulum(t *testing.T) {
	got, err := Pendulum(PendulumInput{Length: 1, G: 9.80665})
	require.NoError(t, err)
	assert.InDelta(t, 2.00640929, got.Period, 1e-6)

	for _, in := range []PendulumInput{{Length: 0, G: 9.8}, {Length: 1, G: -1}} {
		_, err := Pendulum(in)
		assert.Error(t, err)
	}
}

func TestOrbitPeriod(t *testing.T) {
	mu, err := GravitationalParameter("earth")
	require.NoError(t, err)

	// geostationary radius gives one sidereal day
	got, err := OrbitPeriod(OrbitInput{SemiMajorAxis: 42164e3, Mu: mu})
	require.NoError(t, err)
	assert.InDelta(t, 86164, got.Period, 5)

	_, err = OrbitPeriod(OrbitInput{SemiMajorAxis: -1, Mu: mu})
	assert.Error(t, err)
}

func TestBodyPresets(t *testing.T) {
	g, err := SurfaceGravity("Moon")
	require.NoError(t, err)
	assert.Equal(t, 1.62, g)

	_, err = SurfaceGravity("vulcan")
	assert.Equal(t, scierr.CodeUnknownBody, scierr.GetCode(err))
}

func TestReports(t *testing.T) {
	r := ProjectileResult{TimeOfFlight: 1, Range: 2, MaxHeight: 3}.Report()
	assert.Len(t, r.Rows, 5)
	assert.Equal(t, "s", r.Rows[0].Unit)

	assert.Equal(t, "J", WorkResult{Work: 1}.Report().Rows[0].Unit)
	assert.Equal(t, "W", PowerResult{Power: 1}.Report().Rows[0].Unit)
	assert.Equal(t, "h", OrbitResult{Period: 3600}.Report().Rows[1].Unit)
}
