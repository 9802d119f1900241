package relativity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func TestGamma(t *testing.T) {
	tests := []struct {
		beta    float64
		want    float64
		wantErr bool
	}{
		{0, 1, false},
		{0.6, 1.25, false},
		{0.8, 5.0 / 3.0, false},
		{1, 0, true},
		{-0.1, 0, true},
		{math.NaN(), 0, true},
	}

	for _, tt := range tests {
		got, err := Gamma(tt.beta)
		if tt.wantErr {
			assert.True(t, scierr.HasCode(err, scierr.CodeValueOutOfRange), "beta=%v", tt.beta)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12)
	}
}

func TestVelocity_Beta(t *testing.T) {
	assert.Equal(t, 0.5, Velocity{Value: 0.5}.Beta())
	assert.InDelta(t, 0.5, Velocity{Value: c / 2, MetersPerSecond: true}.Beta(), 1e-15)
}

func TestTimeDilationAndContraction(t *testing.T) {
	td, err := TimeDilation(TimeDilationInput{ProperTime: 10, V: Velocity{Value: 0.6}})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, td.Dilated, 1e-9)

	lc, err := LengthContraction(LengthContractionInput{ProperLength: 10, V: Velocity{Value: 0.6}})
	require.NoError(t, err)
	assert.InDelta(t, 8, lc.Contracted, 1e-9)

	_, err = TimeDilation(TimeDilationInput{ProperTime: -1, V: Velocity{Value: 0.5}})
	assert.Error(t, err)
	_, err = LengthContraction(LengthContractionInput{ProperLength: 1, V: Velocity{Value: 1.5}})
	assert.Error(t, err)
}

func TestEnergy(t *testing.T) {
	got, err := Energy(EnergyInput{Mass: 1, V: Velocity{Value: 0.6}})
	require.NoError(t, err)

	mc2 := c * c
	assert.InDelta(t, mc2, got.Rest, 1)
	assert.InDelta(t, 1.25*mc2, got.Total, 1e3)
	assert.InDelta(t, 0.25*mc2, got.Kinetic, 1e3)
	assert.InDelta(t, got.Total-got.Rest, got.Kinetic, 1e3)
}

func TestGravDilation(t *testing.T) {
	in, err := GravInputForBody("earth", 0)
	require.NoError(t, err)

	got, err := GravDilation(in)
	require.NoError(t, err)
	assert.InDelta(t, 1-6.96e-10, got.Factor, 1e-11)

	high, err := GravInputForBody("earth", 20_200e3)
	require.NoError(t, err)
	gps, err := GravDilation(high)
	require.NoError(t, err)
	assert.Greater(t, gps.Factor, got.Factor)

	// a solar mass squeezed into 1 km is inside its horizon
	_, err = GravDilation(GravInput{Mass: 1.98847e30, Radius: 1000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Schwarzschild")

	_, err = GravInputForBody("krypton", 0)
	assert.Equal(t, scierr.CodeUnknownBody, scierr.GetCode(err))
}

func TestIsNoBody(t *testing.T) {
	assert.True(t, IsNoBody("none"))
	assert.True(t, IsNoBody(" NONE "))
	assert.True(t, IsNoBody(""))
	assert.False(t, IsNoBody("earth"))
}
