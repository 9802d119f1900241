package em

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func TestCoulomb(t *testing.T) {
	tests := []struct {
		name          string
		in            CoulombInput
		want          float64
		wantRepulsive bool
	}{
		{"like charges", CoulombInput{Q1: 1e-6, Q2: 1e-6, R: 0.05}, 3.5950207169, true},
		{"opposite charges", CoulombInput{Q1: 1e-6, Q2: -2e-6, R: 1}, 0.0179751035846, false},
		{"neutral", CoulombInput{Q1: 0, Q2: 1, R: 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coulomb(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Force, 1e-9)
			assert.Equal(t, tt.wantRepulsive, got.Repulsive)
		})
	}

	_, err := Coulomb(CoulombInput{Q1: 1, Q2: 1, R: 0})
	assert.True(t, scierr.HasCode(err, scierr.CodeValueOutOfRange))
}

func TestCoulomb_Report(t *testing.T) {
	rep := CoulombResult{Force: 1, Repulsive: false}.Report()
	assert.Equal(t, "attractive", rep.Rows[1].Text)
}

func TestReactance(t *testing.T) {
	omega := 2 * math.Pi * 1000

	got, err := Reactance(ReactanceInput{Freq: 1000, Inductance: 0.01})
	require.NoError(t, err)
	assert.InDelta(t, omega*0.01, got.XL, 1e-9)
	assert.Zero(t, got.XC)
	assert.InDelta(t, got.XL, got.Total, 1e-12)

	got, err = Reactance(ReactanceInput{Freq: 1000, Inductance: 0.01, Capacitance: 1e-6})
	require.NoError(t, err)
	assert.InDelta(t, -1/(omega*1e-6), got.XC, 1e-9)
	assert.InDelta(t, got.XL+got.XC, got.Total, 1e-12)

	_, err = Reactance(ReactanceInput{Freq: 1000})
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))

	_, err = Reactance(ReactanceInput{Freq: 0, Inductance: 1})
	assert.True(t, scierr.HasCode(err, scierr.CodeValueOutOfRange))
}
