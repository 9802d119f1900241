package labcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func TestStockDilution(t *testing.T) {
	got, err := StockDilution(StockDilutionInput{CStock: 10, CFinal: 1, VFinal: 100})
	require.NoError(t, err)
	assert.InDelta(t, 10, got.StockVolume, 1e-12)
	assert.InDelta(t, 90, got.Solvent, 1e-12)

	rep := got.Report()
	assert.Equal(t, "Stock volume", rep.Rows[0].Label)
	assert.Equal(t, "Add solvent", rep.Rows[1].Label)
}

func TestStockDilution_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		in       StockDilutionInput
		wantCode scierr.Code
	}{
		{"equal concentrations", StockDilutionInput{CStock: 1, CFinal: 1, VFinal: 10}, scierr.CodeInvalidInput},
		{"zero volume", StockDilutionInput{CStock: 10, CFinal: 1, VFinal: 0}, scierr.CodeValueOutOfRange},
		{"negative stock", StockDilutionInput{CStock: -1, CFinal: 1, VFinal: 10}, scierr.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StockDilution(tt.in)
			assert.Equal(t, tt.wantCode, scierr.GetCode(err))
		})
	}
}

func TestPercentError(t *testing.T) {
	got, err := PercentError(PercentErrorInput{Measured: 10, True: 9})
	require.NoError(t, err)
	assert.InDelta(t, 11.1111111111, got.Percent, 1e-9)
	assert.Equal(t, "11.1111%", got.String())

	got, err = PercentError(PercentErrorInput{Measured: 9, True: 10})
	require.NoError(t, err)
	assert.InDelta(t, -10, got.Percent, 1e-12)

	_, err = PercentError(PercentErrorInput{Measured: 1, True: 0})
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))
}
