package waves

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{0, []float64{}},
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}

	for _, tt := range tests {
		got := Linspace(0, 1, tt.n)
		assert.InDeltaSlice(t, tt.want, got, 1e-12, "n=%d", tt.n)
		assert.Len(t, got, len(tt.want))
	}
}

func TestSine(t *testing.T) {
	y, err := Sine(1, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 0, -1, 0}, y, 1e-12)

	_, err = Sine(1, 0)
	assert.Error(t, err)
	_, err = Sine(math.Inf(1), 10)
	assert.Error(t, err)
}

func TestSquare(t *testing.T) {
	y, err := Square(1, 5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, -1, -1, 1}, y)

	y, err = Square(1, 4, 0)
	require.NoError(t, err)
	for _, v := range y {
		assert.Equal(t, -1.0, v)
	}

	y, err = Square(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, y)

	_, err = Square(1, 10, 1.5)
	assert.Error(t, err)
}
