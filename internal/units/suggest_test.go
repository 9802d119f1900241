package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Suggest(t *testing.T) {
	reg := DefaultRegistry()

	got := reg.Suggest("kilometr", DefaultSuggestions)
	assert.Contains(t, got, "km")
	assert.LessOrEqual(t, len(got), DefaultSuggestions)

	got = reg.Suggest("metre", 10)
	assert.Contains(t, got, "m")
	seen := make(map[string]bool)
	for _, s := range got {
		assert.False(t, seen[s], "duplicate suggestion %q", s)
		seen[s] = true
	}

	assert.Empty(t, reg.Suggest("qqqqqq", 3))
	assert.Nil(t, reg.Suggest("", 3))
	assert.Nil(t, reg.Suggest("m", 0))
}
