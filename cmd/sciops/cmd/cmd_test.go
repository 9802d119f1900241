package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// harness runs the root command against an isolated config directory.
type harness struct {
	t   *testing.T
	dir string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SCIOPS_CONFIG", "")
	t.Setenv("NO_COLOR", "1")
	return &harness{t: t, dir: dir}
}

func (h *harness) notebookPath() string {
	return filepath.Join(h.dir, "sciops", "lab_notebook.md")
}

func (h *harness) configPath() string {
	return filepath.Join(h.dir, "sciops", "config.toml")
}

func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := execute(context.Background(), rootCmd)
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag of c and its subcommands to its default
// so package-level flag variables do not leak between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestUnitsConvert(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"units", "convert", "0", "C", "F"}, "0 C = 32 F"},
		{[]string{"units", "convert", "100", "C", "K"}, "100 C = 373.15 K"},
		{[]string{"units", "convert", "1", "km", "m"}, "1 km = 1000 m"},
		{[]string{"units", "convert", "36", "km/h", "m/s"}, "36 km/h = 10 m/s"},
		{[]string{"units", "convert", "--", "-40", "C", "F"}, "-40 C = -40 F"},
		{[]string{"units", "convert", "--", "-273.15", "C", "K"}, "-273.15 C = 0 K"},
	}

	for _, tt := range tests {
		out, _, err := h.run(tt.args...)
		require.NoError(t, err, "args %v", tt.args)
		assert.Contains(t, out, tt.want)
	}
}

func TestUnitsConvert_JSON(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("units", "convert", "0", "C", "F", "-o", "json")
	require.NoError(t, err)

	var got conversion
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 32, got.Result, 1e-9)
	assert.True(t, got.Affine)
}

func TestUnitsConvert_Errors(t *testing.T) {
	h := newHarness(t)

	_, errOut, err := h.run("units", "convert", "1", "m", "s")
	require.Error(t, err)
	assert.True(t, scierr.HasCode(err, scierr.CodeDimensionMismatch))
	assert.Contains(t, errOut, "Error: ")
	assert.Contains(t, errOut, "dimension L")

	_, errOut, err = h.run("units", "convert", "1", "kilometr", "m")
	require.Error(t, err)
	assert.True(t, scierr.HasCode(err, scierr.CodeUnknownUnit))
	assert.Contains(t, errOut, "did you mean: km")

	_, errOut, err = h.run("units", "convert", "1", "m/", "m")
	require.Error(t, err)
	assert.True(t, scierr.HasCode(err, scierr.CodeMalformedUnitExpression))
	assert.Contains(t, errOut, "^")

	_, _, err = h.run("units", "convert", "abc", "m", "km")
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))
}

func TestUnitsListDimensions(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("units", "list-dimensions")
	require.NoError(t, err)
	assert.Contains(t, out, "length")
	assert.Contains(t, out, "km")
}

func TestConstants(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("constants", "get", "boltzmann")
	require.NoError(t, err)
	assert.Contains(t, out, "1.380649e-23")

	out, _, err = h.run("constants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2.99792e+08")

	out, _, err = h.run("constants", "get", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "299792458 m/s")

	_, errOut, err := h.run("constants", "get", "zzzzqq")
	require.Error(t, err)
	assert.True(t, scierr.HasCode(err, scierr.CodeUnknownConstant))
	assert.Contains(t, errOut, "constants list")
}

func TestCalculators(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"work", []string{"mech", "work", "10", "2"}, "W = 20 J"},
		{"work with unit suffix", []string{"mech", "work", "10", "3ft"}, "W = 9.144 J"},
		{"pendulum", []string{"mech", "pendulum", "1", "--g", "9.80665"}, "T = 2.00641 s"},
		{"power", []string{"mech", "power", "100", "2min"}, "P = 0.833333 W"},
		{"gamma", []string{"relativity", "gamma", "0.6"}, "γ = 1.25"},
		{"describe", []string{"stats", "describe", "1", "2", "3", "4", "5"}, "mean = 3"},
		{"molarity", []string{"chem", "molarity", "-n", "0.5", "--volume-l", "250mL"}, "Molarity = 2 M"},
		{"percent error", []string{"labcalc", "percent-error", "10.5", "10"}, "Percent error = 5 %"},
		{"uncertainty", []string{"analysis", "uncertainty", "3", "4"}, "combined (quadrature) = 5"},
		{"punnett", []string{"bio", "punnett", "Aa", "Aa"}, "Aa = 0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := h.run(tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCalculators_InvalidInput(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("mech", "power", "10", "0")
	assert.Error(t, err)

	_, _, err = h.run("mech", "pendulum", "1", "--body", "pluto")
	assert.True(t, scierr.HasCode(err, scierr.CodeUnknownBody))

	_, _, err = h.run("relativity", "gamma", "1")
	assert.Error(t, err)

	_, _, err = h.run("relativity", "grav-dilation", "--body", "none")
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))
}

func TestLogFlag(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("mech", "work", "10", "2", "--log")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged to")

	data, err := os.ReadFile(h.notebookPath())
	require.NoError(t, err)
	assert.Regexp(t, `^- \[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\] Work: W = 20 J\n$`, string(data))
}

func TestNotebook(t *testing.T) {
	h := newHarness(t)

	_, errOut, err := h.run("notebook", "show")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Notebook is empty (file not found).")

	_, _, err = h.run("notebook", "log", "titration", "run", "3")
	require.NoError(t, err)

	out, _, err := h.run("notebook", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "] titration run 3")
}

func TestNotebookSetPath(t *testing.T) {
	h := newHarness(t)
	target := filepath.Join(h.dir, "lab", "nb.md")

	_, _, err := h.run("notebook", "set-path", target)
	require.NoError(t, err)

	_, _, err = h.run("notebook", "log", "moved")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "moved")
}

func TestConfigSetAndShow(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("config", "set", "precision", "3")
	require.NoError(t, err)
	assert.FileExists(t, h.configPath())

	out, _, err := h.run("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "precision")
	assert.Contains(t, out, h.configPath())

	out, _, err = h.run("units", "convert", "1", "mi", "km")
	require.NoError(t, err)
	assert.Contains(t, out, "1 mi = 1.61 km")

	_, _, err = h.run("config", "set", "bogus", "1")
	assert.True(t, scierr.HasCode(err, scierr.CodeNotFound))

	_, _, err = h.run("config", "set", "color", "maybe")
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))
}

func TestDefaultBodyFromConfig(t *testing.T) {
	h := newHarness(t)

	earth, _, err := h.run("mech", "pendulum", "1")
	require.NoError(t, err)

	_, _, err = h.run("config", "set", "default_body", "moon")
	require.NoError(t, err)

	moon, _, err := h.run("mech", "pendulum", "1")
	require.NoError(t, err)
	assert.NotEqual(t, earth, moon)

	explicit, _, err := h.run("mech", "pendulum", "1", "--body", "earth")
	require.NoError(t, err)
	assert.Equal(t, earth, explicit)
}

func TestDataCommands(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.dir, "cal.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2\n2,4\n3,6\n"), 0o644))

	out, _, err := h.run("analysis", "regress", path, "x", "y")
	require.NoError(t, err)
	assert.Contains(t, out, "slope (m) = 2")

	out, _, err = h.run("data", "summarize", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Median")

	out, _, err = h.run("data", "hist", path, "y", "--bins", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Histogram of y")
}

func TestHelpAllAndVersion(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("help-all")
	require.NoError(t, err)
	for _, group := range []string{"units", "constants", "notebook", "relativity"} {
		assert.Contains(t, out, group)
	}

	out, _, err = h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "CODATA 2018")
}

func TestSplitQuantity(t *testing.T) {
	tests := []struct {
		in      string
		value   float64
		unit    string
		wantErr bool
	}{
		{"3", 3, "", false},
		{"3ft", 3, "ft", false},
		{"72 km/h", 72, "km/h", false},
		{"1.5e8m/s", 1.5e8, "m/s", false},
		{"-2.5e-3 kg", -2.5e-3, "kg", false},
		{"2e", 2, "e", false},
		{"ft", 0, "", true},
		{"", 0, "", true},
	}

	for _, tt := range tests {
		v, unit, err := splitQuantity(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.value, v, "input %q", tt.in)
		assert.Equal(t, tt.unit, unit, "input %q", tt.in)
	}
}

func TestParseFrames(t *testing.T) {
	got, err := parseFrames("1, 3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)

	_, err = parseFrames("one")
	assert.Error(t, err)
}
