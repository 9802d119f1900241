package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
	"github.com/msto63/sciops/internal/units"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func newTestPrinter(opts ...Option) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	opts = append([]Option{WithColor(false)}, opts...)
	return New(&out, &errOut, opts...), &out, &errOut
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{299792458, 6, "2.99792e+08"},
		{0.5, 6, "0.5"},
		{32, 6, "32"},
		{1.0 / 3.0, 3, "0.333"},
		{1e-5, 6, "1e-05"},
		{2.5, 0, "2.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.precision))
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "table": FormatTable, "JSON": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))
}

func TestPrinter_Report(t *testing.T) {
	p, out, _ := newTestPrinter(WithPrecision(4))
	p.Report(calc.Report{
		Title: "Pendulum",
		Rows: []calc.Row{
			calc.Num("Period", 2.00640929, "s"),
			calc.Txt("Image", "real, inverted"),
		},
		Notes: []string{"small-angle approximation"},
	})

	got := plain(out.String())
	assert.Contains(t, got, "Pendulum")
	assert.Contains(t, got, "Period = 2.006 s")
	assert.Contains(t, got, "Image = real, inverted")
	assert.Contains(t, got, "(small-angle approximation)")
}

func TestPrinter_Plain(t *testing.T) {
	p, _, _ := newTestPrinter(WithPrecision(3))
	got := p.Plain(calc.Report{Title: "Work", Rows: []calc.Row{calc.Num("W", 12.3456, "J")}})
	assert.Equal(t, "Work: W = 12.3 J", got)
}

func TestPrinter_Table(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.Table("Constants", []string{"Key", "Value"}, [][]string{{"c", "299792458"}, {"g", "6.6743e-11"}})

	got := plain(out.String())
	assert.Contains(t, got, "Constants")
	assert.Contains(t, got, "Key")
	assert.Contains(t, got, "299792458")
	assert.Contains(t, got, "6.6743e-11")
}

func TestPrinter_Encode(t *testing.T) {
	type item struct {
		Key   string  `json:"key" yaml:"key"`
		Value float64 `json:"value" yaml:"value"`
	}
	items := []item{{"c", 299792458}}

	p, out, _ := newTestPrinter(WithFormat(FormatJSON))
	require.True(t, p.Machine())
	require.NoError(t, p.Encode(items))
	var decoded []item
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, items, decoded)

	p, out, _ = newTestPrinter(WithFormat(FormatYAML))
	require.NoError(t, p.Encode(items))
	decoded = nil
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, items, decoded)

	p, _, _ = newTestPrinter()
	assert.False(t, p.Machine())
	assert.Error(t, p.Encode(items))
}

func TestPrinter_MarkdownWithoutColor(t *testing.T) {
	p, out, _ := newTestPrinter()
	require.NoError(t, p.Markdown("- [2024-06-01T10:00:00] note\n", 80))
	assert.Equal(t, "- [2024-06-01T10:00:00] note\n", out.String())
}

func TestPrinter_Warn(t *testing.T) {
	p, out, errOut := newTestPrinter()
	p.Warn("ignoring invalid characters: %s", "N")
	assert.Empty(t, out.String())
	assert.Contains(t, plain(errOut.String()), "Warning: ignoring invalid characters: N")
}

func TestPrinter_ErrorDiagnostics(t *testing.T) {
	reg := units.DefaultRegistry()
	conv := units.NewConverter(reg)

	t.Run("dimension mismatch", func(t *testing.T) {
		p, _, errOut := newTestPrinter()
		_, err := conv.Convert(1, "m", "s")
		require.Error(t, err)
		p.Error(err)

		got := plain(errOut.String())
		assert.True(t, strings.HasPrefix(got, "Error: incompatible units"))
		assert.Contains(t, got, "from: m  dimension L")
		assert.Contains(t, got, "to:   s  dimension T")
	})

	t.Run("malformed", func(t *testing.T) {
		p, _, errOut := newTestPrinter()
		_, err := reg.Parse("m/")
		require.Error(t, err)
		p.Error(err)

		lines := strings.Split(strings.TrimRight(plain(errOut.String()), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "  m/", lines[1])
		assert.Equal(t, "    ^", lines[2])
	})

	t.Run("hints", func(t *testing.T) {
		p, _, errOut := newTestPrinter()
		p.Error(errors.New("boom"), "did you mean: km?")
		got := plain(errOut.String())
		assert.Contains(t, got, "Error: boom")
		assert.Contains(t, got, "did you mean: km?")
	})

	t.Run("nil", func(t *testing.T) {
		p, _, errOut := newTestPrinter()
		p.Error(nil)
		assert.Empty(t, errOut.String())
	})
}

func TestCaret(t *testing.T) {
	assert.Equal(t, []string{"  kg·x", "     ^"}, Caret("kg·x", len("kg·")))
	assert.Equal(t, []string{"  m", "  ^"}, Caret("m", -3))
	assert.Equal(t, []string{"  m", "   ^"}, Caret("m", 10))
}
