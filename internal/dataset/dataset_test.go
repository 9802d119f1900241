package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "data.csv", "x,y,label\n1,2,a\n3,4,b\n5,6,c\n")

	tbl, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, path, tbl.Path)
	assert.Equal(t, []string{"x", "y", "label"}, tbl.Headers)
	assert.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"x", "y"}, tbl.NumericColumns())

	x, err := tbl.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5}, x)

	label, err := tbl.Column("label")
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestLoad_SniffsTabs(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\tb\n1\t2\n3\t4\n")

	tbl, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers)

	b, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, b)
}

func TestLoad_ExplicitDelimiter(t *testing.T) {
	path := writeFile(t, "data.txt", "a;b\n1,5;2\n")

	tbl, err := Load(path, ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers)
	assert.Equal(t, [][]string{{"1,5", "2"}}, tbl.Rows)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), 0)
	assert.True(t, scierr.HasCode(err, scierr.CodeNotFound))

	_, err = Load(writeFile(t, "header.csv", "x,y\n"), 0)
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))

	_, err = Load(writeFile(t, "empty.csv", ""), 0)
	assert.True(t, scierr.HasCode(err, scierr.CodeInvalidInput))
}

func TestParse_RaggedRows(t *testing.T) {
	tbl, err := Parse(strings.NewReader("a,b,c\n1\n1,2,3,4\n"), ',')
	require.NoError(t, err)

	want := [][]string{{"1", "", ""}, {"1", "2", "3"}}
	if diff := cmp.Diff(want, tbl.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestColumn_SkipsBlankAndText(t *testing.T) {
	tbl, err := Parse(strings.NewReader("v\n1\n\n n/a \n 2.5 \nNaN\n-3e2\n"), ',')
	require.NoError(t, err)

	got, err := tbl.Column("v")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -300}, got)

	_, err = tbl.Column("w")
	require.Error(t, err)
	assert.True(t, scierr.HasCode(err, scierr.CodeNotFound))
	assert.Contains(t, err.Error(), "available: v")
}

func TestPairs(t *testing.T) {
	tbl, err := Parse(strings.NewReader("x,y\n1,2\n2,\n3,6\nx,7\n"), ',')
	require.NoError(t, err)

	x, y, err := tbl.Pairs("x", "y")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, x)
	assert.Equal(t, []float64{2, 6}, y)

	_, _, err = tbl.Pairs("x", "z")
	assert.Error(t, err)
}

func TestHead(t *testing.T) {
	tbl, err := Parse(strings.NewReader("a\n1\n2\n3\n"), ',')
	require.NoError(t, err)

	assert.Len(t, tbl.Head(2), 2)
	assert.Len(t, tbl.Head(0), 1)
	assert.Len(t, tbl.Head(10), 3)
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{",", ',', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{";", ';', false},
		{"ab", 0, true},
		{`"`, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
