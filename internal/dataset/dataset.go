// Package dataset loads small CSV/TSV tables with a header row and pulls
// numeric columns out of them.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// Table is a loaded file: the header and the data rows. Short rows are
// padded with empty cells and extra cells are dropped.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string
	index   map[string]int
}

// ParseDelimiter maps a user-supplied delimiter to a rune. "tab" and "\t"
// both mean a tab. An empty string means sniff.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`, "\t":
		return '\t', nil
	}
	r := []rune(s)
	if len(r) != 1 || r[0] == '"' || r[0] == '\n' || r[0] == '\r' {
		return 0, scierr.InvalidInput("delimiter must be a single character, got %q", s)
	}
	return r[0], nil
}

// Sniff picks tab when the data has tabs but no commas, otherwise comma.
func Sniff(data []byte) rune {
	if !bytes.ContainsRune(data, ',') && bytes.ContainsRune(data, '\t') {
		return '\t'
	}
	return ','
}

// Load reads the file at path. A zero delimiter is sniffed from the
// content.
func Load(path string, delimiter rune) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, scierr.Newf("file not found: %s", path).WithCode(scierr.CodeNotFound)
		}
		return nil, scierr.Wrap(err, "failed to read data file").WithCode(scierr.CodeIOError).WithDetail("path", path)
	}
	if delimiter == 0 {
		delimiter = Sniff(data)
	}

	t, err := Parse(bytes.NewReader(data), delimiter)
	if err != nil {
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Parse reads a table from r.
func Parse(r io.Reader, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, scierr.Wrap(err, "failed to parse data file").WithCode(scierr.CodeInvalidFormat)
	}
	if len(records) < 2 {
		return nil, scierr.InvalidInput("file appears to be empty or has no data rows")
	}

	headers := records[0]
	headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	t := &Table{
		Headers: headers,
		Rows:    make([][]string, 0, len(records)-1),
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	for _, rec := range records[1:] {
		row := make([]string, len(headers))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) columnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, scierr.Newf("column %q not found, available: %s", name, strings.Join(t.Headers, ", ")).
			WithCode(scierr.CodeNotFound).WithDetail("column", name)
	}
	return i, nil
}

// Column returns the numeric values of a column, skipping blank and
// non-numeric cells.
func (t *Table) Column(name string) ([]float64, error) {
	i, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if v, ok := number(row[i]); ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// Pairs returns the rows where both columns hold numbers.
func (t *Table) Pairs(xcol, ycol string) (x, y []float64, err error) {
	xi, err := t.columnIndex(xcol)
	if err != nil {
		return nil, nil, err
	}
	yi, err := t.columnIndex(ycol)
	if err != nil {
		return nil, nil, err
	}
	for _, row := range t.Rows {
		xv, okx := number(row[xi])
		yv, oky := number(row[yi])
		if okx && oky {
			x = append(x, xv)
			y = append(y, yv)
		}
	}
	return x, y, nil
}

// NumericColumns lists, in header order, the columns holding at least one
// number.
func (t *Table) NumericColumns() []string {
	var out []string
	seen := make(map[string]bool)
	for _, h := range t.Headers {
		if seen[h] {
			continue
		}
		seen[h] = true
		if values, _ := t.Column(h); len(values) > 0 {
			out = append(out, h)
		}
	}
	return out
}

// Head returns the first n rows, at least one.
func (t *Table) Head(n int) [][]string {
	n = max(1, n)
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

func number(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
