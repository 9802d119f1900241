// Package calc holds what the domain calculators share: the Report they
// render to, the Calculator shape and input validation helpers.
//
// Each calculator package (mech, astro, chem, ...) exposes pure functions
// from a validated input struct to a result struct. Results implement
// Reporter so the command layer can print or log any of them the same way.
package calc

import (
	"fmt"
	"strings"
)

// Row is one line of a report. Rows with a non-empty Text show the text
// instead of Value.
type Row struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Text  string  `json:"text,omitempty" yaml:"text,omitempty"`
}

// Num creates a numeric row.
func Num(label string, value float64, unit string) Row {
	return Row{Label: label, Value: value, Unit: unit}
}

// Txt creates a text row.
func Txt(label, text string) Row {
	return Row{Label: label, Text: text}
}

// IsText reports whether the row carries text rather than a number.
func (r Row) IsText() bool {
	return r.Text != ""
}

// Report is the renderable outcome of a calculation.
type Report struct {
	Title string   `json:"title" yaml:"title"`
	Rows  []Row    `json:"rows" yaml:"rows"`
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Reporter is implemented by every calculator result.
type Reporter interface {
	Report() Report
}

// Calculator is the common shape of a domain calculation: a stateless
// transform from a validated input to a result.
type Calculator[In any, Out Reporter] func(In) (Out, error)

// Run executes c and returns the report of its result.
func Run[In any, Out Reporter](c Calculator[In, Out], in In) (Report, error) {
	out, err := c(in)
	if err != nil {
		return Report{}, err
	}
	return out.Report(), nil
}

// Plain renders the report as plain text, one "label = value unit" line
// per row, using format for numbers. This is the form written to the
// notebook.
func (r Report) Plain(format func(float64) string) string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title)
		b.WriteString(": ")
	}

	parts := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		parts = append(parts, fmt.Sprintf("%s = %s", row.Label, row.Display(format)))
	}
	b.WriteString(strings.Join(parts, "; "))

	for _, n := range r.Notes {
		b.WriteString(" (")
		b.WriteString(n)
		b.WriteString(")")
	}
	return b.String()
}

// Display renders the row value with its unit.
func (r Row) Display(format func(float64) string) string {
	if r.IsText() {
		return r.Text
	}
	s := format(r.Value)
	if r.Unit != "" {
		s += " " + r.Unit
	}
	return s
}
