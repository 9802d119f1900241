// Package output renders command results to the terminal: styled text and
// tables through lipgloss, Markdown through glamour, and JSON or YAML for
// machine consumption.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// DefaultPrecision is the number of significant digits for numbers.
const DefaultPrecision = 6

// Format selects how listings are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", scierr.InvalidInput("unknown output format %q, use table, json or yaml", s)
}

// FormatNumber renders v with precision significant digits.
func FormatNumber(v float64, precision int) string {
	if precision < 1 {
		precision = DefaultPrecision
	}
	return fmt.Sprintf("%.*g", precision, v)
}

// Printer writes results to out and diagnostics to errOut.
type Printer struct {
	out       io.Writer
	errOut    io.Writer
	color     bool
	precision int
	format    Format
	styles    Styles
	errStyles Styles
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor turns styling on or off.
func WithColor(on bool) Option {
	return func(p *Printer) { p.color = on }
}

// WithPrecision sets the significant digits of numbers.
func WithPrecision(digits int) Option {
	return func(p *Printer) {
		if digits > 0 {
			p.precision = digits
		}
	}
}

// WithFormat sets the listing format.
func WithFormat(f Format) Option {
	return func(p *Printer) { p.format = f }
}

// New creates a Printer. Color is on by default and still degrades to
// plain text when out is not a terminal.
func New(out, errOut io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:       out,
		errOut:    errOut,
		color:     true,
		precision: DefaultPrecision,
		format:    FormatTable,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.styles = NewStyles(p.renderer(out))
	p.errStyles = NewStyles(p.renderer(errOut))
	return p
}

func (p *Printer) renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !p.color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Out returns the result writer.
func (p *Printer) Out() io.Writer { return p.out }

// Color reports whether styling is enabled.
func (p *Printer) Color() bool { return p.color }

// Precision returns the significant digits used for numbers.
func (p *Printer) Precision() int { return p.precision }

// Format returns the listing format.
func (p *Printer) Format() Format { return p.format }

// Number renders v with the configured precision.
func (p *Printer) Number(v float64) string {
	return FormatNumber(v, p.precision)
}

// Println writes a plain line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted plain text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Lines writes each line in the plot style.
func (p *Printer) Lines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(p.out, p.styles.Plot.Render(l))
	}
}

// Title writes a heading.
func (p *Printer) Title(s string) {
	fmt.Fprintln(p.out, p.styles.Title.Render(s))
}

// Value writes "label = value unit" with the value emphasized.
func (p *Printer) Value(label string, value float64, unit string) {
	line := p.styles.Label.Render(label+" =") + " " + p.styles.Value.Render(p.Number(value))
	if unit != "" {
		line += " " + p.styles.Unit.Render(unit)
	}
	fmt.Fprintln(p.out, line)
}

// Text writes "label = text".
func (p *Printer) Text(label, text string) {
	fmt.Fprintln(p.out, p.styles.Label.Render(label+" =")+" "+p.styles.Value.Render(text))
}

// Success writes a confirmation line.
func (p *Printer) Success(format string, a ...any) {
	fmt.Fprintln(p.out, p.styles.Success.Render(fmt.Sprintf(format, a...)))
}

// Warn writes a warning to the diagnostics stream.
func (p *Printer) Warn(format string, a ...any) {
	fmt.Fprintln(p.errOut, p.errStyles.Warn.Render("Warning: "+fmt.Sprintf(format, a...)))
}

// Table writes a bordered table. An empty title is omitted.
func (p *Printer) Table(title string, headers []string, rows [][]string) {
	if title != "" {
		p.Title(title)
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.styles.Header
			}
			return p.styles.Cell
		})
	fmt.Fprintln(p.out, t.String())
}

// Report writes a calculator report as label/value lines followed by its
// notes.
func (p *Printer) Report(r calc.Report) {
	if r.Title != "" {
		p.Title(r.Title)
	}
	for _, row := range r.Rows {
		if row.IsText() {
			p.Text(row.Label, row.Text)
			continue
		}
		p.Value(row.Label, row.Value, row.Unit)
	}
	for _, n := range r.Notes {
		fmt.Fprintln(p.out, p.styles.Note.Render("("+n+")"))
	}
}

// Plain renders r as a single line for the notebook.
func (p *Printer) Plain(r calc.Report) string {
	return r.Plain(p.Number)
}

// Encode writes v as JSON or YAML. It is an error to call it with the
// table format.
func (p *Printer) Encode(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return scierr.Wrap(err, "failed to encode JSON").WithCode(scierr.CodeInternal)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return scierr.Wrap(err, "failed to encode YAML").WithCode(scierr.CodeInternal)
		}
		return enc.Close()
	}
	return scierr.Newf("format %q is not a machine format", p.format).WithCode(scierr.CodeInternal)
}

// Machine reports whether listings should be encoded rather than drawn.
func (p *Printer) Machine() bool {
	return p.format == FormatJSON || p.format == FormatYAML
}

// Markdown renders md for the terminal. Without color the text is written
// unchanged.
func (p *Printer) Markdown(md string, width int) error {
	if !p.color {
		_, err := io.WriteString(p.out, md)
		return err
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return scierr.Wrap(err, "failed to create markdown renderer").WithCode(scierr.CodeInternal)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return scierr.Wrap(err, "failed to render markdown").WithCode(scierr.CodeInternal)
	}
	_, err = io.WriteString(p.out, rendered)
	return err
}
