package output

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/msto63/sciops/internal/units"
)

// Diagnose returns the extra lines shown under an error message: both
// dimension vectors for a mismatch, and the expression with a caret under
// the offending position for parse failures.
func Diagnose(err error) []string {
	var mismatch *units.DimensionMismatchError
	if errors.As(err, &mismatch) {
		return []string{
			fmt.Sprintf("  from: %s  dimension %s  (%s)", mismatch.From, mismatch.FromDim, mismatch.FromDim.BaseUnits()),
			fmt.Sprintf("  to:   %s  dimension %s  (%s)", mismatch.To, mismatch.ToDim, mismatch.ToDim.BaseUnits()),
		}
	}

	var malformed *units.MalformedExpressionError
	if errors.As(err, &malformed) {
		return Caret(malformed.Expression, malformed.Position)
	}

	var unknown *units.UnknownUnitError
	if errors.As(err, &unknown) && unknown.Expression != "" && unknown.Position >= 0 {
		return Caret(unknown.Expression, unknown.Position)
	}
	return nil
}

// Caret renders expr with a '^' under the byte offset pos. The caret is
// placed by rune so multi-byte symbols such as µ or · line up.
func Caret(expr string, pos int) []string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(expr) {
		pos = len(expr)
	}
	col := utf8.RuneCountInString(expr[:pos])
	return []string{
		"  " + expr,
		"  " + strings.Repeat(" ", col) + "^",
	}
}

// Error writes err to the diagnostics stream as a red "Error: ..." line
// followed by its diagnostics and any hints.
func (p *Printer) Error(err error, hints ...string) {
	if err == nil {
		return
	}
	fmt.Fprintln(p.errOut, p.errStyles.Error.Render("Error: "+err.Error()))
	for _, line := range Diagnose(err) {
		fmt.Fprintln(p.errOut, p.errStyles.Detail.Render(line))
	}
	for _, h := range hints {
		fmt.Fprintln(p.errOut, p.errStyles.Note.Render(h))
	}
}
