package cmd

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
	"github.com/msto63/sciops/internal/constants"
	"github.com/msto63/sciops/internal/units"
)

// emit prints a calculator report, or encodes it with --output json|yaml,
// and appends it to the notebook when --log is set.
func emit(rep calc.Report) error {
	p := app.printer
	if p.Machine() {
		if err := p.Encode(rep); err != nil {
			return err
		}
	} else {
		p.Report(rep)
	}
	return logLine(p.Plain(rep))
}

// emitResult emits the report of a calculator result. It is shaped to take
// a calculator call directly: emitResult(mech.Work(in)).
func emitResult(r calc.Reporter, err error) error {
	if err != nil {
		return err
	}
	return emit(r.Report())
}

// logLine appends text to the notebook when --log is set.
func logLine(text string) error {
	if !logResult {
		return nil
	}
	if _, err := app.notebook.Append(text); err != nil {
		return err
	}
	if !app.printer.Machine() {
		app.printer.Success("Logged to %s", app.notebook.Path())
	}
	return nil
}

// number parses a plain dimensionless argument.
func number(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, scierr.InvalidInput("%s: %q is not a number", name, s)
	}
	return v, nil
}

// numbers parses a list of plain arguments.
func numbers(name string, args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := number(name, a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// quantity parses a number with an optional unit suffix ("3ft", "72 km/h")
// and returns it in the unit si. A bare number is taken to be in si
// already.
func quantity(name, s, si string) (float64, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return 0, scierr.InvalidInput("%s: %q is not a number or quantity", name, s)
	}
	if unit == "" {
		return v, nil
	}
	out, err := app.conv.Convert(v, unit, si)
	if err != nil {
		return 0, err
	}
	app.logger.Debug("quantity converted",
		zap.String("input", name),
		zap.String("from", unit),
		zap.String("to", si),
		zap.Float64("value", out))
	return out, nil
}

// splitQuantity separates the longest numeric prefix of s from the unit
// expression that follows it.
func splitQuantity(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && strings.IndexByte("0123456789+-.eE", s[end]) >= 0 {
		end++
	}
	for ; end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v, strings.TrimSpace(s[end:]), nil
		}
	}
	return 0, "", scierr.InvalidInput("%q does not start with a number", s)
}

// bodyName returns the --body flag value, or the configured default body
// when the flag was not given.
func bodyName(flag string, changed bool) string {
	if changed {
		return flag
	}
	return app.cfg.Defaults.Body
}

// hints returns "did you mean" lines for lookup failures.
func hints(err error) []string {
	reg := units.DefaultRegistry()
	table := constants.DefaultTable()
	if app != nil {
		reg, table = app.registry, app.consts
	}

	var unknownUnit *units.UnknownUnitError
	if errors.As(err, &unknownUnit) {
		if s := reg.Suggest(unknownUnit.Symbol, units.DefaultSuggestions); len(s) > 0 {
			return []string{"did you mean: " + strings.Join(s, ", ") + "?"}
		}
		return []string{"run 'sciops units list-dimensions' for the known units"}
	}

	var unknownConst *constants.UnknownConstantError
	if errors.As(err, &unknownConst) {
		if s := table.Suggest(unknownConst.Query, 3); len(s) > 0 {
			return []string{"did you mean: " + strings.Join(s, ", ") + "?"}
		}
		return []string{"run 'sciops constants list' for the available constants"}
	}
	return nil
}
