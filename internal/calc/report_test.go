package calc

import (
	"errors"
	"math"
	"strconv"
	"testing"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func format4(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }

type doubled struct{ v float64 }

func (d doubled) Report() Report {
	return Report{Title: "Double", Rows: []Row{Num("2x", d.v, "m")}}
}

func double(x float64) (doubled, error) {
	if x < 0 {
		return doubled{}, errors.New("negative")
	}
	return doubled{2 * x}, nil
}

func TestReport_Plain(t *testing.T) {
	r := Report{
		Title: "Projectile",
		Rows: []Row{
			Num("Range", 1234.5678, "m"),
			Num("Ratio", 0.5, ""),
			Txt("Image", "real"),
		},
		Notes: []string{"no drag"},
	}

	want := "Projectile: Range = 1235 m; Ratio = 0.5; Image = real (no drag)"
	if got := r.Plain(format4); got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestRun(t *testing.T) {
	r, err := Run(Calculator[float64, doubled](double), 1.5)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if r.Rows[0].Value != 3 {
		t.Errorf("value = %v, want 3", r.Rows[0].Value)
	}

	if _, err := Run(Calculator[float64, doubled](double), -1); err == nil {
		t.Error("Run() should propagate calculator errors")
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode scierr.Code
	}{
		{"positive ok", Positive("x", 1), ""},
		{"positive zero", Positive("x", 0), scierr.CodeValueOutOfRange},
		{"non-negative ok", NonNegative("x", 0), ""},
		{"non-negative fails", NonNegative("x", -1), scierr.CodeValueOutOfRange},
		{"non-zero fails", NonZero("x", 0), scierr.CodeInvalidInput},
		{"range ok", InRange("p", 1, 0, 1), ""},
		{"range high", InRange("p", 1.1, 0, 1), scierr.CodeValueOutOfRange},
		{"nan", Positive("x", math.NaN()), scierr.CodeInvalidInput},
		{"inf", NonNegative("x", math.Inf(1)), scierr.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantCode == "" {
				if tt.err != nil {
					t.Errorf("unexpected error %v", tt.err)
				}
				return
			}
			if got := scierr.GetCode(tt.err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
		})
	}

	if err := First(nil, Positive("a", -1), NonZero("b", 0)); !scierr.HasCode(err, scierr.CodeValueOutOfRange) {
		t.Errorf("First() = %v, want the first failure", err)
	}
}
