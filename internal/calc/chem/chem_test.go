package chem

import (
	"testing"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func TestMolarity(t *testing.T) {
	tests := []struct {
		name     string
		in       MolarityInput
		want     float64
		wantCode scierr.Code
	}{
		{"half molar", MolarityInput{Moles: 0.5, VolumeL: 1}, 0.5, ""},
		{"small volume", MolarityInput{Moles: 0.01, VolumeL: 0.25}, 0.04, ""},
		{"zero volume", MolarityInput{Moles: 1, VolumeL: 0}, 0, scierr.CodeValueOutOfRange},
		{"negative moles", MolarityInput{Moles: -1, VolumeL: 1}, 0, scierr.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Molarity(tt.in)
			if tt.wantCode != "" {
				if !scierr.HasCode(err, tt.wantCode) {
					t.Fatalf("error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Molarity() error = %v", err)
			}
			if got.Molarity != tt.want {
				t.Errorf("Molarity = %v, want %v", got.Molarity, tt.want)
			}
		})
	}
}

func TestDilution(t *testing.T) {
	got, err := Dilution(DilutionInput{C1: 1, V1: 10, C2: 0.1})
	if err != nil {
		t.Fatalf("Dilution() error = %v", err)
	}
	if got.FinalVolume != 100 || got.Solvent != 90 {
		t.Errorf("Dilution() = %+v, want final 100 solvent 90", got)
	}

	if _, err := Dilution(DilutionInput{C1: 1, V1: 10, C2: 2}); !scierr.HasCode(err, scierr.CodeInvalidInput) {
		t.Errorf("concentrating should fail with INVALID_INPUT, got %v", err)
	}
	if _, err := Dilution(DilutionInput{C1: 1, V1: 0, C2: 0.5}); err == nil {
		t.Error("zero stock volume should fail")
	}
}

func TestReports(t *testing.T) {
	r := DilutionResult{FinalVolume: 100, Solvent: 90}.Report()
	if len(r.Rows) != 2 || r.Rows[0].Unit != "mL" {
		t.Errorf("unexpected report %+v", r)
	}
	m := MolarityResult{Molarity: 2}.Report()
	if m.Rows[2].Unit != "M" {
		t.Errorf("molarity unit = %q", m.Rows[2].Unit)
	}
}
