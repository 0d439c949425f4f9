package num

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bits    int
		want    float64
		wantErr bool
		errKind ParseErrKind
	}{
		{name: "inf", input: "INF", bits: 64, want: math.Inf(1)},
		{name: "neg inf", input: "-INF", bits: 64, want: math.Inf(-1)},
		{name: "finite", input: "1.25", bits: 32, want: 1.25},
		{name: "exponent", input: "-2.5e3", bits: 64, want: -2500},
		{name: "leading dot", input: ".5", bits: 64, want: 0.5},
		{name: "trailing dot", input: "7.", bits: 64, want: 7},
		{name: "underflow rounds to zero", input: "1e-400", bits: 64, want: 0},
		{name: "float32 overflow", input: "1e39", bits: 32, wantErr: true, errKind: ParseOverflow},
		{name: "float64 overflow", input: "-1e309", bits: 64, wantErr: true, errKind: ParseOverflow},
		{name: "plus inf invalid", input: "+INF", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "missing exponent", input: "1e", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "hex rejected", input: "0x1p3", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "empty", input: "", bits: 64, wantErr: true, errKind: ParseEmpty},
		{name: "sign only", input: "-", bits: 64, wantErr: true, errKind: ParseNoDigits},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFloat([]byte(tc.input), tc.bits)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("value = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseFloatNaN(t *testing.T) {
	got, err := ParseFloat([]byte("NaN"), 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Fatalf("value = %v, want NaN", got)
	}
}
