package num

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bits    int
		want    int64
		errKind ParseErrKind
		wantErr bool
	}{
		{name: "zero", input: "0", bits: 32, want: 0},
		{name: "neg zero", input: "-0", bits: 32, want: 0},
		{name: "pos sign zero", input: "+000", bits: 32, want: 0},
		{name: "positive", input: "123", bits: 32, want: 123},
		{name: "negative", input: "-456", bits: 32, want: -456},
		{name: "leading zeros", input: "000123", bits: 32, want: 123},
		{name: "max int16", input: "32767", bits: 16, want: 32767},
		{name: "min int16", input: "-32768", bits: 16, want: -32768},
		{name: "int16 overflow", input: "32768", bits: 16, wantErr: true, errKind: ParseOverflow},
		{name: "int16 underflow", input: "-32769", bits: 16, wantErr: true, errKind: ParseOverflow},
		{name: "min int32", input: "-2147483648", bits: 32, want: -2147483648},
		{name: "int32 underflow", input: "-2147483649", bits: 32, wantErr: true, errKind: ParseOverflow},
		{name: "long overflow digits", input: "99999999999999999999999", bits: 64, wantErr: true, errKind: ParseOverflow},
		{name: "empty", input: "", bits: 32, wantErr: true, errKind: ParseEmpty},
		{name: "sign only", input: "+", bits: 32, wantErr: true, errKind: ParseNoDigits},
		{name: "minus only", input: "-", bits: 32, wantErr: true, errKind: ParseNoDigits},
		{name: "bad char", input: "12a", bits: 32, wantErr: true, errKind: ParseBadChar},
		{name: "inner space", input: "1 2", bits: 32, wantErr: true, errKind: ParseBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInt([]byte(tc.input), tc.bits)
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
				t.Fatalf("value = %d, want %d", got, tc.want)
			}
		})
	}
}
