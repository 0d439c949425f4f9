package xmlpull

import (
	"errors"
	"math"
	"testing"

	"github.com/jacoelho/xmlpull/internal/num"
)

// valueOf returns a parser positioned on the value of <n v="value"/>.
func valueOf(t *testing.T, value string) *Parser {
	t.Helper()
	p := NewBytes([]byte(`<n v="` + value + `"/>`))
	mustNext(t, p, EventStartDocument)
	mustNext(t, p, EventStartTag)
	mustNext(t, p, EventAttributeName)
	mustNext(t, p, EventAttributeValue)
	return p
}

func TestIntegers(t *testing.T) {
	tests := []struct {
		raw   string
		int16 int16
		int32 int32
		int64 int64
		ok16  bool
		ok32  bool
	}{
		{raw: "000123", int16: 123, int32: 123, int64: 123, ok16: true, ok32: true},
		{raw: "+7", int16: 7, int32: 7, int64: 7, ok16: true, ok32: true},
		{raw: "-32768", int16: math.MinInt16, int32: -32768, int64: -32768, ok16: true, ok32: true},
		{raw: "-32769", int32: -32769, int64: -32769, ok32: true},
		{raw: "-2147483648", int32: math.MinInt32, int64: math.MinInt32, ok32: true},
		{raw: "-2147483649", int64: -2147483649},
		{raw: "-9223372036854775808", int64: math.MinInt64},
	}
	for _, tc := range tests {
		p := valueOf(t, tc.raw)
		v16, err := p.Int16()
		if tc.ok16 != (err == nil) || v16 != tc.int16 {
			t.Fatalf("Int16(%q) = %d, %v", tc.raw, v16, err)
		}
		v32, err := p.Int32()
		if tc.ok32 != (err == nil) || v32 != tc.int32 {
			t.Fatalf("Int32(%q) = %d, %v", tc.raw, v32, err)
		}
		v64, err := p.Int64()
		if err != nil || v64 != tc.int64 {
			t.Fatalf("Int64(%q) = %d, %v, want %d", tc.raw, v64, err, tc.int64)
		}
	}
}

func TestNumberFormatErrors(t *testing.T) {
	tests := []struct {
		raw  string
		kind num.ParseErrKind
	}{
		{raw: "", kind: num.ParseEmpty},
		{raw: "12a", kind: num.ParseBadChar},
		{raw: "-", kind: num.ParseNoDigits},
		{raw: " 1", kind: num.ParseBadChar},
		{raw: "-9223372036854775809", kind: num.ParseOverflow},
	}
	for _, tc := range tests {
		p := valueOf(t, tc.raw)
		_, err := p.Int64()
		if !errors.Is(err, ErrNumberFormat) {
			t.Fatalf("Int64(%q) error = %v, want %v", tc.raw, err, ErrNumberFormat)
		}
		var numErr *NumberFormatError
		if !errors.As(err, &numErr) {
			t.Fatalf("Int64(%q) error %T is not *NumberFormatError", tc.raw, err)
		}
		if numErr.Raw != tc.raw || numErr.Type != "int64" {
			t.Fatalf("NumberFormatError = %+v, want raw %q type int64", numErr, tc.raw)
		}
		if numErr.Line != 1 || numErr.Column != 7 {
			t.Fatalf("NumberFormatError at %d:%d, want 1:7", numErr.Line, numErr.Column)
		}
		var parseErr *num.ParseError
		if !errors.As(err, &parseErr) || parseErr.Kind != tc.kind {
			t.Fatalf("Int64(%q) kind = %v, want %v", tc.raw, parseErr, tc.kind)
		}
		// number errors do not poison the parser
		mustNext(t, p, EventEndTagWithoutText)
	}
}

func TestFloats(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "1.5e3", want: 1500},
		{raw: "-0.25", want: -0.25},
		{raw: "INF", want: math.Inf(1)},
		{raw: "3.", want: 3},
		{raw: "1e400", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tc := range tests {
		p := valueOf(t, tc.raw)
		got, err := p.Float64()
		if tc.wantErr {
			if !errors.Is(err, ErrNumberFormat) {
				t.Fatalf("Float64(%q) error = %v, want %v", tc.raw, err, ErrNumberFormat)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("Float64(%q) = %v, %v, want %v", tc.raw, got, err, tc.want)
		}
	}
	p := valueOf(t, "3.4e39")
	if _, err := p.Float32(); !errors.Is(err, ErrNumberFormat) {
		t.Fatalf("Float32(3.4e39) error = %v, want overflow", err)
	}
	if got, err := p.Float64(); err != nil || got != 3.4e39 {
		t.Fatalf("Float64(3.4e39) = %v, %v", got, err)
	}
	p = valueOf(t, "0.5")
	if got, err := p.Float32(); err != nil || got != 0.5 {
		t.Fatalf("Float32(0.5) = %v, %v", got, err)
	}
}
